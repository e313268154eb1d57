package dungeon

import (
	"github.com/matzehuels/roguegrid/pkg/grid"
	"github.com/matzehuels/roguegrid/pkg/rng"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Room is a rectangular room placed in one macro cell. The rectangle
// includes the outline.
type Room struct {
	Cell grid.Cell `json:"cell"`
	tile.Rect
}

// SubRect returns the canvas region reserved for cell.
func SubRect(cfg Config, cell grid.Cell) tile.Rect {
	s := cfg.SubgridSize
	return tile.Rect{X: cell.Col * s, Y: cell.Row * s, W: s, H: s}
}

// Center returns the center of cell's sub-rectangle, where junction
// corridors meet.
func Center(cfg Config, cell grid.Cell) tile.Point {
	return SubRect(cfg, cell).Center()
}

// PlaceRoom picks a size and position for a room in cell. Width and height
// are drawn uniformly from [MinRoomDim, MaxRoomDim] cut down to the sizes
// that keep Margin blank tiles on every side of the sub-rectangle.
func PlaceRoom(src rng.Source, cfg Config, cell grid.Cell) Room {
	lo, hi := cfg.RoomDims()
	w := rng.Between(src, lo, hi)
	h := rng.Between(src, lo, hi)

	sub := SubRect(cfg, cell)
	slackW := max(cfg.SubgridSize-w-2*cfg.Margin, 0)
	slackH := max(cfg.SubgridSize-h-2*cfg.Margin, 0)
	return Room{
		Cell: cell,
		Rect: tile.Rect{
			X: sub.X + cfg.Margin + src.IntN(slackW+1),
			Y: sub.Y + cfg.Margin + src.IntN(slackH+1),
			W: w,
			H: h,
		},
	}
}

// PlaceRooms places a room in every room cell of g, row-major.
func PlaceRooms(src rng.Source, cfg Config, g *grid.Grid) []Room {
	cells := g.Rooms()
	rooms := make([]Room, 0, len(cells))
	for _, c := range cells {
		rooms = append(rooms, PlaceRoom(src, cfg, c))
	}
	return rooms
}

// Inside reports whether r keeps at least margin blank tiles to every edge
// of its cell's sub-rectangle.
func (r Room) Inside(cfg Config) bool {
	sub := SubRect(cfg, r.Cell)
	return r.X >= sub.X+cfg.Margin && r.Y >= sub.Y+cfg.Margin &&
		r.Right() <= sub.Right()-cfg.Margin && r.Bottom() <= sub.Bottom()-cfg.Margin
}
