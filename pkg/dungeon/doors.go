package dungeon

import (
	"github.com/matzehuels/roguegrid/pkg/carve"
	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/grid"
	"github.com/matzehuels/roguegrid/pkg/rng"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Connection is the carved form of one grid link.
type Connection struct {
	Edge grid.Edge `json:"edge"`
	// Doors holds the door tiles in edge order; junction ends have none.
	Doors []tile.Point `json:"doors,omitempty"`
	Path  carve.Path   `json:"path"`
	// Skipped is set when a room was too thin to hold a door.
	Skipped bool `json:"skipped,omitempty"`
}

// endpoint is one side of a link as seen by the door placer.
type endpoint struct {
	room   *Room
	center tile.Point
}

// PlaceDoors carves every link of g, in canonical edge order, after all
// rooms have been drawn. Room ends get a door at a random non-corner
// position of the facing wall; junction ends meet at the center of their
// sub-rectangle. Links touching a room whose facing dimension is two or less
// are skipped. A junction center only opens toward the corridors that reach
// it, so in glyph mode it ends up as the tee or corner joining them.
func PlaceDoors(canvas *tile.Canvas, g *grid.Grid, rooms []Room, cfg Config, router *carve.Router, src rng.Source) ([]Connection, error) {
	byCell := make(map[grid.Cell]*Room, len(rooms))
	for i := range rooms {
		byCell[rooms[i].Cell] = &rooms[i]
	}
	end := func(c grid.Cell) endpoint {
		return endpoint{room: byCell[c], center: Center(cfg, c)}
	}

	var conns []Connection
	for _, e := range g.Edges() {
		from, to := end(e.From), end(e.To)
		conn := Connection{Edge: e}
		if thin(from.room, e.Horizontal) || thin(to.room, e.Horizontal) {
			conn.Skipped = true
			conns = append(conns, conn)
			continue
		}

		a, doorA := from.exit(src, e.Horizontal)
		b, doorB := to.entry(src, e.Horizontal)
		for _, d := range []*tile.Point{doorA, doorB} {
			if d == nil {
				continue
			}
			if err := canvas.Set(*d, tile.Door); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "door for %v-%v", e.From, e.To)
			}
			conn.Doors = append(conn.Doors, *d)
		}

		ends := carve.Ends{Start: from.room != nil, End: to.room != nil}
		path, err := router.Carve(a, b, e.Horizontal, ends)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "corridor for %v-%v", e.From, e.To)
		}
		conn.Path = path
		conns = append(conns, conn)
	}
	return conns, nil
}

func thin(r *Room, horiz bool) bool {
	if r == nil {
		return false
	}
	if horiz {
		return r.H <= 2
	}
	return r.W <= 2
}

// wallPos picks a coordinate along a wall of length dim, skipping corners.
func wallPos(src rng.Source, start, dim int) int {
	return start + 1 + src.IntN(dim-2)
}

// exit returns where a corridor leaving toward the east or south starts,
// and the door it passes through.
func (ep endpoint) exit(src rng.Source, horiz bool) (tile.Point, *tile.Point) {
	r := ep.room
	if r == nil {
		return ep.center, nil
	}
	if horiz {
		door := tile.Pt(r.Right(), wallPos(src, r.Y, r.H))
		return door.Step(tile.East), &door
	}
	door := tile.Pt(wallPos(src, r.X, r.W), r.Bottom())
	return door.Step(tile.South), &door
}

// entry returns where a corridor arriving from the west or north ends, and
// the door it leads into.
func (ep endpoint) entry(src rng.Source, horiz bool) (tile.Point, *tile.Point) {
	r := ep.room
	if r == nil {
		return ep.center, nil
	}
	if horiz {
		door := tile.Pt(r.X, wallPos(src, r.Y, r.H))
		return door.Step(tile.West), &door
	}
	door := tile.Pt(wallPos(src, r.X, r.W), r.Y)
	return door.Step(tile.North), &door
}
