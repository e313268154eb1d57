package dungeon

import (
	"github.com/matzehuels/roguegrid/pkg/grid"
	"github.com/matzehuels/roguegrid/pkg/rng"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Markers are the special positions of a dungeon.
type Markers struct {
	Start     tile.Point `json:"start"`
	StartCell grid.Cell  `json:"start_cell"`

	Goal         tile.Point `json:"goal"`
	GoalCell     grid.Cell  `json:"goal_cell"`
	GoalDistance int        `json:"goal_distance"`

	// Treasure is nil when the dungeon has a single room.
	Treasure     *tile.Point `json:"treasure,omitempty"`
	TreasureCell *grid.Cell  `json:"treasure_cell,omitempty"`
}

// PlaceMarkers chooses the start, treasure and goal positions and writes
// the treasure and goal tiles to the canvas. rooms must be non-empty.
//
// The start is the center of a random dead-end room (corridor degree one),
// or of any room when there is none. The treasure goes on a random interior
// tile of a different room. The goal goes on a random interior tile of the
// room farthest from the start, walking through junctions; it avoids the
// start and treasure tiles whenever the room has another free tile.
func PlaceMarkers(canvas *tile.Canvas, g *grid.Grid, rooms []Room, src rng.Source) (Markers, error) {
	var deadEnds []int
	for i, r := range rooms {
		if g.Degree(r.Cell) == 1 {
			deadEnds = append(deadEnds, i)
		}
	}
	var start Room
	if len(deadEnds) > 0 {
		start = rooms[rng.Pick(src, deadEnds)]
	} else {
		start = rng.Pick(src, rooms)
	}

	m := Markers{Start: start.Center(), StartCell: start.Cell}
	taken := []tile.Point{m.Start}

	if len(rooms) > 1 {
		others := make([]Room, 0, len(rooms)-1)
		for _, r := range rooms {
			if r.Cell != start.Cell {
				others = append(others, r)
			}
		}
		tr := rng.Pick(src, others)
		p := interiorPoint(src, tr, taken)
		cell := tr.Cell
		m.Treasure, m.TreasureCell = &p, &cell
		taken = append(taken, p)
		if err := canvas.Set(p, tile.Treasure); err != nil {
			return m, err
		}
	}

	goalCell, dist := g.FarthestVia(start.Cell)
	goalRoom := start
	for _, r := range rooms {
		if r.Cell == goalCell {
			goalRoom = r
			break
		}
	}
	m.GoalCell, m.GoalDistance = goalRoom.Cell, dist
	m.Goal = interiorPoint(src, goalRoom, taken)
	if err := canvas.Set(m.Goal, tile.Goal); err != nil {
		return m, err
	}
	return m, nil
}

// interiorPoint returns a uniform interior tile of r not in taken, or any
// interior tile if all are taken. A room without an interior yields its
// center.
func interiorPoint(src rng.Source, r Room, taken []tile.Point) tile.Point {
	all := r.Interior()
	if len(all) == 0 {
		return r.Center()
	}
	free := make([]tile.Point, 0, len(all))
	for _, p := range all {
		if !containsPoint(taken, p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return rng.Pick(src, all)
	}
	return rng.Pick(src, free)
}

func containsPoint(pts []tile.Point, p tile.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
