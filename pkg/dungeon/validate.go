package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Validate checks a finished dungeon against the layout invariants:
//   - every room can reach every other room over the macro grid
//   - every room keeps its margin inside its sub-rectangle
//   - no two rooms, each grown by one tile, overlap
//   - every carved link has a door on each room end
//   - the start is walkable, and every room interior, the treasure
//     and the goal are reachable from it over walkable tiles
//
// It returns an INTERNAL_ERROR describing the first violation.
func Validate(d *Dungeon) error {
	violation := func(format string, args ...any) error {
		return errors.New(errors.ErrCodeInternal, "invariant violated: "+format, args...)
	}
	if d == nil || d.Grid == nil || d.Canvas == nil {
		return violation("incomplete dungeon")
	}
	if len(d.Rooms) == 0 {
		return violation("no rooms")
	}
	if !d.Grid.Connected() {
		return violation("macro grid is disconnected")
	}

	for i, r := range d.Rooms {
		if !d.Grid.IsRoom(r.Cell) {
			return violation("room placed in non-room cell %v", r.Cell)
		}
		if !r.Inside(d.Config) {
			return violation("room %v at (%d,%d) %dx%d leaves its cell margin", r.Cell, r.X, r.Y, r.W, r.H)
		}
		for _, o := range d.Rooms[i+1:] {
			if r.Overlaps(o.Rect, 1) {
				return violation("rooms %v and %v overlap", r.Cell, o.Cell)
			}
		}
	}

	for _, c := range d.Connections {
		if c.Skipped {
			continue
		}
		want := 0
		if d.Grid.IsRoom(c.Edge.From) {
			want++
		}
		if d.Grid.IsRoom(c.Edge.To) {
			want++
		}
		if len(c.Doors) != want {
			return violation("link %v-%v has %d doors, want %d", c.Edge.From, c.Edge.To, len(c.Doors), want)
		}
		for _, p := range c.Doors {
			if d.Canvas.At(p) != tile.Door {
				return violation("door at (%d,%d) holds %v", p.X, p.Y, d.Canvas.At(p))
			}
		}
	}

	if !d.Canvas.At(d.Start).Walkable() {
		return violation("start (%d,%d) is %v", d.Start.X, d.Start.Y, d.Canvas.At(d.Start))
	}
	reached := Reachable(d.Canvas, d.Start)
	for _, r := range d.Rooms {
		for _, p := range r.Interior() {
			if !reached.Has(p) {
				return violation("room %v tile (%d,%d) unreachable from start", r.Cell, p.X, p.Y)
			}
		}
	}
	if !reached.Has(d.Goal) {
		return violation("goal unreachable")
	}
	if d.Treasure != nil && !reached.Has(*d.Treasure) {
		return violation("treasure unreachable")
	}
	return nil
}

// Reachable returns every walkable tile connected to from by orthogonal
// steps over walkable tiles.
func Reachable(c *tile.Canvas, from tile.Point) mapset.Set[tile.Point] {
	seen := mapset.New[tile.Point]()
	if !c.At(from).Walkable() {
		return seen
	}
	seen.Put(from)
	queue := []tile.Point{from}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, s := range []tile.Side{tile.North, tile.East, tile.South, tile.West} {
			nb := p.Step(s)
			if seen.Has(nb) || !c.At(nb).Walkable() {
				continue
			}
			seen.Put(nb)
			queue = append(queue, nb)
		}
	}
	return seen
}
