package grid

import (
	"fmt"
	"strings"

	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Cell is a macro-grid coordinate.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Step returns the neighboring cell across side s.
func (c Cell) Step(s tile.Side) Cell {
	p := tile.Pt(c.Col, c.Row).Step(s)
	return Cell{Col: p.X, Row: p.Y}
}

// MacroCell is the state of one macro cell.
type MacroCell struct {
	IsRoom bool
	East   bool // linked to the cell at Col+1
	South  bool // linked to the cell at Row+1
}

// Edge is one link between two adjacent cells. From is always the
// lower-index endpoint.
type Edge struct {
	From       Cell `json:"from"`
	To         Cell `json:"to"`
	Horizontal bool `json:"horizontal"`
}

// Grid is an N×N macro grid.
type Grid struct {
	n     int
	cells []MacroCell
}

// New returns an n×n grid with no rooms and no links. n below 1 is treated as 1.
func New(n int) *Grid {
	n = max(n, 1)
	return &Grid{n: n, cells: make([]MacroCell, n*n)}
}

// Size returns N.
func (g *Grid) Size() int { return g.n }

// In reports whether c lies on the grid.
func (g *Grid) In(c Cell) bool {
	return c.Col >= 0 && c.Col < g.n && c.Row >= 0 && c.Row < g.n
}

// Index returns the row-major index of c.
func (g *Grid) Index(c Cell) int { return c.Row*g.n + c.Col }

// CellAt returns the cell with row-major index i.
func (g *Grid) CellAt(i int) Cell { return Cell{Col: i % g.n, Row: i / g.n} }

// At returns the state of c. Out-of-range cells read as empty.
func (g *Grid) At(c Cell) MacroCell {
	if !g.In(c) {
		return MacroCell{}
	}
	return g.cells[g.Index(c)]
}

// IsRoom reports whether c hosts a room.
func (g *Grid) IsRoom(c Cell) bool { return g.At(c).IsRoom }

// MarkRoom sets c as a room. It is a no-op outside the grid.
func (g *Grid) MarkRoom(c Cell) {
	if g.In(c) {
		g.cells[g.Index(c)].IsRoom = true
	}
}

// Link records a corridor between adjacent cells a and b on their
// lower-index endpoint. It reports false if the cells are not adjacent or not
// both on the grid.
func (g *Grid) Link(a, b Cell) bool {
	if !g.In(a) || !g.In(b) {
		return false
	}
	switch {
	case a.Row == b.Row && b.Col == a.Col+1:
		g.cells[g.Index(a)].East = true
	case a.Row == b.Row && a.Col == b.Col+1:
		g.cells[g.Index(b)].East = true
	case a.Col == b.Col && b.Row == a.Row+1:
		g.cells[g.Index(a)].South = true
	case a.Col == b.Col && a.Row == b.Row+1:
		g.cells[g.Index(b)].South = true
	default:
		return false
	}
	return true
}

// Linked reports whether c has a corridor across side s.
func (g *Grid) Linked(c Cell, s tile.Side) bool {
	switch s {
	case tile.East:
		return g.At(c).East
	case tile.South:
		return g.At(c).South
	case tile.West:
		return c.Col > 0 && g.At(c.Step(tile.West)).East
	case tile.North:
		return c.Row > 0 && g.At(c.Step(tile.North)).South
	}
	return false
}

// searchOrder is the fixed neighbor order used by every search.
var searchOrder = [4]tile.Side{tile.North, tile.East, tile.South, tile.West}

// Sides returns the set of sides of c that carry a corridor.
func (g *Grid) Sides(c Cell) tile.Side {
	var s tile.Side
	for _, side := range searchOrder {
		if g.Linked(c, side) {
			s |= side
		}
	}
	return s
}

// Neighbors returns the cells linked to c in north, east, south, west order.
func (g *Grid) Neighbors(c Cell) []Cell {
	var out []Cell
	for _, side := range searchOrder {
		if g.Linked(c, side) {
			out = append(out, c.Step(side))
		}
	}
	return out
}

// Degree returns the number of corridors touching c in any direction.
func (g *Grid) Degree(c Cell) int { return g.Sides(c).Count() }

// Rooms returns every room cell in row-major order.
func (g *Grid) Rooms() []Cell {
	var out []Cell
	for i, mc := range g.cells {
		if mc.IsRoom {
			out = append(out, g.CellAt(i))
		}
	}
	return out
}

// Junctions returns every non-room cell that carries at least one corridor,
// in row-major order.
func (g *Grid) Junctions() []Cell {
	var out []Cell
	for i, mc := range g.cells {
		c := g.CellAt(i)
		if !mc.IsRoom && g.Degree(c) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Edges returns every link in canonical order: cells row-major, east before
// south.
func (g *Grid) Edges() []Edge {
	var out []Edge
	for i, mc := range g.cells {
		c := g.CellAt(i)
		if mc.East {
			out = append(out, Edge{From: c, To: c.Step(tile.East), Horizontal: true})
		}
		if mc.South {
			out = append(out, Edge{From: c, To: c.Step(tile.South)})
		}
	}
	return out
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{n: g.n, cells: make([]MacroCell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// String renders the grid as a text diagram: R for rooms, + for junctions,
// # for empty cells, --- and | for links. Trailing spaces are trimmed.
func (g *Grid) String() string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(strings.TrimRight(s, " "))
		b.WriteByte('\n')
	}
	for row := 0; row < g.n; row++ {
		var cells, links strings.Builder
		for col := 0; col < g.n; col++ {
			c := Cell{Col: col, Row: row}
			mc := g.At(c)
			switch {
			case mc.IsRoom:
				cells.WriteByte('R')
			case g.Degree(c) > 0:
				cells.WriteByte('+')
			default:
				cells.WriteByte('#')
			}
			if mc.South {
				links.WriteByte('|')
			} else {
				links.WriteByte(' ')
			}
			if col < g.n-1 {
				if mc.East {
					cells.WriteString("---")
				} else {
					cells.WriteString("   ")
				}
				links.WriteString("   ")
			}
		}
		line(cells.String())
		if row < g.n-1 {
			line(links.String())
		}
	}
	return b.String()
}
