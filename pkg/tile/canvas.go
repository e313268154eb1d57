package tile

import (
	"strings"

	"github.com/matzehuels/roguegrid/pkg/errors"
)

// Rect is an axis-aligned rectangle in canvas coordinates, inclusive of its
// outline.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

// Right returns the x coordinate of the right outline column.
func (r Rect) Right() int { return r.X + r.W - 1 }

// Bottom returns the y coordinate of the bottom outline row.
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() Point { return Point{r.X + (r.W-1)/2, r.Y + (r.H-1)/2} }

// Contains reports whether p lies on or inside the outline.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Interior returns the cells strictly inside the outline in row-major order.
func (r Rect) Interior() []Point {
	if r.W < 3 || r.H < 3 {
		return nil
	}
	pts := make([]Point, 0, (r.W-2)*(r.H-2))
	for y := r.Y + 1; y < r.Bottom(); y++ {
		for x := r.X + 1; x < r.Right(); x++ {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}

// Overlaps reports whether r and o share any cell once each is grown by pad.
func (r Rect) Overlaps(o Rect, pad int) bool {
	return r.X-pad <= o.Right()+pad && o.X-pad <= r.Right()+pad &&
		r.Y-pad <= o.Bottom()+pad && o.Y-pad <= r.Bottom()+pad
}

// Canvas is a fixed-size grid of tiles.
type Canvas struct {
	w, h  int
	cells []Kind
}

// New returns a w×h canvas filled with [Blank]. Negative sizes are treated as zero.
func New(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{w: w, h: h, cells: make([]Kind, w*h)}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.w }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.h }

// In reports whether p is a valid coordinate.
func (c *Canvas) In(p Point) bool {
	return p.X >= 0 && p.X < c.w && p.Y >= 0 && p.Y < c.h
}

// At returns the tile at p, or [Blank] when p is out of range.
func (c *Canvas) At(p Point) Kind {
	if !c.In(p) {
		return Blank
	}
	return c.cells[p.Y*c.w+p.X]
}

// Set writes k at p.
func (c *Canvas) Set(p Point, k Kind) error {
	if !c.In(p) {
		return errors.New(errors.ErrCodeOutOfBounds, "tile (%d,%d) outside %dx%d canvas", p.X, p.Y, c.w, c.h)
	}
	c.cells[p.Y*c.w+p.X] = k
	return nil
}

// DrawRoom writes r's outline and fills its interior with floor.
// The rectangle must be at least 2×2 and lie fully on the canvas.
func (c *Canvas) DrawRoom(r Rect) error {
	if r.W < 2 || r.H < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "room %dx%d too small to draw", r.W, r.H)
	}
	if !c.In(Point{r.X, r.Y}) || !c.In(Point{r.Right(), r.Bottom()}) {
		return errors.New(errors.ErrCodeOutOfBounds, "room at (%d,%d) size %dx%d outside %dx%d canvas",
			r.X, r.Y, r.W, r.H, c.w, c.h)
	}

	for y := r.Y; y <= r.Bottom(); y++ {
		for x := r.X; x <= r.Right(); x++ {
			c.cells[y*c.w+x] = roomTile(r, x, y)
		}
	}
	return nil
}

func roomTile(r Rect, x, y int) Kind {
	top, bottom := y == r.Y, y == r.Bottom()
	left, right := x == r.X, x == r.Right()
	switch {
	case top && left:
		return CornerNW
	case top && right:
		return CornerNE
	case bottom && left:
		return CornerSW
	case bottom && right:
		return CornerSE
	case top || bottom:
		return WallH
	case left || right:
		return WallV
	}
	return Floor
}

// Count returns how many cells hold k.
func (c *Canvas) Count(k Kind) int {
	n := 0
	for _, v := range c.cells {
		if v == k {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{w: c.w, h: c.h, cells: make([]Kind, len(c.cells))}
	copy(out.cells, c.cells)
	return out
}

// Equal reports whether two canvases have the same size and tiles.
func (c *Canvas) Equal(o *Canvas) bool {
	if c.w != o.w || c.h != o.h {
		return false
	}
	for i := range c.cells {
		if c.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Row returns the glyphs of row y concatenated, one glyph per tile.
func (c *Canvas) Row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		b.WriteString(c.At(Point{x, y}).Glyph())
	}
	return b.String()
}

// Rows returns every row as produced by [Canvas.Row].
func (c *Canvas) Rows() []string {
	rows := make([]string, c.h)
	for y := range rows {
		rows[y] = c.Row(y)
	}
	return rows
}

// String renders the canvas one glyph per tile with a newline after each row.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		b.WriteString(c.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}
