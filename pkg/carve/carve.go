// Package carve routes corridors between two canvas points and writes them
// onto a [tile.Canvas].
//
// A route is either straight, when the endpoints share a row or column, or a
// single bend that goes horizontal-first or vertical-first with equal
// probability. In [Glyph] mode each cell gets the corridor piece joining the
// sides it opens, so bends become corners, the ends line up with the doors
// they touch, and corridors that meet form tees and crosses. In [Uniform]
// mode every cell is [tile.Rubble].
package carve

import (
	"strings"

	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/rng"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Mode selects how corridor cells are drawn.
type Mode uint8

const (
	Glyph Mode = iota
	Uniform
)

// Mode names as accepted in configuration.
const (
	ModeGlyph   = "glyph"
	ModeUniform = "uniform"
)

func (m Mode) String() string {
	if m == Uniform {
		return ModeUniform
	}
	return ModeGlyph
}

// ParseMode parses a mode name. The empty string selects [Glyph].
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ModeGlyph:
		return Glyph, nil
	case ModeUniform, "rubble":
		return Uniform, nil
	}
	return Glyph, errors.New(errors.ErrCodeInvalidConfig, "unknown corridor mode %q (want %s or %s)", s, ModeGlyph, ModeUniform)
}

// Path is a routed corridor.
type Path struct {
	Points []tile.Point `json:"points"`
	// Start is the side of the first point the corridor leaves through.
	Start tile.Side `json:"-"`
	// End is the side of the last point the corridor arrives through.
	End tile.Side `json:"-"`
}

// Corner returns the piece for a cell entered while moving in direction in
// and left moving in direction out.
func Corner(in, out tile.Side) tile.Kind {
	return tile.Join(in.Opposite(), out)
}

// Ends tells which ends of a corridor open onto a door. A door end opens the
// outer side of its cell toward the door; an open end, such as a junction
// center, only joins the corridor itself.
type Ends struct {
	Start, End bool
}

// Doors is a corridor with a door at both ends.
var Doors = Ends{Start: true, End: true}

// Router carves corridors onto a canvas. In [Glyph] mode it remembers the
// sides opened at every cell it has drawn, so a corridor crossing or
// sharing cells with an earlier one merges into tees and crosses instead of
// overwriting it.
type Router struct {
	canvas *tile.Canvas
	src    rng.Source
	mode   Mode
	open   map[tile.Point]tile.Side
}

// NewRouter returns a router that draws on c using src for bend choices.
func NewRouter(c *tile.Canvas, src rng.Source, mode Mode) *Router {
	return &Router{canvas: c, src: src, mode: mode, open: make(map[tile.Point]tile.Side)}
}

// Mode returns the drawing mode.
func (r *Router) Mode() Mode { return r.mode }

// Route computes the cells from a to b without drawing them.
// horiz tells which way the corridor leaves its first door: true for an
// east-west connection, false for north-south. When a and b differ on both
// axes one random draw picks the bend; otherwise no randomness is used.
func (r *Router) Route(a, b tile.Point, horiz bool) Path {
	start, end := tile.East, tile.West
	if !horiz {
		start, end = tile.South, tile.North
	}
	if a == b {
		return Path{Points: []tile.Point{a}, Start: start, End: end}
	}

	var pts []tile.Point
	switch {
	case a.X == b.X || a.Y == b.Y:
		pts = walk(nil, a, b)
	case r.src.IntN(2) == 0:
		pivot := tile.Pt(b.X, a.Y)
		pts = walk(walk(nil, a, pivot), pivot, b)
	default:
		pivot := tile.Pt(a.X, b.Y)
		pts = walk(walk(nil, a, pivot), pivot, b)
	}
	return Path{
		Points: pts,
		Start:  pts[0].Toward(pts[1]),
		End:    pts[len(pts)-1].Toward(pts[len(pts)-2]),
	}
}

// walk appends the straight run from a to b, skipping a when it is already
// the last point.
func walk(pts []tile.Point, a, b tile.Point) []tile.Point {
	if len(pts) == 0 || pts[len(pts)-1] != a {
		pts = append(pts, a)
	}
	p := a
	for p != b {
		p = p.Step(p.Toward(b))
		pts = append(pts, p)
	}
	return pts
}

// Carve routes a corridor from a to b and writes it to the canvas. In
// [Glyph] mode each cell becomes the piece joining every side opened there
// so far, by this corridor or earlier ones. Doors already on the canvas are
// left in place.
func (r *Router) Carve(a, b tile.Point, horiz bool, ends Ends) (Path, error) {
	path := r.Route(a, b, horiz)
	if r.mode == Uniform {
		for _, p := range path.Points {
			if err := r.canvas.Set(p, tile.Rubble); err != nil {
				return path, err
			}
		}
		return path, nil
	}

	sides := Sides(path, horiz, ends)
	for i, p := range path.Points {
		existing := r.canvas.At(p)
		if existing == tile.Door {
			continue
		}
		open, ok := r.open[p]
		if !ok && existing.IsCorridor() && existing != tile.Rubble {
			open = existing.Sides()
		}
		open |= sides[i]
		if open == tile.NoSides {
			continue
		}
		r.open[p] = open
		if err := r.canvas.Set(p, tile.FromSides(open)); err != nil {
			return path, err
		}
	}
	return path, nil
}

// Sides returns the sides each point of path opens. A point with a
// neighbour on both sides gets the sides of its [Corner] piece. A door end
// is treated as moving through the door: east (horiz) or south into the first
// point and out of the last. An open end only opens toward the path.
func Sides(path Path, horiz bool, ends Ends) []tile.Side {
	through := tile.East
	if !horiz {
		through = tile.South
	}
	pts := path.Points
	out := make([]tile.Side, len(pts))
	for i := range pts {
		var in, next tile.Side
		switch {
		case i > 0:
			in = pts[i-1].Toward(pts[i])
		case ends.Start:
			in = through
		}
		switch {
		case i < len(pts)-1:
			next = pts[i].Toward(pts[i+1])
		case ends.End:
			next = through
		}
		switch {
		case in != tile.NoSides && next != tile.NoSides:
			out[i] = Corner(in, next).Sides()
		case in != tile.NoSides:
			out[i] = in.Opposite()
		default:
			out[i] = next
		}
	}
	return out
}
