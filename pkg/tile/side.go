package tile

// Side is one edge of a tile, or a set of edges when combined with |.
type Side uint8

const (
	North Side = 1 << iota
	East
	South
	West

	NoSides  Side = 0
	AllSides      = North | East | South | West
)

// Opposite returns the side facing s. It is only meaningful for single sides.
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return NoSides
}

// Has reports whether every side in o is in s.
func (s Side) Has(o Side) bool { return s&o == o && o != 0 }

// Horizontal reports whether s is East or West.
func (s Side) Horizontal() bool { return s == East || s == West }

// Count returns the number of sides in the set.
func (s Side) Count() int {
	n := 0
	for _, one := range []Side{North, East, South, West} {
		if s&one != 0 {
			n++
		}
	}
	return n
}

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case NoSides:
		return "none"
	}
	out := ""
	for _, one := range []Side{North, East, South, West} {
		if s&one != 0 {
			if out != "" {
				out += "|"
			}
			out += one.String()
		}
	}
	return out
}

// Point is a canvas coordinate. X grows east, Y grows south.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Step returns the neighbor of p across side s.
func (p Point) Step(s Side) Point {
	switch s {
	case North:
		return Point{p.X, p.Y - 1}
	case South:
		return Point{p.X, p.Y + 1}
	case East:
		return Point{p.X + 1, p.Y}
	case West:
		return Point{p.X - 1, p.Y}
	}
	return p
}

// Toward returns the side to move through to get from p toward q along one axis.
// Horizontal difference wins when both differ.
func (p Point) Toward(q Point) Side {
	switch {
	case q.X > p.X:
		return East
	case q.X < p.X:
		return West
	case q.Y > p.Y:
		return South
	case q.Y < p.Y:
		return North
	}
	return NoSides
}
