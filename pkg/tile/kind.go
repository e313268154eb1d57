package tile

// Kind identifies what occupies one canvas cell.
type Kind uint8

const (
	Blank Kind = iota
	Floor

	// Room outline.
	WallH
	WallV
	CornerNW
	CornerNE
	CornerSW
	CornerSE

	Door

	// Corridors, named by the sides they open onto.
	CorridorH  // east-west
	CorridorV  // north-south
	CorridorSE // ╔
	CorridorSW // ╗
	CorridorNE // ╚
	CorridorNW // ╝
	TeeE       // ╠ north, south, east
	TeeW       // ╣ north, south, west
	TeeS       // ╦ east, west, south
	TeeN       // ╩ east, west, north
	Cross      // all four

	Rubble
	Treasure
	Goal

	numKinds
)

type kindInfo struct {
	name     string
	glyph    string
	walkable bool
	sides    Side
	family   Family
}

// Family groups kinds by the line weight they draw with.
type Family uint8

const (
	FamilyNone Family = iota
	FamilySingle
	FamilyDouble
	FamilyBoth
)

var kinds = [numKinds]kindInfo{
	Blank:    {"blank", " ", false, NoSides, FamilyNone},
	Floor:    {"floor", ".", true, NoSides, FamilyNone},
	WallH:    {"wall_h", "─", false, East | West, FamilySingle},
	WallV:    {"wall_v", "│", false, North | South, FamilySingle},
	CornerNW: {"corner_nw", "┌", false, East | South, FamilySingle},
	CornerNE: {"corner_ne", "┐", false, West | South, FamilySingle},
	CornerSW: {"corner_sw", "└", false, North | East, FamilySingle},
	CornerSE: {"corner_se", "┘", false, North | West, FamilySingle},

	Door: {"door", "╬", true, AllSides, FamilyBoth},

	CorridorH:  {"corridor_h", "═", true, East | West, FamilyDouble},
	CorridorV:  {"corridor_v", "║", true, North | South, FamilyDouble},
	CorridorSE: {"corridor_se", "╔", true, South | East, FamilyDouble},
	CorridorSW: {"corridor_sw", "╗", true, South | West, FamilyDouble},
	CorridorNE: {"corridor_ne", "╚", true, North | East, FamilyDouble},
	CorridorNW: {"corridor_nw", "╝", true, North | West, FamilyDouble},
	TeeE:       {"tee_e", "╠", true, North | South | East, FamilyDouble},
	TeeW:       {"tee_w", "╣", true, North | South | West, FamilyDouble},
	TeeS:       {"tee_s", "╦", true, East | West | South, FamilyDouble},
	TeeN:       {"tee_n", "╩", true, East | West | North, FamilyDouble},
	Cross:      {"cross", "╬", true, AllSides, FamilyDouble},

	Rubble:   {"rubble", "%", true, NoSides, FamilyNone},
	Treasure: {"treasure", "$", true, NoSides, FamilyNone},
	Goal:     {"goal", ">", true, NoSides, FamilyNone},
}

// Glyph returns the display string for k.
func (k Kind) Glyph() string {
	if k >= numKinds {
		return "?"
	}
	return kinds[k].glyph
}

// String returns the kind's name.
func (k Kind) String() string {
	if k >= numKinds {
		return "unknown"
	}
	return kinds[k].name
}

// Walkable reports whether an actor may stand on k.
func (k Kind) Walkable() bool {
	return k < numKinds && kinds[k].walkable
}

// Sides returns the sides k visually connects to.
func (k Kind) Sides() Side {
	if k >= numKinds {
		return NoSides
	}
	return kinds[k].sides
}

// Family returns the line weight k is drawn with.
func (k Kind) Family() Family {
	if k >= numKinds {
		return FamilyNone
	}
	return kinds[k].family
}

// IsCorridor reports whether k is any corridor piece, rubble included.
func (k Kind) IsCorridor() bool {
	return (k >= CorridorH && k <= Cross) || k == Rubble
}

// IsWall reports whether k is part of a room outline.
func (k Kind) IsWall() bool {
	return k >= WallH && k <= CornerSE
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

var walkableGlyphs = func() map[string]bool {
	m := make(map[string]bool, numKinds)
	for _, info := range kinds {
		m[info.glyph] = m[info.glyph] || info.walkable
	}
	return m
}()

// IsWalkable reports whether a rendered glyph is one an actor may stand on.
// Unknown glyphs are not walkable.
func IsWalkable(glyph string) bool {
	return walkableGlyphs[glyph]
}

var bySides = map[Side]Kind{
	East | West:          CorridorH,
	North | South:        CorridorV,
	South | East:         CorridorSE,
	South | West:         CorridorSW,
	North | East:         CorridorNE,
	North | West:         CorridorNW,
	North | South | East: TeeE,
	North | South | West: TeeW,
	East | West | South:  TeeS,
	East | West | North:  TeeN,
	AllSides:             Cross,
}

// FromSides returns the corridor piece opening onto exactly the given sides.
// A single side resolves to the straight piece along its axis; an empty set
// resolves to [Cross].
func FromSides(s Side) Kind {
	switch s {
	case North, South:
		return CorridorV
	case East, West:
		return CorridorH
	case NoSides:
		return Cross
	}
	return bySides[s&AllSides]
}

// Join returns the corridor piece that connects side a to side b.
// Equal sides resolve to the straight piece along their axis.
func Join(a, b Side) Kind {
	return FromSides(a | b)
}
