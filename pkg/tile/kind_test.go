package tile

import "testing"

func TestGlyphsUnique(t *testing.T) {
	// Door and Cross intentionally share ╬.
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		g := k.Glyph()
		if prev, ok := seen[g]; ok && !(g == "╬" && (prev == Door || prev == Cross)) {
			t.Errorf("glyph %q used by %v and %v", g, prev, k)
		}
		seen[g] = k
	}
}

func TestWalkable(t *testing.T) {
	walkable := []Kind{Floor, Door, CorridorH, CorridorV, CorridorSE, CorridorSW,
		CorridorNE, CorridorNW, TeeE, TeeW, TeeS, TeeN, Cross, Rubble, Treasure, Goal}
	blocked := []Kind{Blank, WallH, WallV, CornerNW, CornerNE, CornerSW, CornerSE}

	for _, k := range walkable {
		if !k.Walkable() || !IsWalkable(k.Glyph()) {
			t.Errorf("%v (%q) should be walkable", k, k.Glyph())
		}
	}
	for _, k := range blocked {
		if k.Walkable() || IsWalkable(k.Glyph()) {
			t.Errorf("%v (%q) should not be walkable", k, k.Glyph())
		}
	}
	if IsWalkable("?") {
		t.Error("unknown glyph reported walkable")
	}
	if Kind(200).Walkable() {
		t.Error("out-of-range kind reported walkable")
	}
}

func TestJoinTotal(t *testing.T) {
	tests := []struct {
		a, b Side
		want Kind
	}{
		{North, South, CorridorV},
		{East, West, CorridorH},
		{North, East, CorridorNE},
		{North, West, CorridorNW},
		{South, East, CorridorSE},
		{South, West, CorridorSW},
		{East, East, CorridorH},
		{North, North, CorridorV},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"+"+tt.b.String(), func(t *testing.T) {
			if got := Join(tt.a, tt.b); got != tt.want {
				t.Errorf("Join(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Join(tt.b, tt.a); got != tt.want {
				t.Errorf("Join(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestFromSidesRoundTrip(t *testing.T) {
	for _, k := range []Kind{CorridorH, CorridorV, CorridorSE, CorridorSW, CorridorNE,
		CorridorNW, TeeE, TeeW, TeeS, TeeN, Cross} {
		if got := FromSides(k.Sides()); got != k {
			t.Errorf("FromSides(%v.Sides()) = %v", k, got)
		}
	}
}

func TestSideHelpers(t *testing.T) {
	for _, s := range []Side{North, East, South, West} {
		if s.Opposite().Opposite() != s {
			t.Errorf("%v opposite not involutive", s)
		}
		p := Pt(5, 5)
		if p.Step(s).Step(s.Opposite()) != p {
			t.Errorf("step %v and back did not return", s)
		}
		if got := p.Toward(p.Step(s)); got != s {
			t.Errorf("Toward(step %v) = %v", s, got)
		}
	}
	if (North | East | South).Count() != 3 {
		t.Error("Count of three sides != 3")
	}
	if !AllSides.Has(East | West) {
		t.Error("AllSides should contain east and west")
	}
	if got := (North | West).String(); got != "north|west" {
		t.Errorf("String() = %q", got)
	}
}
