package grid

import (
	"testing"

	"github.com/matzehuels/roguegrid/pkg/rng"
)

func TestFarthestLine(t *testing.T) {
	g := line()
	got, d := g.Farthest(Cell{0, 0})
	if got != (Cell{2, 0}) || d != 2 {
		t.Errorf("Farthest = %v, %d; want (2,0), 2", got, d)
	}
}

func TestFarthestIsolated(t *testing.T) {
	g := New(3)
	g.MarkRoom(Cell{1, 1})
	got, d := g.Farthest(Cell{1, 1})
	if got != (Cell{1, 1}) || d != 0 {
		t.Errorf("Farthest = %v, %d", got, d)
	}
}

func TestFarthestTieGoesToFirstFound(t *testing.T) {
	// Center with all four neighbors: north is expanded first.
	g := New(3)
	center := Cell{1, 1}
	g.MarkRoom(center)
	for _, c := range []Cell{{1, 0}, {2, 1}, {1, 2}, {0, 1}} {
		g.MarkRoom(c)
		g.Link(center, c)
	}
	got, d := g.Farthest(center)
	if got != (Cell{1, 0}) || d != 1 {
		t.Errorf("Farthest = %v, %d; want (1,0), 1", got, d)
	}
}

func TestFarthestSkipsJunctionsUnlessVia(t *testing.T) {
	g := line()
	g.RemoveRooms(rng.New(1), 1)

	got, d := g.Farthest(Cell{0, 0})
	if got != (Cell{0, 0}) || d != 0 {
		t.Errorf("Farthest = %v, %d; junction should block", got, d)
	}
	got, d = g.FarthestVia(Cell{0, 0})
	if got != (Cell{2, 0}) || d != 2 {
		t.Errorf("FarthestVia = %v, %d; want (2,0), 2", got, d)
	}
}

func TestFarthestDeterministic(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g := Build(rng.New(seed), 3, Cell{0, 0}, 9)
		c1, d1 := g.Farthest(Cell{0, 0})
		c2, d2 := g.Farthest(Cell{0, 0})
		if c1 != c2 || d1 != d2 {
			t.Fatalf("seed %d: %v/%d then %v/%d", seed, c1, d1, c2, d2)
		}
		dist := g.Distances(Cell{0, 0}, false)
		for i, v := range dist {
			if v > d1 {
				t.Fatalf("seed %d: cell %v at %d beyond farthest %d", seed, g.CellAt(i), v, d1)
			}
		}
	}
}

func TestDistancesOutOfRange(t *testing.T) {
	g := line()
	for _, d := range g.Distances(Cell{5, 5}, true) {
		if d != -1 {
			t.Fatal("distance set for out-of-range start")
		}
	}
}
