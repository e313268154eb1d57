package dungeon

import (
	"testing"

	"github.com/matzehuels/roguegrid/pkg/carve"
	"github.com/matzehuels/roguegrid/pkg/grid"
	"github.com/matzehuels/roguegrid/pkg/rng"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

func drawn(t *testing.T, cfg Config, rooms []Room) *tile.Canvas {
	t.Helper()
	c := tile.New(cfg.CanvasSize(), cfg.CanvasSize())
	for _, r := range rooms {
		if err := c.DrawRoom(r.Rect); err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestPlaceDoorsSkipsThinRooms(t *testing.T) {
	cfg := DefaultConfig()
	g := grid.New(3)
	a, b := grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 1, Row: 0}
	g.MarkRoom(a)
	g.MarkRoom(b)
	g.Link(a, b)
	rooms := []Room{
		{Cell: a, Rect: tile.Rect{X: 1, Y: 1, W: 6, H: 2}},
		{Cell: b, Rect: tile.Rect{X: 11, Y: 1, W: 5, H: 5}},
	}
	c := drawn(t, cfg, rooms)
	before := c.Clone()

	conns, err := PlaceDoors(c, g, rooms, cfg, carve.NewRouter(c, rng.New(1), carve.Glyph), rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(conns) != 1 || !conns[0].Skipped {
		t.Fatalf("conns = %+v, want one skipped", conns)
	}
	if !c.Equal(before) {
		t.Error("skipped link changed the canvas")
	}
}

func TestPlaceDoorsRoomToRoom(t *testing.T) {
	cfg := DefaultConfig()
	for seed := uint64(1); seed <= 40; seed++ {
		src := rng.New(seed)
		g := grid.New(3)
		a, b := grid.Cell{Col: 1, Row: 0}, grid.Cell{Col: 1, Row: 1}
		g.MarkRoom(a)
		g.MarkRoom(b)
		g.Link(a, b)
		rooms := PlaceRooms(src, cfg, g)
		c := drawn(t, cfg, rooms)

		conns, err := PlaceDoors(c, g, rooms, cfg, carve.NewRouter(c, src, carve.Glyph), src)
		if err != nil {
			t.Fatal(err)
		}
		conn := conns[0]
		if len(conn.Doors) != 2 {
			t.Fatalf("seed %d: doors = %v", seed, conn.Doors)
		}
		top, bottom := rooms[0], rooms[1]
		if d := conn.Doors[0]; d.Y != top.Bottom() || d.X <= top.X || d.X >= top.Right() {
			t.Errorf("seed %d: first door %v not on bottom wall of %+v", seed, d, top.Rect)
		}
		if d := conn.Doors[1]; d.Y != bottom.Y || d.X <= bottom.X || d.X >= bottom.Right() {
			t.Errorf("seed %d: second door %v not on top wall of %+v", seed, d, bottom.Rect)
		}
		first, last := conn.Path.Points[0], conn.Path.Points[len(conn.Path.Points)-1]
		if first != conn.Doors[0].Step(tile.South) || last != conn.Doors[1].Step(tile.North) {
			t.Errorf("seed %d: path %v..%v does not touch doors %v", seed, first, last, conn.Doors)
		}
		for _, p := range conn.Path.Points {
			if !c.At(p).IsCorridor() {
				t.Errorf("seed %d: %v holds %v", seed, p, c.At(p))
			}
		}
		if got := Reachable(c, top.Center()); !got.Has(bottom.Center()) {
			t.Errorf("seed %d: rooms not joined", seed)
		}
	}
}

func TestPlaceDoorsJunctionCenter(t *testing.T) {
	cfg := DefaultConfig()
	g := grid.New(3)
	west, mid, east, south := grid.Cell{Col: 0, Row: 0}, grid.Cell{Col: 1, Row: 0}, grid.Cell{Col: 2, Row: 0}, grid.Cell{Col: 1, Row: 1}
	for _, c := range []grid.Cell{west, east, south} {
		g.MarkRoom(c)
	}
	g.Link(west, mid)
	g.Link(mid, east)
	g.Link(mid, south)
	rooms := []Room{
		{Cell: west, Rect: tile.Rect{X: 1, Y: 1, W: 5, H: 5}},
		{Cell: east, Rect: tile.Rect{X: 21, Y: 1, W: 5, H: 5}},
		{Cell: south, Rect: tile.Rect{X: 11, Y: 11, W: 5, H: 5}},
	}
	c := drawn(t, cfg, rooms)

	// Every door draw lands on offset 2, which lines each door up with the
	// junction center at (14,4) so all three corridors are straight.
	src := &rng.Script{Values: []int{2, 2, 2}}
	conns, err := PlaceDoors(c, g, rooms, cfg, carve.NewRouter(c, src, carve.Glyph), src)
	if err != nil {
		t.Fatal(err)
	}
	if len(conns) != 3 {
		t.Fatalf("len(conns) = %d", len(conns))
	}
	for _, conn := range conns {
		if len(conn.Doors) != 1 {
			t.Errorf("link %v-%v has %d doors, want 1", conn.Edge.From, conn.Edge.To, len(conn.Doors))
		}
	}
	center := Center(cfg, mid)
	if center != tile.Pt(14, 4) {
		t.Fatalf("Center = %v", center)
	}
	if got := c.At(center); got != tile.TeeS {
		t.Errorf("junction center = %v (%q), want tee_s", got, got.Glyph())
	}
}

func TestPlaceDoorsUniformJunction(t *testing.T) {
	cfg := DefaultConfig()
	g := grid.New(3)
	a, mid, b := grid.Cell{Col: 0, Row: 1}, grid.Cell{Col: 1, Row: 1}, grid.Cell{Col: 2, Row: 1}
	g.MarkRoom(a)
	g.MarkRoom(b)
	g.Link(a, mid)
	g.Link(mid, b)
	src := rng.New(8)
	rooms := PlaceRooms(src, cfg, g)
	c := drawn(t, cfg, rooms)
	if _, err := PlaceDoors(c, g, rooms, cfg, carve.NewRouter(c, src, carve.Uniform), src); err != nil {
		t.Fatal(err)
	}
	if got := c.At(Center(cfg, mid)); got != tile.Rubble {
		t.Errorf("junction center = %v, want rubble", got)
	}
	if c.Count(tile.Door) != 2 {
		t.Errorf("doors = %d, want 2", c.Count(tile.Door))
	}
}
