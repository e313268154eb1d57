package dungeon

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roguegrid/pkg/carve"
	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/grid"
	"github.com/matzehuels/roguegrid/pkg/rng"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Dungeon is a finished layout.
type Dungeon struct {
	Seed        uint64       `json:"seed"`
	Config      Config       `json:"config"`
	Grid        *grid.Grid   `json:"-"`
	Rooms       []Room       `json:"rooms"`
	Junctions   []grid.Cell  `json:"junctions,omitempty"`
	Connections []Connection `json:"connections"`
	Canvas      *tile.Canvas `json:"-"`
	Markers
}

// Width returns the canvas width in tiles.
func (d *Dungeon) Width() int { return d.Canvas.Width() }

// Height returns the canvas height in tiles.
func (d *Dungeon) Height() int { return d.Canvas.Height() }

// At returns the tile at p.
func (d *Dungeon) At(p tile.Point) tile.Kind { return d.Canvas.At(p) }

// Walkable reports whether an actor may stand at p.
func (d *Dungeon) Walkable(p tile.Point) bool { return d.Canvas.At(p).Walkable() }

// Room returns the room placed in cell.
func (d *Dungeon) Room(cell grid.Cell) (Room, bool) {
	for _, r := range d.Rooms {
		if r.Cell == cell {
			return r, true
		}
	}
	return Room{}, false
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger stage summaries are written to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSource replaces the seeded random source. The seed is still recorded
// on the result.
func WithSource(src rng.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// Generator produces dungeons from one random source.
type Generator struct {
	cfg    Config
	seed   uint64
	src    rng.Source
	logger *log.Logger
}

// New returns a generator for cfg seeded with seed. A zero seed is replaced
// by a clock-derived one; [Generator.Seed] reports the effective value.
func New(cfg Config, seed uint64, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed = rng.Resolve(seed)
	g := &Generator{
		cfg:    cfg,
		seed:   seed,
		src:    rng.New(seed),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate builds a dungeon for cfg and seed in one call.
func Generate(cfg Config, seed uint64, opts ...Option) (*Dungeon, error) {
	g, err := New(cfg, seed, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

// Seed returns the effective seed.
func (g *Generator) Seed() uint64 { return g.seed }

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate runs every stage and returns the finished dungeon. Successive
// calls continue the same random stream and so yield different dungeons.
func (g *Generator) Generate() (*Dungeon, error) {
	began := time.Now()
	cfg, src := g.cfg, g.src
	n := cfg.GridSize

	budget := rng.Between(src, cfg.MinRooms, cfg.MaxRooms)
	start := grid.Cell{Col: src.IntN(n), Row: src.IntN(n)}
	macro := grid.Build(src, n, start, budget)
	junctions := macro.RemoveRooms(src, cfg.Junctions)
	g.logger.Debug("built macro grid",
		"start", start,
		"budget", budget,
		"rooms", len(macro.Rooms()),
		"junctions", len(junctions),
		"edges", len(macro.Edges()))

	rooms := PlaceRooms(src, cfg, macro)
	canvas := tile.New(cfg.CanvasSize(), cfg.CanvasSize())
	for _, r := range rooms {
		if err := canvas.DrawRoom(r.Rect); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "draw room %v", r.Cell)
		}
	}

	router := carve.NewRouter(canvas, src, cfg.Mode())
	conns, err := PlaceDoors(canvas, macro, rooms, cfg, router, src)
	if err != nil {
		return nil, err
	}
	skipped := 0
	for _, c := range conns {
		if c.Skipped {
			skipped++
		}
	}
	g.logger.Debug("carved corridors", "connections", len(conns), "skipped", skipped, "mode", router.Mode())

	markers, err := PlaceMarkers(canvas, macro, rooms, src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "place markers")
	}
	g.logger.Debug("placed markers",
		"start", markers.Start,
		"goal", markers.Goal,
		"goal_distance", markers.GoalDistance,
		"treasure", markers.Treasure != nil,
		"duration", time.Since(began))

	return &Dungeon{
		Seed:        g.seed,
		Config:      cfg,
		Grid:        macro,
		Rooms:       rooms,
		Junctions:   junctions,
		Connections: conns,
		Canvas:      canvas,
		Markers:     markers,
	}, nil
}
