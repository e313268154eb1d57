package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/roguegrid/pkg/cache"
	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/observability"
	"github.com/matzehuels/roguegrid/pkg/rng"
)

// Runner executes the pipeline.
//
// The Runner holds no per-run state. Rendered artifacts go through Cache, so
// a dungeon requested twice with the same seed and settings renders once.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// falls back to log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.Seed = rng.Resolve(opts.Seed)

	result := &Result{RunID: uuid.New()}
	logger := opts.Logger.With("run", result.RunID.String()[:8])
	opts.Logger = logger

	// Stage 1: Generate
	genStart := time.Now()
	d, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Dungeon = d
	result.Stats = Stats{
		Seed:         d.Seed,
		Rooms:        len(d.Rooms),
		Junctions:    len(d.Junctions),
		Edges:        len(d.Connections),
		GoalDistance: d.GoalDistance,
		GenerateTime: time.Since(genStart),
	}

	logger.Info("generated dungeon",
		"seed", d.Seed,
		"rooms", len(d.Rooms),
		"junctions", len(d.Junctions),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate builds the dungeon described by opts.
func (r *Runner) Generate(ctx context.Context, opts Options) (d *dungeon.Dungeon, err error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	seed := rng.Resolve(opts.Seed)

	hooks := observability.Pipeline()
	hooks.OnGenerateStart(ctx, seed)
	start := time.Now()
	defer func() {
		rooms := 0
		if d != nil {
			rooms = len(d.Rooms)
		}
		hooks.OnGenerateComplete(ctx, seed, rooms, time.Since(start), err)
	}()

	d, err = dungeon.Generate(opts.Config, seed, dungeon.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}
	if opts.Check {
		if err := dungeon.Validate(d); err != nil {
			return nil, err
		}
		opts.Logger.Debug("layout checks passed", "seed", seed)
	}
	return d, nil
}

// Render produces every format in opts from d.
func (r *Runner) Render(ctx context.Context, d *dungeon.Dungeon, opts Options) (artifacts map[string][]byte, err error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}
	if err := ValidateStyle(opts.Style); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	artifacts = make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, f := range opts.Formats {
		data, hit, cerr := r.Cache.Get(ctx, r.artifactKey(d, f, opts.Style))
		if cerr != nil {
			opts.Logger.Warn("artifact cache read failed", "format", f, "error", cerr)
		}
		if hit {
			artifacts[f] = data
			continue
		}
		missing = append(missing, f)
	}
	if hits := len(opts.Formats) - len(missing); hits > 0 {
		opts.Logger.Debug("artifact cache hit", "formats", hits)
	}
	if len(missing) == 0 {
		return artifacts, nil
	}

	sub := opts
	sub.Formats = missing
	rendered, err := Render(ctx, d, sub)
	if err != nil {
		return nil, err
	}
	for f, data := range rendered {
		artifacts[f] = data
		if cerr := r.Cache.Set(ctx, r.artifactKey(d, f, opts.Style), data, cache.TTLArtifact); cerr != nil {
			opts.Logger.Warn("artifact cache write failed", "format", f, "error", cerr)
		}
	}
	return artifacts, nil
}

// artifactKey keys an artifact by everything that determines its bytes.
// Style only affects the text format.
func (r *Runner) artifactKey(d *dungeon.Dungeon, format, style string) string {
	if format != FormatText {
		style = ""
	}
	return cache.ArtifactKey(d.Seed, d.Config, cache.ArtifactKeyOpts{Format: format, Style: style})
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
