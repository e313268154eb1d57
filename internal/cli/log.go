// Package cli implements the roguegrid command-line interface.
//
// The CLI generates dungeons, prints their macro grid, serves them over
// HTTP and runs an interactive play loop. It is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - generate: Build a dungeon and write it as text, JSON, DOT, SVG or PNG
//   - grid: Print the macro grid of a dungeon
//   - play: Walk a dungeon in the terminal
//   - serve: Expose generation and play sessions over HTTP
//
// # Configuration
//
// Settings come from built-in defaults, then the TOML config file, then any
// flag set on the command line.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. In verbose
// mode the pipeline, session and HTTP hooks log as well.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roguegrid/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Generated 7 rooms (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Logging hooks
// =============================================================================

// logHooks reports pipeline, session and HTTP events at debug level.
type logHooks struct {
	logger *log.Logger
}

func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l.WithPrefix("hooks")}
	observability.SetPipelineHooks(h)
	observability.SetSessionHooks(h)
	observability.SetHTTPHooks(h)
}

func (h logHooks) OnGenerateStart(_ context.Context, seed uint64) {
	h.logger.Debug("generate start", "seed", seed)
}

func (h logHooks) OnGenerateComplete(_ context.Context, seed uint64, rooms int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "seed", seed, "error", err)
		return
	}
	h.logger.Debug("generate complete", "seed", seed, "rooms", rooms, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("render complete", "formats", formats, "duration", d, "error", err)
}

func (h logHooks) OnSessionStart(_ context.Context, id string, seed uint64) {
	h.logger.Debug("session start", "id", id, "seed", seed)
}

func (h logHooks) OnMove(_ context.Context, id, direction, outcome string) {
	h.logger.Debug("move", "id", id, "direction", direction, "outcome", outcome)
}

func (h logHooks) OnTreasure(_ context.Context, id string, moves int) {
	h.logger.Debug("treasure", "id", id, "moves", moves)
}

func (h logHooks) OnGoal(_ context.Context, id string, moves int, treasure bool) {
	h.logger.Debug("goal", "id", id, "moves", moves, "treasure", treasure)
}

func (h logHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
