// Package pipeline provides the generate → render pipeline for roguegrid.
//
// This package is shared by the CLI and the HTTP API so both entry points
// resolve seeds, validate configuration and produce artifacts the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Build a dungeon from a configuration and seed
//  2. Render: Produce output in one or more formats (text, ansi, JSON, DOT, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(0), logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Seed:    42,
//	    Formats: []string{pipeline.FormatText, pipeline.FormatJSON},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.Artifacts[pipeline.FormatText]))
//
// Run individual stages:
//
//	d, err := runner.Generate(ctx, opts)
//	artifacts, err := runner.Render(ctx, d, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultStyle is the default style of the text format.
const DefaultStyle = render.StyleWide

// Format constants for output formats.
const (
	FormatText = "text"
	FormatWide = "wide"
	FormatANSI = "ansi"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatWide: true,
	FormatANSI: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// FormatNames lists the output formats in display order.
var FormatNames = []string{FormatText, FormatWide, FormatANSI, FormatJSON, FormatDOT, FormatSVG, FormatPNG}

var contentTypes = map[string]string{
	FormatText: "text/plain; charset=utf-8",
	FormatWide: "text/plain; charset=utf-8",
	FormatANSI: "text/plain; charset=utf-8",
	FormatJSON: "application/json",
	FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
}

var extensions = map[string]string{
	FormatText: "txt",
	FormatWide: "txt",
	FormatANSI: "ans",
	FormatJSON: "json",
	FormatDOT:  "dot",
	FormatSVG:  "svg",
	FormatPNG:  "png",
}

// ContentType returns the MIME type of a format.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Extension returns the file extension (without dot) of a format.
func Extension(format string) string {
	if ext, ok := extensions[format]; ok {
		return ext
	}
	return format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Seed   uint64         `json:"seed,omitempty"` // 0 picks a time-derived seed
	Config dungeon.Config `json:"config"`
	Check  bool           `json:"check,omitempty"` // fail when the result breaks a layout invariant

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"` // layout of the text format

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and API responses.
	RunID uuid.UUID

	// Dungeon is the generated layout.
	Dungeon *dungeon.Dungeon

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Seed         uint64
	Rooms        int
	Junctions    int
	Edges        int
	GoalDistance int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, wide, ansi, json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a text style is valid.
func ValidateStyle(style string) error {
	if !render.ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: compact, wide)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields. It is idempotent.
func (o *Options) SetDefaults() {
	o.Config.SetDefaults()
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks every field.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}
