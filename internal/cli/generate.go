package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/pipeline"
	"github.com/matzehuels/roguegrid/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	gen     genFlags
	formats string // comma-separated output formats
	output  string // output file (single format) or base path (multiple)
	style   string // text style: compact or wide
	check   bool   // verify layout invariants
	noColor bool   // plain text on the terminal
	summary bool   // print a room table after generation
	noCache bool   // skip the on-disk artifact cache
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dungeon",
		Long: `Generate a dungeon and print it or write it to files.

Text formats go to stdout unless --output is given; binary formats (svg, png)
need a file and default to dungeon-<seed>.<ext>.`,
		Example: `  roguegrid generate --seed 42
  roguegrid generate -s 42 -f json,svg -o maps/level1
  roguegrid generate --corridors uniform --junctions 2 --rooms 5-7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	addGenFlags(cmd, &opts.gen, true)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): text (default), wide, ansi, json, dot, svg, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&opts.style, "style", "", "text style: wide (default), compact")
	cmd.Flags().BoolVar(&opts.check, "check", false, "verify layout invariants and fail on violations")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored map output")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print a table of rooms and markers")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "re-render svg/png instead of reading the artifact cache")
	registerGenerateCompletions(cmd)

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts *generateOpts) error {
	ctx := cmd.Context()
	cfg, err := opts.gen.apply(cmd, c.config.Generator)
	if err != nil {
		return err
	}
	seed, err := opts.gen.seedValue()
	if err != nil {
		return err
	}
	style := opts.style
	if style == "" {
		style = c.config.Render.Style
	}
	formats := parseFormats(opts.formats)
	if opts.output != "" {
		if err := errors.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}

	prog := newProgress(c.Logger)
	var spinner *Spinner
	if needsGraphviz(formats) {
		spinner = newSpinnerWithContext(ctx, "Rendering with Graphviz...")
		spinner.Start()
	}

	res, err := c.newRunner(!opts.noCache).Execute(ctx, pipeline.Options{
		Seed:    seed,
		Config:  cfg,
		Formats: formats,
		Style:   style,
		Check:   opts.check,
	})
	if spinner != nil {
		switch {
		case spinner.Cancelled():
			spinner.StopWithError("Rendering cancelled")
		case err != nil:
			spinner.StopWithError("Rendering failed")
		default:
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d rooms", res.Stats.Rooms))

	color := c.config.Render.Color && !opts.noColor
	if err := writeArtifacts(ctx, res, formats, opts.output, style, color); err != nil {
		return err
	}

	if opts.summary {
		printNewline()
		printStats(res.Stats.Seed, res.Stats.Rooms, res.Stats.Junctions, res.Stats.GoalDistance)
		fmt.Println(roomTable(res.Dungeon))
	}
	if opts.check {
		printSuccess("layout checks passed")
	}
	return nil
}

func needsGraphviz(formats []string) bool {
	return slices.Contains(formats, pipeline.FormatSVG) || slices.Contains(formats, pipeline.FormatPNG)
}

func isBinary(format string) bool {
	return format == pipeline.FormatSVG || format == pipeline.FormatPNG
}

// writeArtifacts prints text artifacts to stdout and writes the rest to files.
func writeArtifacts(ctx context.Context, res *pipeline.Result, formats []string, output, style string, color bool) error {
	logger := loggerFromContext(ctx)

	if output == "" {
		base := fmt.Sprintf("dungeon-%d", res.Dungeon.Seed)
		for _, format := range formats {
			if !isBinary(format) {
				fmt.Print(terminalText(res, format, style, color))
				continue
			}
			path := base + "." + pipeline.Extension(format)
			if err := writeFile(path, res.Artifacts[format]); err != nil {
				return err
			}
			printFile(path)
		}
		return nil
	}

	if len(formats) == 1 {
		if err := writeFile(output, res.Artifacts[formats[0]]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "format", formats[0], "path", output)
		printFile(output)
		return nil
	}

	base := basePath(output)
	for _, format := range formats {
		path := base + "." + pipeline.Extension(format)
		if format == pipeline.FormatWide {
			path = base + ".wide." + pipeline.Extension(format)
		}
		if err := writeFile(path, res.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "format", format, "path", path)
		printFile(path)
	}
	return nil
}

// terminalText returns what a text-like format looks like on stdout.
// Wide text is colored when color is on.
func terminalText(res *pipeline.Result, format, style string, color bool) string {
	wide := format == pipeline.FormatWide || format == pipeline.FormatText && style == render.StyleWide
	if color && wide {
		return render.ANSI(res.Dungeon.Canvas, render.DefaultPalette(), nil)
	}
	data := string(res.Artifacts[format])
	if format == pipeline.FormatJSON && !strings.HasSuffix(data, "\n") {
		data += "\n"
	}
	return data
}

// basePath strips a known format extension from output.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] || ext == ".txt" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// markerRoles returns the marker names placed in each room cell.
func markerRoles(d *dungeon.Dungeon) map[string][]string {
	roles := make(map[string][]string)
	add := func(key, role string) { roles[key] = append(roles[key], role) }
	add(d.StartCell.String(), "start")
	if d.TreasureCell != nil {
		add(d.TreasureCell.String(), "treasure")
	}
	add(d.GoalCell.String(), "goal")
	return roles
}
