package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/errors"
	"github.com/matzehuels/roguegrid/pkg/render"
	"github.com/matzehuels/roguegrid/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, d *dungeon.Dungeon, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	needDOT := func() string {
		if dot == "" {
			dot = nodelink.ToDOT(d, nodelink.Options{Detailed: true})
		}
		return dot
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatText:
			data = []byte(renderText(d, opts.Style))
		case FormatWide:
			data = []byte(render.Wide(d.Canvas))
		case FormatANSI:
			data = []byte(render.ANSI(d.Canvas, render.FixedPalette(), nil))
		case FormatJSON:
			data, err = render.JSON(d)
		case FormatDOT:
			data = []byte(needDOT())
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, needDOT())
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, needDOT())
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderText(d *dungeon.Dungeon, style string) string {
	if style == render.StyleCompact {
		return render.Text(d.Canvas)
	}
	return render.Wide(d.Canvas)
}
