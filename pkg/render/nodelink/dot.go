package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
	"github.com/matzehuels/roguegrid/pkg/grid"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds room rectangles and marker roles to node labels.
	// When false, only the cell coordinate is shown.
	Detailed bool
}

// ToDOT converts the macro grid of d to Graphviz DOT format.
func ToDOT(d *dungeon.Dungeon, opts Options) string {
	g := d.Grid
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.6;\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("\n")

	for row := 0; row < g.Size(); row++ {
		buf.WriteString("  { rank=same;")
		for col := 0; col < g.Size(); col++ {
			fmt.Fprintf(&buf, " %q;", nodeID(grid.Cell{Col: col, Row: row}))
		}
		buf.WriteString(" }\n")
	}
	buf.WriteString("\n")

	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			c := grid.Cell{Col: col, Row: row}
			fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c), strings.Join(fmtAttrs(d, c, opts.Detailed), ", "))
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.Horizontal {
			fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(e.From), nodeID(e.To))
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [weight=4];\n", nodeID(e.From), nodeID(e.To))
	}

	// Invisible column edges keep each grid column stacked.
	for col := 0; col < g.Size(); col++ {
		for row := 0; row+1 < g.Size(); row++ {
			a, b := grid.Cell{Col: col, Row: row}, grid.Cell{Col: col, Row: row + 1}
			if g.Linked(a, tile.South) {
				continue
			}
			fmt.Fprintf(&buf, "  %q -- %q [style=invis, weight=4];\n", nodeID(a), nodeID(b))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c grid.Cell) string {
	return fmt.Sprintf("c%d_%d", c.Col, c.Row)
}

func fmtLabel(d *dungeon.Dungeon, c grid.Cell, detailed bool) string {
	label := c.String()
	if !detailed {
		return label
	}
	if r, ok := d.Room(c); ok {
		label += fmt.Sprintf("\n%dx%d @ %d,%d", r.W, r.H, r.X, r.Y)
	}
	if role := markerRole(d, c); role != "" {
		label += "\n" + role
	}
	return label
}

func markerRole(d *dungeon.Dungeon, c grid.Cell) string {
	var roles []string
	if d.StartCell == c {
		roles = append(roles, "start")
	}
	if d.TreasureCell != nil && *d.TreasureCell == c {
		roles = append(roles, "treasure")
	}
	if d.GoalCell == c {
		roles = append(roles, "goal")
	}
	return strings.Join(roles, ", ")
}

func fmtAttrs(d *dungeon.Dungeon, c grid.Cell, detailed bool) []string {
	g := d.Grid
	switch {
	case g.IsRoom(c):
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(d, c, detailed))}
		switch {
		case d.GoalCell == c:
			attrs = append(attrs, "fillcolor=\"#f4a6a6\"")
		case d.TreasureCell != nil && *d.TreasureCell == c:
			attrs = append(attrs, "fillcolor=\"#fbe38e\"")
		case d.StartCell == c:
			attrs = append(attrs, "fillcolor=\"#a6e3c5\"")
		}
		return attrs
	case g.Degree(c) > 0:
		return []string{"label=\"\"", "shape=point", "width=0.15"}
	default:
		return []string{"label=\"\"", "style=invis"}
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
