package nodelink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
)

func generate(t *testing.T, seed uint64) *dungeon.Dungeon {
	t.Helper()
	d, err := dungeon.Generate(dungeon.DefaultConfig(), seed)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return d
}

func TestToDOT(t *testing.T) {
	d := generate(t, 3)
	dot := ToDOT(d, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("DOT should start with an undirected graph header:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("DOT should not contain directed edges")
	}

	var visible int
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, " -- ") && !strings.Contains(line, "invis") {
			visible++
		}
	}
	if want := len(d.Grid.Edges()); visible != want {
		t.Errorf("visible edges = %d, want %d", visible, want)
	}
	if got := strings.Count(dot, "rank=same"); got != d.Grid.Size() {
		t.Errorf("rank groups = %d, want %d", got, d.Grid.Size())
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	d := generate(t, 3)
	plain := ToDOT(d, Options{})
	detailed := ToDOT(d, Options{Detailed: true})

	if strings.Contains(plain, "goal") {
		t.Error("plain labels should not name markers")
	}
	if !strings.Contains(detailed, "goal") || !strings.Contains(detailed, "start") {
		t.Error("detailed labels should name start and goal")
	}
}

func TestRenderSVG(t *testing.T) {
	d := generate(t, 3)
	svg, err := RenderSVG(context.Background(), ToDOT(d, Options{Detailed: true}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 10.00 20.00" width="10" height="20"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte("<svg></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", got)
	}
}
