package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/roguegrid/pkg/tile"
)

func TestANSIKeepsWideGeometry(t *testing.T) {
	c := roomCanvas(t)
	out := ANSI(c, DefaultPalette(), nil)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != c.Height() {
		t.Fatalf("got %d lines, want %d", len(lines), c.Height())
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 2*c.Width() {
			t.Errorf("line %d width = %d, want %d", i, w, 2*c.Width())
		}
	}
}

func TestANSIDrawsActor(t *testing.T) {
	c := roomCanvas(t)
	actor := tile.Pt(1, 1)
	out := ANSI(c, DefaultPalette(), &actor)
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[1], ActorGlyph) {
		t.Errorf("row 1 = %q, want actor glyph", lines[1])
	}
	if strings.Contains(lines[1], ".") {
		t.Errorf("row 1 = %q, floor should be covered by the actor", lines[1])
	}
	if strings.Contains(lines[0], ActorGlyph) {
		t.Errorf("row 0 = %q, actor drawn on the wrong row", lines[0])
	}
}

func TestFixedPaletteAlwaysColors(t *testing.T) {
	c := roomCanvas(t)
	// Escapes are emitted even when stdout is not a terminal.
	out := ANSI(c, FixedPalette(), nil)
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("no escape codes in %q", out)
	}
	if again := ANSI(c, FixedPalette(), nil); again != out {
		t.Error("fixed palette output is not stable")
	}
	if strings.Contains(out, "\x1b[38;2;") {
		t.Error("fixed palette emitted true color")
	}
}
