package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/roguegrid/pkg/tile"
)

func roomCanvas(t *testing.T) *tile.Canvas {
	t.Helper()
	c := tile.New(5, 3)
	if err := c.DrawRoom(tile.Rect{X: 0, Y: 0, W: 3, H: 3}); err != nil {
		t.Fatalf("DrawRoom: %v", err)
	}
	return c
}

func TestText(t *testing.T) {
	got := Text(roomCanvas(t))
	want := "┌─┐\n│.│\n└─┘\n"
	if got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestWide(t *testing.T) {
	got := Wide(roomCanvas(t))
	want := "┌───┐\n│ . │\n└───┘\n"
	if got != want {
		t.Errorf("Wide() =\n%s\nwant\n%s", got, want)
	}
}

func TestWideRowKeepsWidth(t *testing.T) {
	c := roomCanvas(t)
	for y := 0; y < c.Height(); y++ {
		if n := len([]rune(WideRow(c, y))); n != 2*c.Width() {
			t.Errorf("row %d has %d runes, want %d", y, n, 2*c.Width())
		}
	}
}

func TestFiller(t *testing.T) {
	tests := []struct {
		name string
		a, b tile.Kind
		want string
	}{
		{"wall run", tile.WallH, tile.WallH, "─"},
		{"corner into wall", tile.CornerNW, tile.WallH, "─"},
		{"corridor run", tile.CorridorH, tile.CorridorH, "═"},
		{"door into corridor", tile.Door, tile.CorridorH, "═"},
		{"corridor into door", tile.CorridorH, tile.Door, "═"},
		{"door in wall", tile.WallH, tile.Door, "─"},
		{"rubble run", tile.Rubble, tile.Rubble, "%"},
		{"rubble into door", tile.Rubble, tile.Door, "%"},
		{"door into rubble", tile.Door, tile.Rubble, "%"},
		{"vertical wall", tile.WallV, tile.Floor, " "},
		{"corridor end", tile.CorridorH, tile.Blank, " "},
		{"floor", tile.Floor, tile.Floor, " "},
		{"corner out", tile.CornerNE, tile.Blank, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filler(tt.a, tt.b); got != tt.want {
				t.Errorf("Filler(%v, %v) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTextTrimsTrailingBlanks(t *testing.T) {
	for _, line := range strings.Split(Wide(roomCanvas(t)), "\n") {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %q has trailing blanks", line)
		}
	}
}
