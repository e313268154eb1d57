package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/roguegrid/pkg/tile"
)

var (
	colorWall     = lipgloss.Color("245")
	colorFloor    = lipgloss.Color("238")
	colorCorridor = lipgloss.Color("36")
	colorDoor     = lipgloss.Color("220")
	colorRubble   = lipgloss.Color("137")
	colorTreasure = lipgloss.Color("226")
	colorGoal     = lipgloss.Color("167")
	colorActor    = lipgloss.Color("75")
)

// Palette maps tile kinds to styles.
type Palette struct {
	Wall, Floor, Corridor, Door, Rubble, Treasure, Goal, Actor lipgloss.Style
}

// DefaultPalette returns the standard colors for the process's terminal.
// Color is dropped when stdout does not support it.
func DefaultPalette() Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// FixedPalette returns the standard colors at a fixed 256-color profile,
// whatever the output is attached to. Artifacts that are written, cached or
// served use it so the same dungeon always yields the same bytes.
func FixedPalette() Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	return NewPalette(r)
}

// NewPalette returns the standard colors styled by r.
func NewPalette(r *lipgloss.Renderer) Palette {
	fg := func(c lipgloss.Color) lipgloss.Style { return r.NewStyle().Foreground(c) }
	return Palette{
		Wall:     fg(colorWall),
		Floor:    fg(colorFloor),
		Corridor: fg(colorCorridor),
		Door:     fg(colorDoor).Bold(true),
		Rubble:   fg(colorRubble),
		Treasure: fg(colorTreasure).Bold(true),
		Goal:     fg(colorGoal).Bold(true),
		Actor:    fg(colorActor).Bold(true),
	}
}

func (p Palette) style(k tile.Kind) (lipgloss.Style, bool) {
	switch {
	case k.IsWall():
		return p.Wall, true
	case k == tile.Floor:
		return p.Floor, true
	case k == tile.Rubble:
		return p.Rubble, true
	case k.IsCorridor():
		return p.Corridor, true
	case k == tile.Door:
		return p.Door, true
	case k == tile.Treasure:
		return p.Treasure, true
	case k == tile.Goal:
		return p.Goal, true
	}
	return lipgloss.Style{}, false
}

// ActorGlyph marks the player in the play loop.
const ActorGlyph = "@"

// ANSI renders c like [Wide] with colors. When actor is non-nil the tile at
// that position is replaced by [ActorGlyph].
func ANSI(c *tile.Canvas, p Palette, actor *tile.Point) string {
	var b strings.Builder
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			pt := tile.Pt(x, y)
			k := c.At(pt)
			fill := Filler(k, c.At(tile.Pt(x+1, y)))
			if actor != nil && *actor == pt {
				b.WriteString(p.Actor.Render(ActorGlyph))
				b.WriteString(" ")
				continue
			}
			st, ok := p.style(k)
			if !ok {
				b.WriteString(k.Glyph() + fill)
				continue
			}
			b.WriteString(st.Render(k.Glyph() + fill))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
