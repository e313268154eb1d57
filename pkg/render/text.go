package render

import (
	"strings"

	"github.com/matzehuels/roguegrid/pkg/tile"
)

// Style names for text output.
const (
	StyleCompact = "compact"
	StyleWide    = "wide"
)

// ValidStyles is the set of supported text styles.
var ValidStyles = map[string]bool{
	StyleCompact: true,
	StyleWide:    true,
}

// Text renders c one glyph per tile, trailing blanks trimmed.
func Text(c *tile.Canvas) string {
	var b strings.Builder
	for y := 0; y < c.Height(); y++ {
		b.WriteString(strings.TrimRight(c.Row(y), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Wide renders c two columns per tile, trailing blanks trimmed.
func Wide(c *tile.Canvas) string {
	var b strings.Builder
	for y := 0; y < c.Height(); y++ {
		b.WriteString(strings.TrimRight(WideRow(c, y), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// WideRow renders row y of c two columns per tile, untrimmed.
func WideRow(c *tile.Canvas, y int) string {
	var b strings.Builder
	for x := 0; x < c.Width(); x++ {
		k := c.At(tile.Pt(x, y))
		b.WriteString(k.Glyph())
		b.WriteString(Filler(k, c.At(tile.Pt(x+1, y))))
	}
	return b.String()
}

// Filler returns the column drawn between tile a and its east neighbor b.
func Filler(a, b tile.Kind) string {
	if a == tile.Rubble && (b == tile.Rubble || b == tile.Door) ||
		a == tile.Door && b == tile.Rubble {
		return "%"
	}
	if !a.Sides().Has(tile.East) || !b.Sides().Has(tile.West) {
		return " "
	}
	if a.Family() == tile.FamilySingle || b.Family() == tile.FamilySingle {
		return "─"
	}
	return "═"
}
