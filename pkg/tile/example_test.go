package tile_test

import (
	"fmt"

	"github.com/matzehuels/roguegrid/pkg/tile"
)

func ExampleCanvas_DrawRoom() {
	c := tile.New(5, 4)
	_ = c.DrawRoom(tile.Rect{X: 0, Y: 0, W: 5, H: 4})
	_ = c.Set(tile.Pt(4, 1), tile.Door)
	fmt.Print(c)
	// Output:
	// ┌───┐
	// │...╬
	// │...│
	// └───┘
}

func ExampleJoin() {
	fmt.Println(tile.Join(tile.North, tile.East).Glyph())
	fmt.Println(tile.Join(tile.West, tile.South).Glyph())
	fmt.Println(tile.FromSides(tile.North | tile.South | tile.East).Glyph())
	// Output:
	// ╚
	// ╗
	// ╠
}
