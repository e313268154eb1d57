package dungeon_test

import (
	"fmt"

	"github.com/matzehuels/roguegrid/pkg/dungeon"
)

func ExampleGenerate() {
	d, err := dungeon.Generate(dungeon.DefaultConfig(), 42)
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Width(), d.Height())
	fmt.Println(dungeon.Validate(d) == nil)
	fmt.Println(d.At(d.Goal))
	// Output:
	// 30 30
	// true
	// goal
}
