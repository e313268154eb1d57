package grid_test

import (
	"fmt"

	"github.com/matzehuels/roguegrid/pkg/grid"
)

func ExampleGrid_Farthest() {
	g := grid.New(3)
	path := []grid.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 1, Row: 1}, {Col: 1, Row: 2}}
	for i, c := range path {
		g.MarkRoom(c)
		if i > 0 {
			g.Link(path[i-1], c)
		}
	}
	fmt.Print(g)
	far, hops := g.Farthest(path[0])
	fmt.Println(far, hops)
	// Output:
	// R---R   #
	//     |
	// #   R   #
	//     |
	// #   R   #
	// (1,2) 3
}
