// Package pkg provides the core libraries for roguegrid procedural dungeons.
//
// # Overview
//
// roguegrid builds small roguelike levels on a square tile canvas. A coarse
// macro grid decides which cells hold rooms and how they connect; the tile
// stage then places a rectangular room in every room cell, routes corridors
// between linked cells, and drops a start, a treasure, and a goal. The pkg
// directory is organized into four areas:
//
//  1. Primitives: [tile], [grid], [rng]
//  2. Generation: [carve], [dungeon]
//  3. Output: [render], [render/nodelink], [pipeline], [cache]
//  4. Play: [session], [observability]
//
// # Architecture
//
// The typical data flow through roguegrid:
//
//	seed + Config
//	     ↓
//	[grid] package (spanning tree over the macro grid, junctions)
//	     ↓
//	[dungeon] package (rooms, doors, corridors via [carve], markers)
//	     ↓
//	[render] package (text, ANSI, JSON) or [render/nodelink] (DOT, SVG, PNG)
//
// # Quick Start
//
// Generate a dungeon and print it:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/roguegrid/pkg/dungeon"
//	    "github.com/matzehuels/roguegrid/pkg/render"
//	)
//
//	d, err := dungeon.Generate(dungeon.DefaultConfig(), 42)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(render.Wide(d.Canvas))
//
// The same seed and Config always produce the same dungeon.
//
// # Main Packages
//
// [tile] - The tile canvas, tile kinds and their glyphs, and the four sides
// as a bitmask.
//
// [grid] - The macro grid: randomized depth-first spanning tree, room
// removal that leaves junctions, and breadth-first farthest-cell search.
//
// [carve] - Corridor routing between two doors, drawn either as box glyphs
// or as uniform corridor tiles.
//
// [dungeon] - Config, room placement, doors, markers, and the [dungeon.Generate]
// entry point. [dungeon.Validate] checks the layout invariants.
//
// [render] - Compact and wide text, ANSI color, and the JSON document.
//
// [render/nodelink] - The macro grid as a Graphviz graph (DOT, SVG, PNG).
//
// [pipeline] - Generate → render orchestration shared by the CLI and HTTP
// server. Rendered artifacts go through a [cache.Cache].
//
// [session] - Interactive play: move an actor around a generated dungeon,
// pick up the treasure, reach the goal. Sessions live in a TTL store.
//
// [observability] - Hook interfaces for generation, play, and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/dungeon/...      # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [tile]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/tile
// [grid]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/grid
// [rng]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/rng
// [carve]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/carve
// [dungeon]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/dungeon
// [dungeon.Generate]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/dungeon#Generate
// [dungeon.Validate]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/dungeon#Validate
// [render]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/cache
// [cache.Cache]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/cache#Cache
// [session]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/session
// [observability]: https://pkg.go.dev/github.com/matzehuels/roguegrid/pkg/observability
package pkg
