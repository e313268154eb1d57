// Package dungeon assembles a complete dungeon from a seed.
//
// A [Generator] runs the stages in order, all drawing from one random source:
//
//  1. Build the macro grid by randomized depth-first traversal ([grid.Build])
//  2. Optionally convert interior rooms to junctions ([grid.Grid.RemoveRooms])
//  3. Place one room per room cell inside its sub-rectangle ([PlaceRoom])
//  4. Draw every room onto the canvas
//  5. Place doors and carve a corridor for every link ([PlaceDoors])
//  6. Place the start in a dead-end room, the treasure elsewhere, and the
//     goal in the room farthest from the start ([PlaceMarkers])
//
// The result is a [Dungeon]: the finished tile canvas plus the grid, rooms,
// corridors and marker positions that produced it. [Validate] re-checks the
// layout invariants on a finished dungeon and is used by tests and by the
// CLI's --check flag.
//
// Generation is single-threaded. A Generator owns its random source and is
// not safe for concurrent use; create one per goroutine.
package dungeon
