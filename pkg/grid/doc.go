// Package grid implements the macro layout of a dungeon: an N×N grid of cells,
// each of which may host a room, connected by corridor-adjacency flags.
//
// # Representation
//
// A [MacroCell] stores only its east and south flags. The link between a cell
// and its west or north neighbor lives on that neighbor, so every undirected
// edge is recorded exactly once, on its lower-index endpoint.
//
// # Construction
//
// [Build] runs a randomized depth-first traversal from a start cell, marking
// cells as rooms and linking each newly reached cell to the cell it was
// reached from. The traversal stops as soon as the room budget is spent, so the
// linked cells always form a spanning tree over the rooms.
//
// [Grid.RemoveRooms] optionally turns interior rooms (degree two or more) into
// junctions: corridor pass-through points that keep their links but host no
// room.
//
// # Search
//
// [Grid.Farthest] runs a breadth-first search over room-to-room links and
// returns the room at maximal hop distance. [Grid.FarthestVia] does the same
// but walks through junctions.
package grid
