// Package tile defines the fine-grained tile vocabulary of a dungeon and the
// [Canvas] that holds it.
//
// # Kinds
//
// Every canvas cell holds one [Kind] from a closed set. Room outlines use the
// single-line box-drawing family (─ │ ┌ ┐ └ ┘), corridors use the double-line
// family (═ ║ ╔ ╗ ╚ ╝ plus tees and a cross for junctions), doors are ╬ and
// room interiors are floor. Each kind maps to exactly one glyph via
// [Kind.Glyph], and [Kind.Walkable] answers whether an actor may stand on it.
//
// # Sides
//
// Corridor shapes are described by the set of cell sides they open onto.
// [Join] resolves two sides into the corridor piece that connects them and
// [FromSides] resolves any side set, so shape selection is a table lookup
// instead of a chain of direction comparisons.
//
// # Canvas
//
// [Canvas] is a fixed W×H grid initialized to [Blank]. All writes are
// bounds-checked and report OUT_OF_BOUNDS errors; later writes overwrite
// earlier ones.
package tile
