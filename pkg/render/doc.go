// Package render turns a generated dungeon into displayable output.
//
// # Text
//
// [Text] writes one glyph per tile. [Wide] writes two columns per tile so
// the map keeps a roughly square aspect in a terminal: each tile is followed
// by a filler that continues the line it draws when its east neighbor
// continues it too (─ for room outlines, ═ for corridors, % for rubble) and a
// space otherwise.
//
//	fmt.Print(render.Wide(d.Canvas))
//
// # ANSI
//
// [ANSI] is the wide rendering colored per tile kind with lipgloss. An
// optional actor position is drawn on top, which is what the play loop uses.
//
// # JSON
//
// [JSON] serializes the layout: configuration, rooms, links, corridors,
// markers and the compact text rows.
//
// # Node-link diagrams
//
// The [nodelink] subpackage renders the macro grid as a Graphviz diagram
// (DOT, SVG, PNG).
package render
