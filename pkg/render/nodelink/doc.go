// Package nodelink renders a dungeon's macro grid as a node-link diagram.
//
// # Overview
//
// Each macro cell becomes a node placed on its grid row; links between
// cells become edges. Rooms are drawn as filled boxes, junctions as small
// points, and unused cells are kept as invisible placeholders so the
// diagram preserves the grid's shape.
//
// # Usage
//
//	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Markers (start, treasure, goal) are highlighted when present.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering.
package nodelink
