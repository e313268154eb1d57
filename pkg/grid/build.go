package grid

import (
	"slices"

	"github.com/matzehuels/roguegrid/pkg/rng"
	"github.com/matzehuels/roguegrid/pkg/tile"
)

type frame struct {
	cell Cell
	dirs [4]tile.Side
	next int
}

// Build returns an n×n grid filled by a randomized depth-first traversal from
// start. Each visited cell becomes a room; the traversal stops once maxRooms
// rooms exist. The start cell is always a room, even when maxRooms < 1. A
// start outside the grid is clamped onto it.
//
// The traversal is iterative but visits cells in the same order a recursive
// implementation would: directions are shuffled once per cell when it is
// entered and consumed in that order as the stack unwinds.
func Build(src rng.Source, n int, start Cell, maxRooms int) *Grid {
	g := New(n)
	start.Col = min(max(start.Col, 0), g.n-1)
	start.Row = min(max(start.Row, 0), g.n-1)

	count := 0
	enter := func(c Cell) (frame, bool) {
		g.MarkRoom(c)
		count++
		f := frame{cell: c, dirs: searchOrder}
		if count >= maxRooms {
			return f, false
		}
		src.Shuffle(len(f.dirs), func(i, j int) { f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i] })
		return f, true
	}

	first, more := enter(start)
	if !more {
		return g
	}
	stack := []frame{first}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		side := top.dirs[top.next]
		top.next++

		nb := top.cell.Step(side)
		if !g.In(nb) || g.IsRoom(nb) {
			continue
		}
		g.Link(top.cell, nb)
		f, more := enter(nb)
		if !more {
			return g
		}
		stack = append(stack, f)
	}
	return g
}

// RemoveRooms converts up to n room cells with degree two or more into
// junctions, chosen uniformly at random. Links are left untouched, so the
// grid stays connected. It returns the converted cells in the order chosen.
func (g *Grid) RemoveRooms(src rng.Source, n int) []Cell {
	if n <= 0 {
		return nil
	}
	var candidates []Cell
	for _, c := range g.Rooms() {
		if g.Degree(c) >= 2 {
			candidates = append(candidates, c)
		}
	}
	src.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	removed := slices.Clone(candidates[:min(n, len(candidates))])
	for _, c := range removed {
		g.cells[g.Index(c)].IsRoom = false
	}
	return removed
}
