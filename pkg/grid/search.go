package grid

// Distances returns the hop distance from start to every cell in row-major
// order, or -1 for unreachable cells. Only links whose endpoints are both
// rooms are followed unless viaJunctions is set, in which case non-room
// cells are walked through as well.
func (g *Grid) Distances(start Cell, viaJunctions bool) []int {
	dist, _ := g.bfs(start, viaJunctions)
	return dist
}

// bfs marks cells when they are enqueued and expands neighbors in north,
// east, south, west order. It returns the distance map and the cells in
// discovery order, which is nondecreasing in distance.
func (g *Grid) bfs(start Cell, via bool) ([]int, []Cell) {
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	if !g.In(start) {
		return dist, nil
	}

	dist[g.Index(start)] = 0
	order := []Cell{start}
	for head := 0; head < len(order); head++ {
		c := order[head]
		for _, side := range searchOrder {
			if !g.Linked(c, side) {
				continue
			}
			nb := c.Step(side)
			i := g.Index(nb)
			if dist[i] != -1 {
				continue
			}
			if !via && (!g.IsRoom(c) || !g.IsRoom(nb)) {
				continue
			}
			dist[i] = dist[g.Index(c)] + 1
			order = append(order, nb)
		}
	}
	return dist, order
}

// Farthest returns the room reachable from start over room-to-room links with
// the greatest hop distance, and that distance. Ties go to the room found
// first. A start with no reachable room neighbors returns itself at 0.
func (g *Grid) Farthest(start Cell) (Cell, int) {
	return g.farthest(start, false)
}

// FarthestVia is [Grid.Farthest] but walks through junction cells. Only room
// cells are ever returned.
func (g *Grid) FarthestVia(start Cell) (Cell, int) {
	return g.farthest(start, true)
}

func (g *Grid) farthest(start Cell, via bool) (Cell, int) {
	dist, order := g.bfs(start, via)
	best, bestDist := start, 0
	for _, c := range order {
		if d := dist[g.Index(c)]; g.IsRoom(c) && d > bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

// Connected reports whether every room can reach every other room, walking
// through junctions. A grid with no rooms is connected.
func (g *Grid) Connected() bool {
	rooms := g.Rooms()
	if len(rooms) == 0 {
		return true
	}
	dist := g.Distances(rooms[0], true)
	for _, c := range rooms {
		if dist[g.Index(c)] < 0 {
			return false
		}
	}
	return true
}
