package main

// FloodFill recolors the 4-connected region around (sx, sy) that shares the
// seed's current cell value. It walks an explicit stack with a visited
// arena of size*size flags, so large grids never recurse.
func FloodFill(g *Grid, sx, sy int, fill Cell) {
	target, err := g.Get(sx, sy)
	if err != nil || target == fill {
		return
	}

	size := g.size
	visited := make([]bool, size*size)
	stack := []point{{sx, sy}}

	for len(stack) > 0 {
		last := len(stack) - 1
		p := stack[last]
		stack = stack[:last]

		if !g.InBounds(p.X, p.Y) {
			continue
		}
		idx := p.Y*size + p.X
		if visited[idx] || g.cells[p.Y][p.X] != target {
			continue
		}

		visited[idx] = true
		g.cells[p.Y][p.X] = fill

		stack = append(stack,
			point{p.X + 1, p.Y},
			point{p.X - 1, p.Y},
			point{p.X, p.Y + 1},
			point{p.X, p.Y - 1},
		)
	}
}
