package life

import "lifelab/pkg/core"

// mooreOffsets enumerates the 8-cell Moore neighborhood.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// neighborCount sums the alive Moore neighbors of (x, y) with toroidal wrap.
func neighborCount(g *core.ByteGrid, x, y int) int {
	n := 0
	for _, d := range mooreOffsets {
		nx, ny := g.Wrap(x+d[0], y+d[1])
		if core.IsAlive(g.Cells()[g.Index(nx, ny)]) {
			n++
		}
	}
	return n
}

// nextState applies the survival/birth rule (B3/S23).
func nextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// transitionCell computes one output cell from the read grid and stores it in
// the write grid. It touches no state shared between cells, so any number of
// evaluators may run it concurrently over disjoint cells without locking.
func transitionCell(read, write *core.ByteGrid, x, y int) {
	idx := read.Index(x, y)
	alive := core.IsAlive(read.Cells()[idx])
	if nextState(alive, neighborCount(read, x, y)) {
		write.Cells()[idx] = core.CellAlive
	} else {
		write.Cells()[idx] = core.CellDead
	}
}
