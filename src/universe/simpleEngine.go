package universe

/*
	Simple engine with two buffers
	All cells state is calculated from the frozen current grid to the new full size buffer
	and this buffer becomes the next generation
*/
func simpleStep(cur Grid) Grid {
	next := createGrid(cur.size)
	cur.Walk(func(r int, c int, cell Cell) {
		next.cells[r][c] = NextState(cell, cur.LiveNeighbours(r, c))
	})
	return next
}
