package universe

/*
	Engine with buffers optimization
	works over the copy of the current grid in place and uses the small buffer to store the
	previous and the current line only.
	the previous line is written back when the calculation moves to the next line,
	so any line is replaced only after nobody reads its old state anymore
*/
func smallBuffStep(cur Grid) Grid {
	next := cur.clone()
	if next.size == 0 {
		return next
	}
	prev, line := make([]Cell, next.size), make([]Cell, next.size)
	for r := range next.cells {
		for c := range next.cells[r] {
			line[c] = NextState(next.cells[r][c], next.LiveNeighbours(r, c))
		}
		if r-1 >= 0 {
			copy(next.cells[r-1], prev)
		}
		prev, line = line, prev
	}
	copy(next.cells[next.size-1], prev)
	return next
}
