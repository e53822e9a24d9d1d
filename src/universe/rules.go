package universe

/*
NextState applies the Game of Life transition to one cell:

	alive with < 2 live neighbours dies (underpopulation)
	alive with 2 or 3 live neighbours survives
	alive with > 3 live neighbours dies (overcrowding)
	dead with exactly 3 live neighbours becomes alive (reproduction)
	dead with any other count stays dead
*/
func NextState(c Cell, liveNeighbours int) Cell {
	switch {
	case liveNeighbours < 2:
		return Dead
	case liveNeighbours > 3:
		return Dead
	case liveNeighbours == 3:
		return Alive
	default:
		return c
	}
}
