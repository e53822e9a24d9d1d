package universe

import "github.com/pkg/errors"

type Cell bool

const (
	Dead  Cell = false
	Alive Cell = true
)

func (c Cell) String() string {
	if c {
		return "alive"
	}
	return "dead"
}

/*
	Grid is the square N x N field of cells for one generation.
	The exported API is read only: a Grid handed out by Step or Snapshot is never changed afterwards.
	Cells are addressed by (row, col), there is no wraparound.
*/
type Grid struct {
	size  int
	cells [][]Cell
}

//NewGrid allocates the grid with all cells dead
func NewGrid(n int) (Grid, error) {
	if n <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidDimension, "[NewGrid] dimension %d", n)
	}
	return createGrid(n), nil
}

//Size returns the grid dimension N
func (g Grid) Size() int {
	return g.size
}

//At returns the cell state at row, col
func (g Grid) At(row int, col int) (Cell, error) {
	if !g.inBounds(row, col) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Grid.At] (%d, %d) on %dx%d grid", row, col, g.size, g.size)
	}
	return g.cells[row][col], nil
}

//LiveNeighbours counts the alive cells among the up to 8 positions around row, col
//positions outside the grid are not considered at all
func (g Grid) LiveNeighbours(row int, col int) int {
	count := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nr := row + i
			nc := col + j
			//skip coordinates outside the grid
			if !g.inBounds(nr, nc) {
				continue
			}
			if g.cells[nr][nc] {
				count++
			}
		}
	}
	return count
}

//LiveCells returns the count of alive cells
func (g Grid) LiveCells() int {
	live := 0
	g.Walk(func(_ int, _ int, c Cell) {
		if c {
			live++
		}
	})
	return live
}

//Walk walks the entire grid row by row and calls cb for each cell
func (g Grid) Walk(cb func(row int, col int, c Cell)) {
	for r := range g.cells {
		for c := range g.cells[r] {
			cb(r, c, g.cells[r][c])
		}
	}
}

//Equal reports whether both grids have the same dimension and cell states
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

func (g Grid) inBounds(row int, col int) bool {
	return row >= 0 && col >= 0 && row < g.size && col < g.size
}

//clone returns the deep copy sharing no memory with g
func (g Grid) clone() Grid {
	c := createGrid(g.size)
	for r := range g.cells {
		copy(c.cells[r], g.cells[r])
	}
	return c
}

//createGrid allocates the rows over the single backing slice
func createGrid(n int) Grid {
	g := Grid{size: n, cells: make([][]Cell, n)}
	b := make([]Cell, n*n)
	for i := range g.cells {
		start := n * i
		g.cells[i] = b[start : start+n : start+n]
	}
	return g
}
