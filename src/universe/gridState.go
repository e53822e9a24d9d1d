package universe

import (
	"sync"

	"github.com/pkg/errors"
)

//GridState holds the current generation and serialises every access to it
//while an Evolver runs this state the cell editing operations are rejected with ErrRunning
type GridState struct {
	mu     sync.Mutex
	grid   Grid
	locked bool
}

//NewGridState creates the state with an n x n grid of dead cells
func NewGridState(n int) (*GridState, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGridState]")
	}
	return &GridState{grid: g}, nil
}

//Size returns the grid dimension N
func (s *GridState) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.size
}

//Toggle inverses the cell state at row, col
func (s *GridState) Toggle(row int, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editable("[Toggle]", row, col); err != nil {
		return err
	}
	s.grid.cells[row][col] = !s.grid.cells[row][col]
	return nil
}

//Set places the cell state at row, col
func (s *GridState) Set(row int, col int, c Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editable("[Set]", row, col); err != nil {
		return err
	}
	s.grid.cells[row][col] = c
	return nil
}

//Get returns the current state of the cell at row, col
func (s *GridState) Get(row int, col int) (Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.grid.At(row, col)
	if err != nil {
		return Dead, errors.Wrap(err, "[Get]")
	}
	return c, nil
}

//Clear kills all cells
func (s *GridState) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return errors.Wrap(ErrRunning, "[Clear]")
	}
	s.grid = createGrid(s.grid.size)
	return nil
}

//Replace swaps the held grid for the copy of g
func (s *GridState) Replace(g Grid) error {
	return s.swap(g.clone())
}

//Snapshot returns the frozen copy of the current generation
func (s *GridState) Snapshot() Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.clone()
}

//LiveCells returns the count of alive cells in the current generation
func (s *GridState) LiveCells() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.LiveCells()
}

//swap takes the ownership of g, the caller must not keep any reference to it
func (s *GridState) swap(g Grid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.size != s.grid.size {
		return errors.Wrapf(ErrDimensionMismatch, "[Replace] got %d, want %d", g.size, s.grid.size)
	}
	s.grid = g
	return nil
}

//setLocked switches the editing guard, used by the Evolver on start and stop
func (s *GridState) setLocked(locked bool) {
	s.mu.Lock()
	s.locked = locked
	s.mu.Unlock()
}

func (s *GridState) editable(op string, row int, col int) error {
	if !s.grid.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "%s (%d, %d) on %dx%d grid", op, row, col, s.grid.size, s.grid.size)
	}
	if s.locked {
		return errors.Wrap(ErrRunning, op)
	}
	return nil
}
