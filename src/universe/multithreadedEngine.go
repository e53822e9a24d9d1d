package universe

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

/*
	Engine with multithreaded computation algorithm
	the grid is split into row bands each of which is computed by an individual goroutine,
	every band reads the frozen current grid and writes its own rows of the next one only
*/

const (
	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

//band describes the rows [from, to) computed by one worker
type band struct {
	from int
	to   int
}

//splitBands splits n rows between at most DefWorkers workers
func splitBands(n int) []band {
	linesPerWorker := n / DefWorkers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*DefWorkers < n {
		linesPerWorker++
	}
	bands := make([]band, 0, DefWorkers)
	for from := 0; from < n; from += linesPerWorker {
		bands = append(bands, band{from: from, to: min(from+linesPerWorker, n)})
	}
	return bands
}

func multithreadedStep(cur Grid) (Grid, error) {
	next := createGrid(cur.size)
	var eg errgroup.Group
	for _, b := range splitBands(cur.size) {
		b := b
		eg.Go(func() error {
			return calcBand(cur, next, b)
		})
	}
	if err := eg.Wait(); err != nil {
		return Grid{}, errors.Wrap(err, "[multithreadedStep]")
	}
	return next, nil
}

//calcBand calculates the next states of the band rows
func calcBand(cur Grid, next Grid, b band) error {
	if b.from < 0 || b.to > cur.size || b.from > b.to || next.size != cur.size {
		return errors.Wrapf(ErrOutOfBounds, "[calcBand] rows [%d, %d) of %dx%d grid", b.from, b.to, cur.size, cur.size)
	}
	for r := b.from; r < b.to; r++ {
		for c := range cur.cells[r] {
			next.cells[r][c] = NextState(cur.cells[r][c], cur.LiveNeighbours(r, c))
		}
	}
	return nil
}
