package universe

import (
	"testing"

	"github.com/pkg/errors"
)

//eachEngine runs f for every engine, the step passed to f fails the test on the engine error
func eachEngine(t *testing.T, f func(t *testing.T, step func(Grid) Grid)) {
	for _, name := range EngineNames() {
		engine, err := LookupEngine(name)
		if err != nil {
			t.Fatalf("LookupEngine(%q): %v", name, err)
		}
		t.Run(name, func(t *testing.T) {
			f(t, func(g Grid) Grid {
				t.Helper()
				next, err := engine(g)
				if err != nil {
					t.Fatalf("engine %s: %v", name, err)
				}
				return next
			})
		})
	}
}

func TestStepBlinker(t *testing.T) {
	eachEngine(t, func(t *testing.T, step func(Grid) Grid) {
		g := gridOf(t, 5, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

		g = step(g)
		expectAlive(t, g, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})

		g = step(g)
		expectAlive(t, g, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
	})
}

func TestStepBlock(t *testing.T) {
	eachEngine(t, func(t *testing.T, step func(Grid) Grid) {
		block := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
		g := gridOf(t, 6, block...)

		//corner adjacent dead cells see 1 alive neighbour, edge adjacent ones see 2
		if n := g.LiveNeighbours(1, 1); n != 1 {
			t.Fatalf("corner adjacent cell has %d neighbours", n)
		}
		if n := g.LiveNeighbours(1, 2); n != 2 {
			t.Fatalf("edge adjacent cell has %d neighbours", n)
		}

		expectAlive(t, step(g), block...)
	})
}

func TestStepEmpty(t *testing.T) {
	eachEngine(t, func(t *testing.T, step func(Grid) Grid) {
		for _, n := range []int{1, 2, 7, 30} {
			next := step(gridOf(t, n))
			if next.Size() != n {
				t.Fatalf("size %d, expected %d", next.Size(), n)
			}
			if live := next.LiveCells(); live != 0 {
				t.Fatalf("empty %dx%d grid produced %d live cells", n, n, live)
			}
		}
	})
}

func TestStepCorner(t *testing.T) {
	eachEngine(t, func(t *testing.T, step func(Grid) Grid) {
		//the L shape in the corner becomes the block, nothing appears on the opposite edges
		g := gridOf(t, 5, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})
		expectAlive(t, step(g), [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1})
	})
}

func TestStepNoZeroNeighbourBirth(t *testing.T) {
	eachEngine(t, func(t *testing.T, step func(Grid) Grid) {
		g := gridOf(t, 5, [2]int{0, 0})
		expectAlive(t, step(g))
	})
}

func TestStepDeterministicAndPure(t *testing.T) {
	eachEngine(t, func(t *testing.T, step func(Grid) Grid) {
		for _, n := range []int{1, 2, 3, 9, 31} {
			g := randomGrid(t, n, int64(n))
			before := g.clone()

			first := step(g)
			second := step(g)
			if !first.Equal(second) {
				t.Fatalf("%dx%d: repeated steps differ", n, n)
			}
			if first.Size() != n {
				t.Fatalf("%dx%d: next size %d", n, n, first.Size())
			}
			if !g.Equal(before) {
				t.Fatalf("%dx%d: step changed its input", n, n)
			}
		}
	})
}

func TestEnginesAgree(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 10, 29, 30, 64} {
		g := randomGrid(t, n, int64(n)*7)
		want := simpleStep(g)
		for _, name := range EngineNames() {
			step, _ := LookupEngine(name)
			got, err := step(g)
			if err != nil {
				t.Fatalf("engine %s: %v", name, err)
			}
			if !got.Equal(want) {
				t.Fatalf("engine %s differs from simple on %dx%d grid", name, n, n)
			}
		}
	}
}

func TestLookupEngineUnknown(t *testing.T) {
	if _, err := LookupEngine("gpu"); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("err %v, expected ErrUnknownEngine", err)
	}
}

func TestSplitBands(t *testing.T) {
	for _, n := range []int{1, 3, 10, 30, 31, 100, 101} {
		bands := splitBands(n)
		if len(bands) > DefWorkers {
			t.Fatalf("%d rows: %d bands", n, len(bands))
		}
		next := 0
		for _, b := range bands {
			if b.from != next || b.to <= b.from {
				t.Fatalf("%d rows: bad band %+v after row %d", n, b, next)
			}
			next = b.to
		}
		if next != n {
			t.Fatalf("%d rows: bands cover %d rows", n, next)
		}
	}
}

func TestCalcBandRejectsForeignRows(t *testing.T) {
	cur := gridOf(t, 4, [2]int{1, 1})
	next := createGrid(4)
	for _, b := range []band{{from: 2, to: 5}, {from: -1, to: 2}, {from: 3, to: 2}} {
		if err := calcBand(cur, next, b); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("band %+v err %v, expected ErrOutOfBounds", b, err)
		}
	}
	if err := calcBand(cur, createGrid(5), band{from: 0, to: 4}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("mismatched next grid err %v, expected ErrOutOfBounds", err)
	}
	if err := calcBand(cur, next, band{from: 0, to: 4}); err != nil {
		t.Fatalf("calcBand: %v", err)
	}
	if live := next.LiveCells(); live != 0 {
		t.Fatalf("single cell produced %d live cells", live)
	}
}
