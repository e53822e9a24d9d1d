package universe

import (
	"math/rand"
	"testing"
)

//gridOf builds the n x n grid with the given [row, col] cells alive
func gridOf(t testing.TB, n int, alive ...[2]int) Grid {
	t.Helper()
	gs, err := NewGridState(n)
	if err != nil {
		t.Fatalf("NewGridState(%d): %v", n, err)
	}
	for _, v := range alive {
		if err := gs.Set(v[0], v[1], Alive); err != nil {
			t.Fatalf("Set(%d, %d): %v", v[0], v[1], err)
		}
	}
	return gs.Snapshot()
}

//randomGrid builds the n x n grid with about half of the cells alive
func randomGrid(t testing.TB, n int, seed int64) Grid {
	t.Helper()
	gs, err := NewGridState(n)
	if err != nil {
		t.Fatalf("NewGridState(%d): %v", n, err)
	}
	if err := SettleRandom(gs, rand.New(rand.NewSource(seed)), 0.5); err != nil {
		t.Fatalf("SettleRandom: %v", err)
	}
	return gs.Snapshot()
}

func aliveSet(g Grid) map[[2]int]bool {
	set := map[[2]int]bool{}
	g.Walk(func(r int, c int, cell Cell) {
		if cell {
			set[[2]int{r, c}] = true
		}
	})
	return set
}

func expectAlive(t *testing.T, g Grid, expects ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, v := range expects {
		want[v] = true
	}
	got := aliveSet(g)
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			p := [2]int{r, c}
			if got[p] != want[p] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", r, c, got[p], want[p])
			}
		}
	}
}
