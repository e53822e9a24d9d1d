package universe

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestSettleTemplate(t *testing.T) {
	gs := newState(t, 6)
	tmpl, err := LookupTemplate("glider")
	if err != nil {
		t.Fatalf("LookupTemplate: %v", err)
	}
	if err := Settle(gs, tmpl, 1, 2); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	expectAlive(t, gs.Snapshot(), [2]int{1, 3}, [2]int{2, 4}, [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4})
}

func TestSettleSkipsOutside(t *testing.T) {
	gs := newState(t, 3)
	tmpl, _ := LookupTemplate("blinker")
	if err := Settle(gs, tmpl, 1, 1); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	expectAlive(t, gs.Snapshot(), [2]int{2, 1}, [2]int{2, 2})
}

func TestSettleTestSample(t *testing.T) {
	gs := newState(t, 8)
	tmpl, _ := LookupTemplate("testSample")
	if err := Settle(gs, tmpl, 0, 0); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if live := gs.LiveCells(); live != len(tmpl.Coordinates) {
		t.Fatalf("%d live cells, expected %d", live, len(tmpl.Coordinates))
	}
}

func TestLookupTemplateUnknown(t *testing.T) {
	if _, err := LookupTemplate("gosper"); !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("err %v, expected ErrUnknownTemplate", err)
	}
}

func TestSettleRandom(t *testing.T) {
	gs := newState(t, 10)
	if err := SettleRandom(gs, rand.New(rand.NewSource(1)), 1); err != nil {
		t.Fatalf("SettleRandom: %v", err)
	}
	if live := gs.LiveCells(); live != 100 {
		t.Fatalf("density 1 gave %d live cells", live)
	}
	if err := SettleRandom(gs, rand.New(rand.NewSource(1)), 0); err != nil {
		t.Fatalf("SettleRandom: %v", err)
	}
	if live := gs.LiveCells(); live != 0 {
		t.Fatalf("density 0 gave %d live cells", live)
	}
}
