package universe

import (
	"math/rand"

	"github.com/pkg/errors"
)

//Template represent the seeding template which can used to settle the grid with predefined data
type Template struct {
	Name        string   //template name
	Descr       string   //template descr
	Coordinates [][2]int //array of [row, col] coordinates of alive cells
}

var templates = map[string]Template{}

func init() {
	for _, t := range []Template{
		{"blinker", "period 2 oscillator", [][2]int{{1, 0}, {1, 1}, {1, 2}}},
		{"block", "2x2 still life", [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{"glider", "the smallest spaceship", [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
		{"testSample", "the test sample: a block next to a small growing cluster", [][2]int{
			{1, 1}, {2, 1},
			{1, 2}, {2, 2},
			{3, 3},
			{2, 4},
			{3, 4},
			{3, 5},
		}},
	} {
		AddTemplate(t)
	}
}

//AddTemplate adds the seeding template to the registry, replacing the one with the same name
func AddTemplate(t Template) {
	templates[t.Name] = t
}

//LookupTemplate returns the template registered under name
func LookupTemplate(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, errors.Wrapf(ErrUnknownTemplate, "[LookupTemplate] %q", name)
	}
	return t, nil
}

//Settle places the template alive cells shifted by rowOff, colOff
//cells falling outside the grid are skipped
func Settle(gs *GridState, t Template, rowOff int, colOff int) error {
	n := gs.Size()
	for _, v := range t.Coordinates {
		r, c := v[0]+rowOff, v[1]+colOff
		if r < 0 || c < 0 || r >= n || c >= n {
			continue
		}
		if err := gs.Set(r, c, Alive); err != nil {
			return errors.Wrapf(err, "[Settle] template %q", t.Name)
		}
	}
	return nil
}

//SettleRandom populates the grid with random data, every cell becomes alive with the density probability
func SettleRandom(gs *GridState, rng *rand.Rand, density float64) error {
	n := gs.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if err := gs.Set(r, c, Cell(rng.Float64() < density)); err != nil {
				return errors.Wrap(err, "[SettleRandom]")
			}
		}
	}
	return nil
}
