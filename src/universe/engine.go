package universe

import (
	"sort"

	"github.com/pkg/errors"
)

//Engine computes the next generation from the frozen current one
//every engine returns a new Grid of the same dimension and never changes its input
type Engine func(cur Grid) (Grid, error)

//DefEngine is the engine used when the options do not name one
const DefEngine = "simple"

var engines = map[string]Engine{
	"simple":        infallible(simpleStep),
	"smallBuff":     infallible(smallBuffStep),
	"multithreaded": multithreadedStep,
}

func infallible(step func(cur Grid) Grid) Engine {
	return func(cur Grid) (Grid, error) {
		return step(cur), nil
	}
}

//Step computes the next generation of g with the default engine
func Step(g Grid) Grid {
	return simpleStep(g)
}

//LookupEngine returns the engine registered under name
func LookupEngine(name string) (Engine, error) {
	e, ok := engines[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEngine, "[LookupEngine] %q", name)
	}
	return e, nil
}

//EngineNames returns the sorted names of all engines
func EngineNames() (names []string) {
	names = make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}
