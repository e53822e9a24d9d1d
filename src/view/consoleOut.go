package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"gridlife/src/universe"
)

//ConsoleOut is the headless viewer printing the progress to w
type ConsoleOut struct {
	ev        *universe.Evolver
	gs        *universe.GridState
	w         io.Writer
	startTime time.Time
	every     int
}

func NewConsoleOut(w io.Writer, ev *universe.Evolver, gs *universe.GridState) *ConsoleOut {
	c := &ConsoleOut{ev: ev, gs: gs, w: w, every: 10}
	o := ev.Options()
	_, _ = fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Dimension, o.Dimension),
		"Interval":       o.Interval,
		"Max iterations": o.MaxSteps,
		"Engine":         o.Engine,
		"Live cells":     gs.LiveCells(),
	})
	return c
}

//Refresh prints the iteration number every 10 generations
func (c *ConsoleOut) Refresh() {
	st := c.ev.Status()
	if st.Generation%c.every == 0 {
		_, _ = fmt.Fprintf(c.w, "  Iterations done: %v, live cells: %v\n", st.Generation, st.LiveCells)
	}
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.w, "\nSimulation started...")
}

//Finish prints the summary of the run
func (c *ConsoleOut) Finish() {
	st := c.ev.Status()
	resultData := map[string]interface{}{
		"Last iteration": st.Generation,
		"Total time":     time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":     c.gs.LiveCells(),
	}
	if st.Err != nil {
		resultData["Error"] = st.Err
	}
	_, _ = fmt.Fprintln(c.w, "\n"+aurora.Red("Finished:").String())
	c.printHashData(resultData)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
