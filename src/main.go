package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"gridlife/src/universe"
	"gridlife/src/view"
)

const randomDensity = 0.3

type EnvOptions struct {
	interactive bool
	randomData  bool
	configFile  string
	template    string
}

//flagOptions holds the simulation flags, the zero values (-1 for maxSteps) mean the flag was not given
type flagOptions struct {
	dimension int
	interval  time.Duration
	maxSteps  int
	settled   bool
	engine    string
}

func main() {
	eo, uo := initOptions()

	logger := log.New(os.Stderr, "gridlife: ", log.LstdFlags)

	ev, err := universe.NewEvolver(uo)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	ev.SetLogger(logger)

	gs, err := universe.NewGridState(uo.Dimension)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	if err = settle(gs, eo); err != nil {
		logger.Fatalf("%v", err)
	}

	if eo.interactive {
		var v view.Viewer = view.NewConsoleUI(ev, gs)
		v.Start()
		return
	}

	fmt.Printf("\"The Life\" game simulation started...\n")
	out := view.NewConsoleOut(os.Stdout, ev, gs)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	err = runHeadless(ev, gs, out, sigCh)
	out.Finish()
	if err != nil {
		logger.Fatalf("%v", err)
	}
}

//runHeadless runs the simulation with v refreshed on every generation
//until the run finishes or the signal arrives, the error is the one that halted the run
func runHeadless(ev *universe.Evolver, gs *universe.GridState, v view.Viewer, sigCh <-chan os.Signal) error {
	v.Start()
	if err := ev.Start(gs, v.Refresh); err != nil {
		return errors.Wrap(err, "[runHeadless]")
	}
	select {
	case <-ev.Done():
	case <-sigCh:
		ev.Stop()
	}
	return ev.Status().Err
}

//settle populates the grid with the random data or the named template in the middle of the grid
func settle(gs *universe.GridState, eo *EnvOptions) error {
	if eo.randomData {
		return universe.SettleRandom(gs, rand.New(rand.NewSource(time.Now().UnixNano())), randomDensity)
	}
	if eo.template == "" {
		return nil
	}
	tmpl, err := universe.LookupTemplate(eo.template)
	if err != nil {
		return err
	}
	mid := gs.Size() / 2
	return universe.Settle(gs, tmpl, mid-1, mid-1)
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	eo = &EnvOptions{template: "testSample"}
	fl := flagOptions{maxSteps: -1}
	def := universe.DefaultOptions

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&eo.configFile, "c", "config", "JSON configuration file, the flags given explicitly override it")
	flaggy.Int(&fl.dimension, "d", "dimension", fmt.Sprintf("Dimension N of the N x N simulation field (default %v)", def.Dimension))
	flaggy.Duration(&fl.interval, "i", "interval", fmt.Sprintf("Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms (default %v)", def.Interval))
	flaggy.Int(&fl.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 is unlimited (default 0)")
	flaggy.Bool(&fl.settled, "", "settled", "Stop when the field dies out or stops changing")
	flaggy.String(&fl.engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"] (default "+def.Engine+")")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.template, "t", "template", "Settle with the template [blinker|block|glider|testSample], empty for the clear field")

	flaggy.Parse()

	uo, err := buildOptions(eo.configFile, fl)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return
}

//buildOptions starts from the defaults or the config file and applies the given flags on top
func buildOptions(configFile string, fl flagOptions) (*universe.Options, error) {
	o := universe.DefaultOptions
	if configFile != "" {
		var err error
		if o, err = universe.LoadOptions(configFile); err != nil {
			return nil, err
		}
	}

	if fl.dimension != 0 {
		o.Dimension = fl.dimension
	}
	if fl.interval != 0 {
		o.Interval = fl.interval
	}
	if fl.maxSteps >= 0 {
		o.MaxSteps = fl.maxSteps
	}
	if fl.settled {
		o.StopWhenSettled = true
	}
	if fl.engine != "" {
		o.Engine = fl.engine
	}

	if err := o.Validate(); err != nil {
		return nil, errors.Wrap(err, "[buildOptions]")
	}
	return &o, nil
}
