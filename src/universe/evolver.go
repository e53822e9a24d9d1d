package universe

import (
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

//The evolver running status at the concrete moment
type RunningState int

const (
	RunningStateStopped RunningState = iota
	RunningStateRunning
)

func (s RunningState) String() string {
	if s == RunningStateRunning {
		return "running"
	}
	return "stopped"
}

//Status represents the status of the Evolver at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	Err           error //the error that halted the last run, nil otherwise
}

//clock is the simulation clock owned by one Evolver
type clock struct {
	running  bool
	interval time.Duration
}

/*
	Evolver computes the generations and drives the timed stepping loop.

	Every iteration runs on a timer goroutine while holding the evolver lock:
	it computes the next generation from the snapshot of the current one, swaps it into
	the GridState, calls the notification callback and schedules itself after the interval.
	Stop takes the same lock, so once it returns no further generation is computed.

	While the callback runs the lock is still held. The methods called meanwhile
	(from the callback itself or from another goroutine) do not wait for it:
	Stop records the request and the iteration halts the run as soon as the callback returns,
	Start is a no-op, StepOnce and Clear fail with ErrRunning.
*/
type Evolver struct {
	options Options
	engine  Engine

	mu       sync.Mutex
	logger   *log.Logger
	clock    clock
	timer    *time.Timer
	epoch    uint64 //bumped on every start and stop, stale timers compare against it
	runSteps int
	gs       *GridState
	notify   func()
	done     chan struct{}

	notifying     atomic.Bool //the iteration holds e.mu and runs the callback
	stopRequested atomic.Bool //Stop was called while the callback ran

	state struct {
		Status
		sync.Mutex
	}
}

//NewEvolver creates the Evolver instance, nil options mean DefaultOptions
func NewEvolver(o *Options) (*Evolver, error) {
	opts := DefaultOptions
	if o != nil {
		opts = *o
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "[NewEvolver]")
	}
	engine, err := LookupEngine(opts.Engine)
	if err != nil {
		return nil, errors.Wrap(err, "[NewEvolver]")
	}
	done := make(chan struct{})
	close(done)
	return &Evolver{
		options: opts,
		engine:  engine,
		logger:  log.New(io.Discard, "", 0),
		clock:   clock{interval: opts.Interval},
		done:    done,
	}, nil
}

//SetLogger sets the logger for the loop halting events
func (e *Evolver) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	e.mu.Lock()
	e.logger = l
	e.mu.Unlock()
}

//Options returns the evolver configuration
func (e *Evolver) Options() Options {
	return e.options
}

//Status returns current evolver status, safe to call from the notification callback
func (e *Evolver) Status() Status {
	e.state.Lock()
	defer e.state.Unlock()
	return e.state.Status
}

//Running reports whether the stepping loop is active
func (e *Evolver) Running() bool {
	return e.Status().RunningMode == RunningStateRunning
}

//Done returns the channel closed when the current run stops
//while stopped it returns the already closed channel
func (e *Evolver) Done() <-chan struct{} {
	if !e.lock() {
		return e.done
	}
	defer e.mu.Unlock()
	return e.done
}

//Step computes the next generation of g with the configured engine
func (e *Evolver) Step(g Grid) (Grid, error) {
	return e.engine(g)
}

//Start starts the simulation of gs, returns immediately
//the first generation is computed right away, the following ones after every interval
//calling Start on the running evolver is a no-op
func (e *Evolver) Start(gs *GridState, onEachGeneration func()) error {
	if !e.lock() {
		if e.Running() {
			return nil
		}
		return errors.Wrap(ErrRunning, "[Start] the last generation is being delivered")
	}
	defer e.mu.Unlock()
	e.applyStopRequest()
	if e.clock.running {
		return nil
	}
	if err := e.checkGrid("[Start]", gs); err != nil {
		return err
	}
	if onEachGeneration == nil {
		onEachGeneration = func() {}
	}

	gs.setLocked(true)
	e.gs = gs
	e.notify = onEachGeneration
	e.clock.running = true
	e.epoch++
	e.runSteps = 0
	e.done = make(chan struct{})
	e.setStatus(func(st *Status) {
		st.RunningMode = RunningStateRunning
		st.Err = nil
	})

	epoch := e.epoch
	e.timer = time.AfterFunc(0, func() { e.tick(epoch) })
	return nil
}

//Stop stops the simulation, cancels the pending iteration
//calling Stop on the stopped evolver is a no-op
func (e *Evolver) Stop() {
	if !e.lock() {
		e.stopRequested.Store(true)
		e.setStatus(func(st *Status) {
			st.RunningMode = RunningStateStopped
		})
		return
	}
	defer e.mu.Unlock()
	e.stopRequested.Store(false)
	if !e.clock.running {
		return
	}
	e.halt(nil)
	close(e.done)
}

//StepOnce does one generation of gs while the evolver is stopped
func (e *Evolver) StepOnce(gs *GridState) error {
	if !e.lock() {
		return errors.Wrap(ErrRunning, "[StepOnce]")
	}
	defer e.mu.Unlock()
	e.applyStopRequest()
	if e.clock.running {
		return errors.Wrap(ErrRunning, "[StepOnce]")
	}
	if err := e.checkGrid("[StepOnce]", gs); err != nil {
		return err
	}
	_, _, err := e.advance(gs)
	return err
}

//Clear kills all cells of gs and resets the counters
func (e *Evolver) Clear(gs *GridState) error {
	if !e.lock() {
		return errors.Wrap(ErrRunning, "[Clear]")
	}
	defer e.mu.Unlock()
	e.applyStopRequest()
	if e.clock.running {
		return errors.Wrap(ErrRunning, "[Clear]")
	}
	if err := e.checkGrid("[Clear]", gs); err != nil {
		return err
	}
	if err := gs.Clear(); err != nil {
		return err
	}
	e.setStatus(func(st *Status) {
		*st = Status{}
	})
	return nil
}

//lock takes e.mu, it returns false without waiting when the lock is held by the
//iteration running the callback
func (e *Evolver) lock() bool {
	if e.mu.TryLock() {
		return true
	}
	if e.notifying.Load() {
		return false
	}
	e.mu.Lock()
	return true
}

//applyStopRequest halts the run stopped during the callback, the caller holds e.mu
func (e *Evolver) applyStopRequest() {
	if e.stopRequested.Swap(false) && e.clock.running {
		e.halt(nil)
		close(e.done)
	}
}

//tick is the one iteration of the stepping loop
func (e *Evolver) tick(epoch uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.applyStopRequest()
	//the run was stopped (and maybe started again) after this tick was scheduled
	if !e.clock.running || epoch != e.epoch {
		return
	}

	changed, live, err := e.advance(e.gs)
	if err != nil {
		e.halt(err)
		close(e.done)
		return
	}
	e.runSteps++

	if reason := e.finished(changed, live); reason != "" {
		e.logger.Printf("[Evolver] run finished after %d generations: %s", e.runSteps, reason)
		e.halt(nil)
		e.notifyViewer()
		close(e.done)
		return
	}
	e.notifyViewer()
	if e.stopRequested.Swap(false) {
		e.halt(nil)
		close(e.done)
		return
	}
	e.timer = time.AfterFunc(e.clock.interval, func() { e.tick(epoch) })
}

func (e *Evolver) notifyViewer() {
	e.notifying.Store(true)
	defer e.notifying.Store(false)
	e.notify()
}

//advance computes the next generation of gs and swaps it in
func (e *Evolver) advance(gs *GridState) (changed bool, live int, err error) {
	start := time.Now()
	cur := gs.Snapshot()
	next, err := e.engine(cur)
	if err != nil {
		return false, 0, errors.Wrap(err, "[advance]")
	}
	changed = !next.Equal(cur)
	live = next.LiveCells()
	if err = gs.swap(next); err != nil {
		return false, 0, errors.Wrap(err, "[advance]")
	}
	e.setStatus(func(st *Status) {
		st.Generation++
		st.LiveCells = live
		st.IterationTime = time.Since(start)
	})
	return changed, live, nil
}

//finished returns the reason to end the run, empty while it goes on
func (e *Evolver) finished(changed bool, live int) string {
	if e.options.MaxSteps > 0 && e.runSteps >= e.options.MaxSteps {
		return "max steps reached"
	}
	if e.options.StopWhenSettled {
		if live == 0 {
			return "no live cells"
		}
		if !changed {
			return "grid settled"
		}
	}
	return ""
}

//halt switches the evolver to the stopped state, the caller holds e.mu and closes e.done
func (e *Evolver) halt(err error) {
	e.clock.running = false
	e.epoch++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gs.setLocked(false)
	e.setStatus(func(st *Status) {
		st.RunningMode = RunningStateStopped
		st.Err = err
	})
	if err != nil {
		e.logger.Printf("[Evolver] simulation halted: %v", err)
	}
}

func (e *Evolver) checkGrid(op string, gs *GridState) error {
	if gs == nil {
		return errors.Errorf("%s grid state is nil", op)
	}
	if n := gs.Size(); n != e.options.Dimension {
		return errors.Wrapf(ErrDimensionMismatch, "%s grid %d, evolver %d", op, n, e.options.Dimension)
	}
	return nil
}

func (e *Evolver) setStatus(update func(st *Status)) {
	e.state.Lock()
	update(&e.state.Status)
	e.state.Unlock()
}
