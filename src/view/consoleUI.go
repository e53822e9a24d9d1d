package view

import (
	"bytes"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"gridlife/src/universe"
)

//density of the random settling
const randomDensity = 0.3

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	ev  *universe.Evolver
	gs  *universe.GridState
	g   *gocui.Gui
	k   []keyBindings
	rng *rand.Rand

	msgMu   sync.Mutex
	message string

	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateStopped: aurora.Colorize("stopped", aurora.BlueFg).String(),
		universe.RunningStateRunning: aurora.Colorize("running", aurora.CyanFg).String(),
	}
)

func NewConsoleUI(ev *universe.Evolver, gs *universe.GridState) *ConsoleUI {

	var err error
	t := ConsoleUI{
		ev:         ev,
		gs:         gs,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextRound,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Settle with random",
			t.cmdSettleWithRandom,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"field"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

//Start runs the terminal main loop until the user quits
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.ev.Stop()
	t.g.Close()
}

//Refresh redraws the field and the status, called by the Evolver after every generation
func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderStatus()
}

func (t *ConsoleUI) setMessage(format string, args ...interface{}) {
	t.msgMu.Lock()
	t.message = fmt.Sprintf(format, args...)
	t.msgMu.Unlock()
}

func (t *ConsoleUI) getMessage() string {
	t.msgMu.Lock()
	defer t.msgMu.Unlock()
	return t.message
}

//renderField draws the current generation, one char per cell
func (t *ConsoleUI) renderField() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("field")
		if e != nil {
			return e
		}
		//the entire field is redrawing at once
		v.Clear()

		grid := t.gs.Snapshot()
		n := grid.Size()
		maxW, maxH := v.Size()
		crop := n > maxW || n > maxH

		var b bytes.Buffer
		grid.Walk(func(row int, col int, c universe.Cell) {
			//discard the data outside the view area
			if row >= maxH || col >= maxW {
				return
			}
			//line feed char
			if col == 0 && row != 0 {
				b.WriteByte('\n')
			}
			if crop && row == maxH-1 {
				if col == 0 {
					b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
				}
				return
			}
			if c == universe.Alive {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		})
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		s := t.ev.Status()
		if v, e := g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", t.gs.LiveCells()))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
			if s.Err != nil {
				_, _ = fmt.Fprintln(v, " "+aurora.Red(s.Err.Error()).String())
			}
			if m := t.getMessage(); m != "" {
				_, _ = fmt.Fprintln(v, " "+aurora.Yellow(m).String())
			}
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		c := t.ev.Options()
		if v, e := g.View("settings"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Dimension, c.Dimension))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			if c.MaxSteps > 0 {
				_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
			} else {
				_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "unlimited"))
			}
			_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", c.Engine))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	s := arrange(maxX, maxY)

	if s.tooSmall {
		if err := t.titleLayout(g, s.title, "Enlarge the terminal to see the field"); err != nil {
			return err
		}
		for _, name := range []string{"settings", "status", "field", "keys"} {
			_ = g.DeleteView(name)
		}
		return nil
	}
	if err := t.titleLayout(g, s.title, titleText); err != nil {
		return err
	}

	created, err := t.setView(g, "settings", s.settings, "Settings")
	if err != nil {
		return err
	}
	if created {
		t.renderConfiguration()
	}
	if created, err = t.setView(g, "status", s.status, "Status"); err != nil {
		return err
	}
	if created {
		t.renderStatus()
	}
	if _, err = t.setView(g, "field", s.field, "Field"); err != nil {
		return err
	}
	t.renderField()

	v, err := g.SetView("keys", s.keys.x0, s.keys.y0, s.keys.x1, s.keys.y1)
	if err != gocui.ErrUnknownView {
		return err
	}
	v.Frame = false
	var b bytes.Buffer
	for i, k := range t.k {
		if i != 0 {
			b.WriteString("  ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(" ")
		b.WriteString(k.descr)
	}
	_, _ = fmt.Fprintln(v, b.String())
	return nil
}

//setView places the framed view, created reports the view did not exist before
func (t *ConsoleUI) setView(g *gocui.Gui, name string, r rect, title string) (created bool, err error) {
	v, err := g.SetView(name, r.x0, r.y0, r.x1, r.y1)
	if err == nil {
		return false, nil
	}
	if err != gocui.ErrUnknownView || v == nil {
		return false, err
	}
	v.Title = title
	v.Frame = true
	return true, nil
}

//titleLayout draws the text in the middle of the title area, cut to the terminal width
func (t *ConsoleUI) titleLayout(g *gocui.Gui, r rect, text string) error {
	v, err := g.SetView("title", r.x0, r.y0, r.x1, r.y1)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	width := r.x1 - r.x0 - 1
	_, _ = fmt.Fprint(v, strings.Repeat("\n", (r.y1-r.y0)/2)+centered(text, width))
	return nil
}

//report shows the command failure in the status view
func (t *ConsoleUI) report(err error) {
	switch {
	case err == nil:
		t.setMessage("")
	case errors.Is(err, universe.ErrRunning):
		t.setMessage("stop the simulation first")
	default:
		t.setMessage("%v", err)
	}
	t.Refresh()
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.report(t.ev.StepOnce(t.gs))
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.report(t.ev.Start(t.gs, t.Refresh))
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.ev.Stop()
	t.report(nil)
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.report(t.ev.Clear(t.gs))
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	err := t.ev.Clear(t.gs)
	if err == nil {
		err = universe.SettleRandom(t.gs, t.rng, randomDensity)
	}
	t.report(err)
	return nil
}

//cmdMouseClick toggles the cell under the cursor, the view draws one char per cell
func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	err := t.gs.Toggle(cy, cx)
	if errors.Is(err, universe.ErrOutOfBounds) {
		err = nil
	}
	t.report(err)
	return nil
}
