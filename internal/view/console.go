// Package view renders the simulation in a terminal using gocui.
package view

import (
	"bytes"
	"fmt"
	"log"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifelab/internal/control"
	"lifelab/pkg/core"
	"lifelab/pkg/life"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is an interactive terminal front end over a control.Runner.
type ConsoleUI struct {
	r *control.Runner
	g *gocui.Gui
	k []keyBinding

	patterns   []string
	patternIdx int

	liveFiller string
	deadFiller string
}

// NewConsoleUI builds the terminal UI and wires its keybindings.
func NewConsoleUI(r *control.Runner) *ConsoleUI {
	t := &ConsoleUI{
		r:          r,
		patterns:   life.PatternNames(),
		patternIdx: -1,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Quit", t.cmdQuit, ""},
		{'n', "N", "Next generation", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Random fill", t.cmdRandomize, ""},
		{'p', "P", "Next pattern", t.cmdNextPattern, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseClick, "grid"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()

	r.Subscribe(func(life.Status) { t.refresh() })
	return t
}

// Start blocks inside the gocui main loop until the user quits.
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) refresh() {
	t.renderField()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("grid")
		if err != nil {
			return err
		}
		v.Clear()

		eng := t.r.Engine()
		size := eng.Size()
		// The runner's tick loop keeps stepping on its own goroutine, so
		// render from a copy rather than the live read buffer.
		cells := eng.Snapshot()
		maxW, maxH := v.Size()

		var b bytes.Buffer
		for y := 0; y < size.H && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			if y == maxH-1 && size.H > maxH {
				b.WriteString(aurora.Red("The grid is larger than the viewing area").String())
				break
			}
			for x := 0; x < size.W && x < maxW; x++ {
				if core.IsAlive(cells[y*size.W+x]) {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	st := t.r.Engine().Query()
	running := t.r.Running()
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return err
		}
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", st.Generation))
		_, _ = fmt.Fprintln(v, t.renderProp("Alive cells", "%v", st.AliveCount))
		mode := aurora.Blue("waiting").String()
		if running {
			mode = aurora.Cyan("running").String()
		}
		if st.HasEnded {
			mode = aurora.Red("ended").String()
		}
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		if st.HasEnded {
			_, _ = fmt.Fprintln(v, " "+aurora.Red(st.EndReason).String())
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 26

	if v, err := g.SetView("header", 0, 0, maxX-1, 2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = true
		_, _ = fmt.Fprint(v, " Conway's Game of Life — toroidal grid")
	}

	if v, err := g.SetView("status", 0, 3, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("grid", leftColumnWidth+1, 3, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Grid"
		v.Frame = true
		t.renderField()
	}

	if v, err := g.SetView("help", 0, maxY-3, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		for i, kb := range t.k {
			if i != 0 {
				b.WriteString("  ")
			}
			b.WriteString(aurora.Yellow(kb.name).String() + " " + kb.descr)
		}
		_, _ = fmt.Fprint(v, " "+b.String())
	}
	return nil
}

func (t *ConsoleUI) cmdQuit(*gocui.View) error {
	t.r.Stop()
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(*gocui.View) error {
	if !t.r.Running() {
		_ = t.r.StepOnce()
	}
	return nil
}

func (t *ConsoleUI) cmdRun(*gocui.View) error {
	t.r.Start()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdStop(*gocui.View) error {
	t.r.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(*gocui.View) error {
	t.r.Stop()
	t.r.Clear()
	return nil
}

func (t *ConsoleUI) cmdRandomize(*gocui.View) error {
	t.r.Stop()
	t.r.Randomize(life.DefaultFillProbability)
	return nil
}

func (t *ConsoleUI) cmdNextPattern(*gocui.View) error {
	if len(t.patterns) == 0 {
		return nil
	}
	t.r.Stop()
	t.patternIdx = (t.patternIdx + 1) % len(t.patterns)
	return t.r.LoadPattern(t.patterns[t.patternIdx])
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	if v == nil {
		return nil
	}
	cx, cy := v.Cursor()
	t.r.ToggleCell(cx, cy)
	return nil
}
