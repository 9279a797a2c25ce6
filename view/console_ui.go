package view

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/game"
	"github.com/sheikhrachel/go-gol/model"
)

const (
	headerView        = "header"
	configurationView = "configuration"
	statusView        = "status"
	fieldView         = "field"
	helpView          = "help"

	headerText      = "The Game of Life"
	leftColumnWidth = 28
	minWindowHeight = 20

	// every cell is drawn two characters wide
	cellWidth = 2
	deadCell  = "░░"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is an interactive terminal front end for a game.Controller
type ConsoleUI struct {
	ctrl *game.Controller
	g    *gocui.Gui
	k    []keyBinding

	liveFiller string
	deadFiller string
}

// NewConsoleUI creates the terminal UI and subscribes it to the controller
func NewConsoleUI(ctrl *game.Controller, renderer *model.TerminalRenderer) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to create gui")
	}
	g.Mouse = true

	t := &ConsoleUI{
		ctrl:       ctrl,
		g:          g,
		liveFiller: renderer.LiveCell(),
		deadFiller: deadCell,
	}
	t.k = []keyBinding{
		{key: gocui.KeyCtrlC, name: "^C", descr: "Exit", handler: t.cmdQuit},
		{key: 'r', name: "R", descr: "Start/Stop", handler: t.cmdToggleRunning},
		{key: 'n', name: "N", descr: "Next step", handler: t.cmdStep},
		{key: 'w', name: "W", descr: "Random", handler: t.cmdRandomize},
		{key: 'c', name: "C", descr: "Clear", handler: t.cmdClear},
		{key: gocui.MouseLeft, name: "MOUSE", descr: "Toggle cell", handler: t.cmdMouseClick, viewName: fieldView},
	}
	g.SetManagerFunc(t.layout)

	if err = t.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}

	ctrl.Subscribe(func(game.State) { t.Refresh() })
	return t, nil
}

func (t *ConsoleUI) initKeyBindings() error {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return errors.Wrapf(err, "[initKeyBindings] failed to bind %s", kb.name)
		}
	}
	return nil
}

// Start runs the UI main loop until the user quits
func (t *ConsoleUI) Start() error {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Start] gui main loop failed")
	}
	return nil
}

// Quit makes a running main loop return
func (t *ConsoleUI) Quit() {
	t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
}

// Close restores the terminal
func (t *ConsoleUI) Close() {
	t.g.Close()
}

// Refresh redraws the field and the status panel.
// gocui.Update queues the redraw on the gui goroutine, so it may be called from any goroutine.
func (t *ConsoleUI) Refresh() {
	t.g.Update(func(g *gocui.Gui) error {
		st := t.ctrl.Snapshot()
		t.renderField(g, st.Grid)
		t.renderStatus(g, st)
		return nil
	})
}

func (t *ConsoleUI) renderField(g *gocui.Gui, grid *model.Grid) {
	v, err := g.View(fieldView)
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, fieldText(grid, maxW, maxH, t.liveFiller, t.deadFiller))
}

// fieldText draws as much of grid as fits in a maxW x maxH character area
func fieldText(grid *model.Grid, maxW, maxH int, live, dead string) string {
	var (
		b    bytes.Buffer
		crop = grid.Cols()*cellWidth > maxW || grid.Rows() > maxH
	)
	for row := range min(grid.Rows(), maxH) {
		if row != 0 {
			b.WriteByte('\n')
		}
		if crop && row == maxH-1 {
			b.WriteString(aurora.Red("The field is larger than the viewing area").String())
			break
		}
		for col := range min(grid.Cols(), maxW/cellWidth) {
			if grid.IsAlive(row, col) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui, st game.State) {
	v, err := g.View(statusView)
	if err != nil {
		return
	}
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", st.Generation))
	_, _ = fmt.Fprintln(v, renderProp("Live cells", "%v", st.LiveCells))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", modeDescr(st)))
	_, _ = fmt.Fprintln(v, renderProp("Stagnant", "%v", st.Stagnant))
	_, _ = fmt.Fprintln(v, renderProp("Speed", "%.1f gen/sec", st.Stats.GenerationsPerSecond))
	_, _ = fmt.Fprintln(v, renderProp("Avg population", "%.1f", st.Stats.AveragePopulation))
}

func (t *ConsoleUI) renderConfiguration(v *gocui.View) {
	c := t.ctrl.Config()
	v.Clear()
	_, _ = fmt.Fprintln(v, renderProp("Dimension", "%v x %v", c.Rows, c.Cols))
	_, _ = fmt.Fprintln(v, renderProp("Interval", "%v", c.Interval))
	_, _ = fmt.Fprintln(v, renderProp("Alive prob.", "%.2f", c.AliveProbability))
	if c.MaxGenerations > 0 {
		_, _ = fmt.Fprintln(v, renderProp("Generations", "%v max", c.MaxGenerations))
	} else {
		_, _ = fmt.Fprintln(v, renderProp("Generations", "unlimited"))
	}
}

func modeDescr(st game.State) string {
	switch {
	case st.Running:
		return aurora.Cyan("running").String()
	case st.StopReason != "":
		return aurora.Red("finished (" + st.StopReason + ")").String()
	default:
		return aurora.Blue("stopped").String()
	}
}

func renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		_ = g.DeleteView(configurationView)
		_ = g.DeleteView(statusView)
		_ = g.DeleteView(fieldView)
		return nil
	}
	if err := t.headerLayout(g, 3, headerText); err != nil {
		return err
	}

	if v, err := g.SetView(configurationView, 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration(v)
	}

	newViews := false
	if v, err := g.SetView(statusView, 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		newViews = true
	}

	if v, err := g.SetView(fieldView, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
		newViews = true
	}
	if newViews {
		t.Refresh()
	}

	if v, err := g.SetView(helpView, -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpText())
	}

	return nil
}

func (t *ConsoleUI) helpText() string {
	b := bytes.Buffer{}
	b.WriteString("KEYBINDINGS: ")
	for i, k := range t.k {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(headerView, -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	if len(text) > maxX {
		text = text[:max(maxX, 0)]
	}
	_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdToggleRunning(_ *gocui.View) error {
	t.ctrl.ToggleRunning()
	return nil
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.ctrl.Step()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.ctrl.Randomize()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.ctrl.Clear()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	row, col, ok := cellAt(v)
	if !ok {
		return nil
	}
	// clicks past the last row or column land outside the grid; nothing to toggle
	if err := t.ctrl.ToggleCell(row, col); err != nil && !errors.Is(err, model.ErrOutOfBounds) {
		return err
	}
	return nil
}

func cellAt(v *gocui.View) (row, col int, ok bool) {
	if v == nil {
		return 0, 0, false
	}
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	return cy + oy, (cx + ox) / cellWidth, true
}
