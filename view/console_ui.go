package view

import (
	"context"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	boardView  = "board"
	statusView = "status"
	helpView   = "help"

	statusHeight = 2
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// ConsoleUI is the interactive display. Every board access runs inside a gui.Update
// callback so the board is only touched from the gocui main loop goroutine.
type ConsoleUI struct {
	g        *gocui.Gui
	k        []keyBinding
	sim      *simulation
	interval time.Duration
}

// NewConsoleUI takes over the terminal; call Run to start it
func NewConsoleUI(board *model.Board, config utils.Config) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsoleUI] failed to init terminal")
	}

	t := &ConsoleUI{
		g:        g,
		sim:      newSimulation(board, config, time.Now()),
		interval: config.TickInterval(),
	}
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'q', "Q", "Exit", t.cmdQuit},
		{gocui.KeySpace, "SPACE", "Pause/Resume", t.cmdPause},
		{'n', "N", "Next step", t.cmdStep},
	}

	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			g.Close()
			return nil, errors.Wrapf(err, "[NewConsoleUI] failed to bind %s", kb.name)
		}
	}

	return t, nil
}

// Run drives the display until the user quits, ctx is cancelled or the generation limit is hit
func (t *ConsoleUI) Run(ctx context.Context) error {
	defer t.g.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var eg errgroup.Group
	eg.Go(func() error {
		defer cancel()
		if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
			return errors.Wrap(err, "[ConsoleUI.Run] main loop failed")
		}
		return nil
	})
	eg.Go(func() error {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
				return nil
			case <-ticker.C:
				t.g.Update(func(*gocui.Gui) error {
					stepped, done := t.sim.tick(time.Now())
					if done {
						return gocui.ErrQuit
					}
					if !stepped {
						return nil
					}
					return t.redraw()
				})
			}
		}
	})

	return eg.Wait()
}

// redraw refreshes the board and status views after a step
func (t *ConsoleUI) redraw() error {
	if err := t.renderBoard(); err != nil {
		return err
	}
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) renderBoard() error {
	v, err := t.g.View(boardView)
	if err != nil {
		// not laid out yet; layout draws it on creation
		return nil
	}
	v.Clear()
	return errors.Wrap(t.sim.board.Render(v), "[ConsoleUI.renderBoard] failed to render")
}

func (t *ConsoleUI) renderStatus() {
	v, err := t.g.View(statusView)
	if err != nil {
		return
	}
	v.Clear()
	mode := aurora.Colorize("running", aurora.CyanFg)
	if t.sim.paused {
		mode = aurora.Colorize("paused", aurora.BlueFg)
	}
	_, _ = fmt.Fprintf(v, " %s | Mode: %s\n", StatusLine(t.sim.stats), mode)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	boardX := min(maxX-1, t.sim.board.Width()*2+1)
	boardY := min(maxY-statusHeight-4, t.sim.board.Height()+1)
	if boardY < 1 {
		boardY = 1
	}

	if v, err := g.SetView(boardView, 0, 0, boardX, boardY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
		v.Frame = true
		if err := t.renderBoard(); err != nil {
			return err
		}
	}

	if v, err := g.SetView(statusView, 0, boardY+1, maxX-1, boardY+statusHeight+2); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView(helpView, -1, boardY+statusHeight+2, maxX, boardY+statusHeight+4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprint(v, "KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				_, _ = fmt.Fprint(v, ", ")
			}
			_, _ = fmt.Fprintf(v, "%s: %s", aurora.Green(k.name), k.descr)
		}
	}

	return nil
}

func (t *ConsoleUI) cmdQuit() error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdPause() error {
	t.sim.togglePause()
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdStep() error {
	if !t.sim.paused {
		return nil
	}
	if t.sim.step(time.Now()) {
		return gocui.ErrQuit
	}
	return t.redraw()
}
