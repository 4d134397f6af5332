package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// DefaultTick keeps the terminal loop near 60 updates per second.
const DefaultTick = 15 * time.Millisecond

// TermEngine implements the Engine interface on a tcell screen.
type TermEngine struct {
	screen tcell.Screen
	input  *TermInputManager
	tick   time.Duration
}

// NewScreen creates the terminal screen the engine draws on.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return screen, nil
}

// NewEngine creates a terminal engine feeding events to input.
func NewEngine(screen tcell.Screen, input *TermInputManager) *TermEngine {
	return &TermEngine{screen: screen, input: input, tick: DefaultTick}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (e *TermEngine) SetWindowSize(width, height int) {}

// SetWindowTitle is a no-op; the terminal owns its title bar.
func (e *TermEngine) SetWindowTitle(title string) {}

// SetWindowResizable is a no-op; terminals are always resizable.
func (e *TermEngine) SetWindowResizable(resizable bool) {}

// RunGame initialises the screen and runs the loop until Update returns an
// error. The screen is restored before returning.
func (e *TermEngine) RunGame(game render.Game) error {
	if err := e.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}
	defer e.screen.Fini()

	e.screen.EnableMouse()
	e.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go e.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				e.screen.Sync()
				continue
			}
			e.input.HandleEvent(ev)
		case <-ticker.C:
			if err := e.Step(game); err != nil {
				return err
			}
		}
	}
}

// Step runs one update and draw against the current screen size.
func (e *TermEngine) Step(game render.Game) error {
	cols, rows := e.screen.Size()
	width, height := game.Layout(cols, rows)
	if cols == 0 || rows == 0 || width <= 0 || height <= 0 {
		return nil
	}

	e.input.BeginFrame(float64(width)/float64(cols), float64(height)/float64(rows))
	if err := game.Update(); err != nil {
		return err
	}

	e.screen.Clear()
	game.Draw(NewImage(e.screen, width, height))
	e.screen.Show()
	return nil
}
