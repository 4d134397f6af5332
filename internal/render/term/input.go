package term

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// DefaultHoldTime is how long a key counts as held after its last event.
// Terminals report key repeats, never key releases.
const DefaultHoldTime = 150 * time.Millisecond

// TermInputManager implements the InputManager interface from tcell events.
// Events arrive on the engine's event goroutine; queries come from the game
// loop.
type TermInputManager struct {
	mu       sync.Mutex
	holdTime time.Duration
	now      func() time.Time

	lastPress map[render.Key]time.Time
	fresh     map[render.Key]bool // Pressed since the previous frame
	justNow   map[render.Key]bool // Fresh presses visible to this frame

	cursorX, cursorY int
	buttons          tcell.ButtonMask

	// Maps cells back to logical coordinates
	scaleX, scaleY float64
}

// NewInputManager creates a terminal input manager.
func NewInputManager() *TermInputManager {
	return &TermInputManager{
		holdTime:  DefaultHoldTime,
		now:       time.Now,
		lastPress: make(map[render.Key]time.Time),
		fresh:     make(map[render.Key]bool),
		justNow:   make(map[render.Key]bool),
		scaleX:    1,
		scaleY:    1,
	}
}

// HandleEvent records a tcell event. It reports whether the event was an
// input event.
func (m *TermInputManager) HandleEvent(ev tcell.Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch e := ev.(type) {
	case *tcell.EventKey:
		key, ok := eventToKey(e)
		if !ok {
			return false
		}
		m.lastPress[key] = m.now()
		m.fresh[key] = true
		return true
	case *tcell.EventMouse:
		m.cursorX, m.cursorY = e.Position()
		m.buttons = e.Buttons()
		return true
	}
	return false
}

// BeginFrame publishes presses received since the previous frame to
// IsKeyJustPressed.
func (m *TermInputManager) BeginFrame(scaleX, scaleY float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.justNow, m.fresh = m.fresh, m.justNow
	clear(m.fresh)
	m.scaleX, m.scaleY = scaleX, scaleY
}

// IsKeyPressed returns whether the key had an event within the hold time.
func (m *TermInputManager) IsKeyPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	at, ok := m.lastPress[key]
	return ok && m.now().Sub(at) < m.holdTime
}

// IsKeyJustPressed returns whether the key was pressed since the previous frame.
func (m *TermInputManager) IsKeyJustPressed(key render.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.justNow[key]
}

// GetCursorPosition returns the cursor position in logical coordinates.
func (m *TermInputManager) GetCursorPosition() (x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int(float64(m.cursorX) * m.scaleX), int(float64(m.cursorY) * m.scaleY)
}

// IsMouseButtonPressed returns whether the button is held.
func (m *TermInputManager) IsMouseButtonPressed(button render.MouseButton) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch button {
	case render.MouseButtonLeft:
		return m.buttons&tcell.Button1 != 0
	case render.MouseButtonRight:
		return m.buttons&tcell.Button2 != 0
	case render.MouseButtonMiddle:
		return m.buttons&tcell.Button3 != 0
	}
	return false
}

// eventToKey converts a tcell key event to a render.Key.
func eventToKey(e *tcell.EventKey) (render.Key, bool) {
	switch e.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch e.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'f', 'F':
			return render.KeyF, true
		case 'm', 'M':
			return render.KeyM, true
		case 'q', 'Q':
			return render.KeyEscape, true
		}
	}
	return 0, false
}
