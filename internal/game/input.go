package game

import "chosenoffset.com/raycaster/internal/render"

// InputState is a snapshot of the input for one tick. Movement code reads
// only this, never the backend.
type InputState struct {
	Pressed     map[render.Key]bool
	JustPressed map[render.Key]bool

	// Horizontal cursor movement since the previous tick while the left
	// button is held
	CursorDX float64
}

// inputTracker builds snapshots and remembers the cursor between ticks.
type inputTracker struct {
	lastX    int
	dragging bool
}

// Snapshot polls mgr for every known key and the cursor.
func (t *inputTracker) Snapshot(mgr render.InputManager) InputState {
	in := InputState{
		Pressed:     make(map[render.Key]bool, len(render.Keys)),
		JustPressed: make(map[render.Key]bool),
	}
	for _, k := range render.Keys {
		if mgr.IsKeyPressed(k) {
			in.Pressed[k] = true
		}
		if mgr.IsKeyJustPressed(k) {
			in.JustPressed[k] = true
		}
	}

	x, _ := mgr.GetCursorPosition()
	if mgr.IsMouseButtonPressed(render.MouseButtonLeft) {
		if t.dragging {
			in.CursorDX = float64(x - t.lastX)
		}
		t.dragging = true
	} else {
		t.dragging = false
	}
	t.lastX = x

	return in
}
