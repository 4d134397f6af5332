package game

import (
	"math"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
)

// Player represents the player's physical state in the world.
type Player struct {
	Pos     geom.Point
	Heading float64 // Degrees, 0 looks along +X
}

// Pose returns the camera pose for the player.
func (p Player) Pose() raycast.Pose {
	return raycast.Pose{Position: p.Pos, Heading: p.Heading}
}

// Move applies one tick of input. dt is in milliseconds. Movement is along
// the map axes; Up and Down mirror W and S. Turning uses Left/Right or a
// horizontal cursor drag.
func (p *Player) Move(in InputState, cfg config.PlayerConfig, dt float64) {
	step := cfg.Speed * dt

	if in.Pressed[render.KeyW] || in.Pressed[render.KeyUp] {
		p.Pos.Y -= step
	} else if in.Pressed[render.KeyS] || in.Pressed[render.KeyDown] {
		p.Pos.Y += step
	}

	if in.Pressed[render.KeyA] {
		p.Pos.X -= step
	} else if in.Pressed[render.KeyD] {
		p.Pos.X += step
	}

	turn := cfg.TurnSpeed * dt
	if in.Pressed[render.KeyLeft] {
		p.Heading -= turn
	} else if in.Pressed[render.KeyRight] {
		p.Heading += turn
	}
	p.Heading += in.CursorDX * cfg.MouseSensitivity

	p.Heading = normalizeDegrees(p.Heading)
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Milliseconds remaining
}
