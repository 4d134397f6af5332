package game

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// ErrQuit is returned from Update when the player asks to leave.
var ErrQuit = errors.New("quit requested")

// TickMillis is the fixed update step, assuming 60 updates per second.
const TickMillis = 1000.0 / 60.0

const messageDuration = 2000.0

// Game holds all game state and logic.
type Game struct {
	Config    *config.Config
	GameMap   *maploader.Map
	Obstacles []geom.Obstacle
	Player    Player
	Caster    *raycast.Caster
	Renderer  render.Renderer
	InputMgr  render.InputManager

	input       inputTracker
	lastFrame   *raycast.Frame
	showMinimap bool
	Messages    []Message
}

// New creates a game on the given map. The obstacle list is owned by the
// game and handed to the caster on every frame.
func New(cfg *config.Config, gameMap *maploader.Map, renderer render.Renderer, inputMgr render.InputManager) (*Game, error) {
	caster, err := raycast.New(cfg.CasterConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create ray caster: %w", err)
	}

	pos, heading := gameMap.Spawn()
	log.Printf("Map %q: %d obstacles, %d rays per frame", gameMap.Data.Name, len(gameMap.Obstacles), caster.RayCount())

	return &Game{
		Config:      cfg,
		GameMap:     gameMap,
		Obstacles:   gameMap.Obstacles,
		Player:      Player{Pos: pos, Heading: heading},
		Caster:      caster,
		Renderer:    renderer,
		InputMgr:    inputMgr,
		showMinimap: cfg.Minimap.Enabled,
	}, nil
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.updateMessages(TickMillis)

	in := g.input.Snapshot(g.InputMgr)
	if in.JustPressed[render.KeyEscape] {
		return ErrQuit
	}
	if in.JustPressed[render.KeyF] {
		g.ToggleFisheye()
	}
	if in.JustPressed[render.KeyM] {
		g.showMinimap = !g.showMinimap
	}

	g.Player.Move(in, g.Config.Player, TickMillis)
	return nil
}

// ToggleFisheye switches the caster between radial and perpendicular depth.
func (g *Game) ToggleFisheye() {
	enabled := !g.Caster.Config().FisheyeCorrection
	g.Caster.SetFisheyeCorrection(enabled)
	state := "off"
	if enabled {
		state = "on"
	}
	g.addMessage("Fisheye correction " + state)
}

// Layout returns the configured logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Config.Window.Width, g.Config.Window.Height
}

// LastFrame returns the frame produced by the most recent Draw.
func (g *Game) LastFrame() *raycast.Frame {
	return g.lastFrame
}

func (g *Game) addMessage(text string) {
	log.Println(text)
	g.Messages = append(g.Messages, Message{Text: text, TimeLeft: messageDuration})
}

func (g *Game) updateMessages(dt float64) {
	kept := g.Messages[:0]
	for _, m := range g.Messages {
		m.TimeLeft -= dt
		if m.TimeLeft > 0 {
			kept = append(kept, m)
		}
	}
	g.Messages = kept
}
