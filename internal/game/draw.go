package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	colors := g.Config.Colors
	w, h := screen.Size()

	// Step 1: Backdrop, sky above the horizon and ground below
	screen.Fill(colors.Sky.RGBA())
	g.Renderer.FillRect(screen, 0, float32(h)/2, float32(w), float32(h)/2, colors.Ground.RGBA())

	// Step 2: Cast the fan and draw one strip per hit
	g.lastFrame = g.Caster.Cast(g.Player.Pose(), g.Obstacles)
	for _, s := range g.lastFrame.Strips {
		g.Renderer.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), s.Color)
	}

	// Step 3: Top-down overlay
	if g.showMinimap {
		g.drawMinimap(screen)
	}

	// Step 4: UI
	g.drawUI(screen)
}

func (g *Game) drawMinimap(screen render.Image) {
	scale := g.Config.Minimap.Scale
	colors := g.Config.Colors
	outline := color.RGBA{R: 40, G: 40, B: 40, A: 255}

	for _, o := range g.Obstacles {
		for _, edge := range o.Edges() {
			g.Renderer.StrokeLine(screen,
				float32(edge.A.X*scale), float32(edge.A.Y*scale),
				float32(edge.B.X*scale), float32(edge.B.Y*scale),
				1, outline)
		}
	}

	pos := g.Player.Pos
	if g.Config.Minimap.ShowRays && g.lastFrame != nil {
		for _, s := range g.lastFrame.Samples {
			g.Renderer.StrokeLine(screen,
				float32(pos.X*scale), float32(pos.Y*scale),
				float32(s.Point.X*scale), float32(s.Point.Y*scale),
				1, colors.Rays.RGBA())
		}
	}

	g.Renderer.FillCircle(screen, float32(pos.X*scale), float32(pos.Y*scale),
		float32(g.Config.Player.Radius*scale), colors.Player.RGBA())
}

func (g *Game) drawUI(screen render.Image) {
	_, h := screen.Size()
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	hits := 0
	if g.lastFrame != nil {
		hits = len(g.lastFrame.Strips)
	}
	status := fmt.Sprintf("x=%.0f y=%.0f heading=%.1f  rays=%d hits=%d  fisheye=%v",
		g.Player.Pos.X, g.Player.Pos.Y, g.Player.Heading,
		g.Caster.RayCount(), hits, g.Caster.Config().FisheyeCorrection)
	g.Renderer.DrawText(screen, status, 10, h-20, white)

	for i, m := range g.Messages {
		g.Renderer.DrawText(screen, m.Text, 10, h-40-i*16, white)
	}
}
