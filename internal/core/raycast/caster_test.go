package raycast

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/core/geom"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.FOV = 60
	cfg.Step = 1
	return cfg
}

func newCaster(t *testing.T, cfg Config) *Caster {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create caster: %v", err)
	}
	return c
}

func TestRayCountIncludesBothEdges(t *testing.T) {
	c := newCaster(t, testConfig())
	if c.RayCount() != 61 {
		t.Fatalf("Expected 61 rays, got %d", c.RayCount())
	}
	if c.Offset(0) != -30 || c.Offset(60) != 30 || c.Offset(30) != 0 {
		t.Errorf("Unexpected offsets: first %v, center %v, last %v", c.Offset(0), c.Offset(30), c.Offset(60))
	}

	def := newCaster(t, DefaultConfig())
	if def.RayCount() != 1201 {
		t.Errorf("Expected 1201 rays for 120/0.1, got %d", def.RayCount())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Step = 0
	if _, err := New(cfg); !errors.Is(err, errInvalidConfig) {
		t.Errorf("Expected invalid config error for zero step, got %v", err)
	}

	cfg = testConfig()
	cfg.Range = -5
	if _, err := New(cfg); err == nil {
		t.Errorf("Expected error for negative range")
	}
}

func TestCastWithoutObstacles(t *testing.T) {
	cfg := testConfig()
	c := newCaster(t, cfg)
	pose := Pose{Position: geom.Point{X: 50, Y: 80}, Heading: 45}

	frame := c.Cast(pose, nil)
	if len(frame.Strips) != 0 {
		t.Fatalf("Expected no strips, got %d", len(frame.Strips))
	}
	if len(frame.Samples) != c.RayCount() {
		t.Fatalf("Expected %d samples, got %d", c.RayCount(), len(frame.Samples))
	}

	for i, s := range frame.Samples {
		angle := geom.Radians(pose.Heading + c.Offset(i))
		wantX := pose.Position.X + cfg.Range*math.Cos(angle)
		wantY := pose.Position.Y + cfg.Range*math.Sin(angle)
		if s.Hit {
			t.Errorf("Sample %d: unexpected hit", i)
		}
		if !approxEqual(s.Point.X, wantX, tolerance) || !approxEqual(s.Point.Y, wantY, tolerance) {
			t.Errorf("Sample %d: expected (%f,%f), got (%f,%f)", i, wantX, wantY, s.Point.X, s.Point.Y)
		}
	}
}

func TestCastSquareAhead(t *testing.T) {
	c := newCaster(t, testConfig())
	pose := Pose{Heading: 0}
	near := []geom.Obstacle{geom.NewRect(geom.Point{X: 100, Y: -20}, 40, 40, nil)}
	far := []geom.Obstacle{geom.NewRect(geom.Point{X: 300, Y: -20}, 40, 40, nil)}

	center := c.RayCount() / 2

	frame := c.Cast(pose, near)
	s := frame.Samples[center]
	if !s.Hit {
		t.Fatalf("Expected center ray to hit the square")
	}
	if !approxEqual(s.Point.X, 100, tolerance) || !approxEqual(s.Point.Y, 0, tolerance) {
		t.Errorf("Expected hit on near edge at (100,0), got (%f,%f)", s.Point.X, s.Point.Y)
	}
	nearStrip, ok := stripAt(frame, center)
	if !ok {
		t.Fatalf("Expected a strip for the center column")
	}

	frame = c.Cast(pose, far)
	farStrip, ok := stripAt(frame, center)
	if !ok {
		t.Fatalf("Expected a strip for the center column of the far square")
	}

	if nearStrip.H <= farStrip.H {
		t.Errorf("Expected near strip (%f) taller than far strip (%f)", nearStrip.H, farStrip.H)
	}
	if !approxEqual(nearStrip.Y+nearStrip.H/2, c.Config().ViewportHeight/2, tolerance) {
		t.Errorf("Expected strip to be vertically centered, got y=%f h=%f", nearStrip.Y, nearStrip.H)
	}
}

func TestCastNearestObstacleWins(t *testing.T) {
	c := newCaster(t, testConfig())
	obstacles := []geom.Obstacle{
		geom.NewRect(geom.Point{X: 300, Y: -20}, 40, 40, color.RGBA{B: 200, A: 255}),
		geom.NewRect(geom.Point{X: 100, Y: -20}, 40, 40, color.RGBA{G: 200, A: 255}),
	}

	frame := c.Cast(Pose{}, obstacles)
	center := c.RayCount() / 2
	if !approxEqual(frame.Samples[center].Point.X, 100, tolerance) {
		t.Errorf("Expected nearest hit at x=100, got %f", frame.Samples[center].Point.X)
	}
	strip, _ := stripAt(frame, center)
	if strip.Color.G == 0 || strip.Color.B != 0 {
		t.Errorf("Expected strip shaded from the near obstacle's color, got %v", strip.Color)
	}
}

func TestCastTieKeepsFirstObstacle(t *testing.T) {
	c := newCaster(t, testConfig())
	red := geom.NewRect(geom.Point{X: 100, Y: -20}, 40, 40, color.RGBA{R: 200, A: 255})
	blue := geom.NewRect(geom.Point{X: 100, Y: -20}, 40, 40, color.RGBA{B: 200, A: 255})
	center := c.RayCount() / 2

	strip, ok := stripAt(c.Cast(Pose{}, []geom.Obstacle{red, blue}), center)
	if !ok {
		t.Fatalf("Expected a strip for the center column")
	}
	if strip.Color.R == 0 || strip.Color.B != 0 {
		t.Errorf("Expected the first obstacle's color on a tie, got %v", strip.Color)
	}

	strip, ok = stripAt(c.Cast(Pose{}, []geom.Obstacle{blue, red}), center)
	if !ok {
		t.Fatalf("Expected a strip for the center column after reordering")
	}
	if strip.Color.B == 0 || strip.Color.R != 0 {
		t.Errorf("Expected reordered obstacles to swap the color, got %v", strip.Color)
	}
}

func TestCastOutOfRange(t *testing.T) {
	cfg := testConfig()
	cfg.Range = 50
	c := newCaster(t, cfg)

	frame := c.Cast(Pose{}, []geom.Obstacle{geom.NewRect(geom.Point{X: 100, Y: -20}, 40, 40, nil)})
	if len(frame.Strips) != 0 {
		t.Errorf("Expected no strips for an obstacle beyond range, got %d", len(frame.Strips))
	}
}

func TestFisheyeCorrectionFlattensWall(t *testing.T) {
	wall := []geom.Obstacle{{Points: []geom.Point{{X: 100, Y: -1000}, {X: 100, Y: 1000}}}}

	cfg := testConfig()
	c := newCaster(t, cfg)
	frame := c.Cast(Pose{}, wall)
	if len(frame.Strips) != c.RayCount() {
		t.Fatalf("Expected every ray to hit the wall, got %d strips", len(frame.Strips))
	}
	want := frame.Strips[0].H
	for _, s := range frame.Strips {
		if !approxEqual(s.H, want, 1e-6*want) {
			t.Errorf("Column %d: expected height %f, got %f", s.Column, want, s.H)
		}
	}

	cfg.FisheyeCorrection = false
	raw := newCaster(t, cfg).Cast(Pose{}, wall)
	center := raw.Strips[len(raw.Strips)/2].H
	edge := raw.Strips[0].H
	if edge >= center {
		t.Errorf("Expected uncorrected edge strip (%f) shorter than center (%f)", edge, center)
	}
}

func TestStripsTileViewport(t *testing.T) {
	cfg := testConfig()
	c := newCaster(t, cfg)
	wall := []geom.Obstacle{{Points: []geom.Point{{X: 100, Y: -1000}, {X: 100, Y: 1000}}}}

	frame := c.Cast(Pose{}, wall)
	last := frame.Strips[len(frame.Strips)-1]
	if !approxEqual(last.X+last.W, cfg.ViewportWidth, tolerance) {
		t.Errorf("Expected strips to end at %f, got %f", cfg.ViewportWidth, last.X+last.W)
	}
}

func TestCorrectLightness(t *testing.T) {
	base := color.RGBA{R: 235, G: 26, B: 36, A: 255}
	got := CorrectLightness(base, -100)
	want := color.RGBA{R: 205, G: 0, B: 25, A: 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if CorrectLightness(base, 1000).R != 255 {
		t.Errorf("Expected channel to clamp at 255")
	}
	if DepthShade(base, 0, 1.2) != base {
		t.Errorf("Expected no darkening at distance 0")
	}
	if DepthShade(base, 600, 1.2).R >= DepthShade(base, 60, 1.2).R {
		t.Errorf("Expected farther walls to be darker")
	}
}

func stripAt(frame *Frame, column int) (Strip, bool) {
	for _, s := range frame.Strips {
		if s.Column == column {
			return s, true
		}
	}
	return Strip{}, false
}
