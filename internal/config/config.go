// Package config holds the demo's tunables. Values are loaded from a YAML file
// layered over built-in defaults so a file only needs the keys it changes.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/raycaster/internal/core/raycast"
)

// Config holds every tunable of the demo
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Player  PlayerConfig  `yaml:"player"`
	Minimap MinimapConfig `yaml:"minimap"`
	Colors  ColorConfig   `yaml:"colors"`
}

// WindowConfig defines the logical screen
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// CameraConfig defines the ray fan and its projection
type CameraConfig struct {
	Range             float64 `yaml:"range"`              // Max ray length in world units
	FOV               float64 `yaml:"fov"`                // Field of view in degrees
	Step              float64 `yaml:"step"`               // Degrees between rays
	Tolerance         float64 `yaml:"tolerance"`          // Endpoint slack for intersections
	FisheyeCorrection bool    `yaml:"fisheye_correction"` // Project perpendicular distance
	WallScale         float64 `yaml:"wall_scale"`         // Strip height = wall_scale / distance
	Fog               float64 `yaml:"fog"`                // Distance per step of darkening
}

// PlayerConfig defines movement rates. Rates are per millisecond.
type PlayerConfig struct {
	Speed            float64 `yaml:"speed"`
	TurnSpeed        float64 `yaml:"turn_speed"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // Degrees per pixel of cursor drag
	Radius           float64 `yaml:"radius"`
}

// MinimapConfig defines the top-down overlay
type MinimapConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Scale    float64 `yaml:"scale"`
	ShowRays bool    `yaml:"show_rays"`
}

// ColorConfig holds scene colors as [r, g, b]
type ColorConfig struct {
	Sky    RGB `yaml:"sky"`
	Ground RGB `yaml:"ground"`
	Wall   RGB `yaml:"wall"`
	Rays   RGB `yaml:"rays"`
	Player RGB `yaml:"player"`
}

// RGB is an opaque color written as a three element list.
type RGB [3]uint8

// RGBA returns the color as an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// DefaultConfig returns the settings of the classic demo
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1000,
			Height:    700,
			Title:     "RayCasting",
			Resizable: false,
		},
		Camera: CameraConfig{
			Range:             1000,
			FOV:               120,
			Step:              0.1,
			Tolerance:         0.1,
			FisheyeCorrection: true,
			WallScale:         40000,
			Fog:               1.2,
		},
		Player: PlayerConfig{
			Speed:            0.15,
			TurnSpeed:        0.1,
			MouseSensitivity: 0.2,
			Radius:           10,
		},
		Minimap: MinimapConfig{
			Enabled:  true,
			Scale:    0.3,
			ShowRays: true,
		},
		Colors: ColorConfig{
			Sky:    RGB{149, 202, 255},
			Ground: RGB{200, 200, 0},
			Wall:   RGB{235, 26, 36},
			Rays:   RGB{0, 0, 0},
			Player: RGB{255, 255, 0},
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: config %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the settings that the caster does not check itself.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Player.Speed < 0 || c.Player.TurnSpeed < 0 {
		return fmt.Errorf("player speeds must not be negative")
	}
	if c.Minimap.Enabled && c.Minimap.Scale <= 0 {
		return fmt.Errorf("invalid minimap scale: %v", c.Minimap.Scale)
	}
	return c.CasterConfig().Validate()
}

// CasterConfig projects the settings onto the ray caster's configuration.
func (c *Config) CasterConfig() raycast.Config {
	return raycast.Config{
		Range:             c.Camera.Range,
		FOV:               c.Camera.FOV,
		Step:              c.Camera.Step,
		Tolerance:         c.Camera.Tolerance,
		FisheyeCorrection: c.Camera.FisheyeCorrection,
		ViewportWidth:     float64(c.Window.Width),
		ViewportHeight:    float64(c.Window.Height),
		WallScale:         c.Camera.WallScale,
		Fog:               c.Camera.Fog,
		BaseColor:         c.Colors.Wall.RGBA(),
	}
}
