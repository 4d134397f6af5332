// Package raycast turns a camera pose and a list of obstacles into a fan of
// ray samples and the shaded wall strips they project onto the screen.
package raycast

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Config is the static configuration of a Caster.
type Config struct {
	Range float64 // Maximum ray length in world units
	FOV   float64 // Field of view in degrees
	Step  float64 // Angle between adjacent rays in degrees

	// Tolerance absorbs float error at segment endpoints.
	Tolerance float64

	// FisheyeCorrection projects perpendicular rather than radial distance.
	FisheyeCorrection bool

	ViewportWidth  float64
	ViewportHeight float64

	WallScale float64    // Strip height is WallScale / distance
	Fog       float64    // World units per step of darkening
	BaseColor color.RGBA // Wall color for obstacles without their own
}

// DefaultConfig mirrors the classic demo: a 120 degree fan of rays 0.1 degrees
// apart projected onto a 1000x700 viewport.
func DefaultConfig() Config {
	return Config{
		Range:             1000,
		FOV:               120,
		Step:              0.1,
		Tolerance:         0.1,
		FisheyeCorrection: true,
		ViewportWidth:     1000,
		ViewportHeight:    700,
		WallScale:         40000,
		Fog:               1.2,
		BaseColor:         color.RGBA{R: 235, G: 26, B: 36, A: 255},
	}
}

var errInvalidConfig = errors.New("invalid caster config")

// Validate checks that the configuration describes a usable fan.
func (c Config) Validate() error {
	switch {
	case !(c.Range > 0):
		return fmt.Errorf("%w: range must be positive, got %v", errInvalidConfig, c.Range)
	case !(c.FOV > 0) || c.FOV >= 180:
		return fmt.Errorf("%w: fov must be in (0,180), got %v", errInvalidConfig, c.FOV)
	case !(c.Step > 0) || c.Step > c.FOV:
		return fmt.Errorf("%w: step must be in (0,fov], got %v", errInvalidConfig, c.Step)
	case !(c.Tolerance > 0):
		return fmt.Errorf("%w: tolerance must be positive, got %v", errInvalidConfig, c.Tolerance)
	case !(c.ViewportWidth > 0) || !(c.ViewportHeight > 0):
		return fmt.Errorf("%w: viewport must be positive, got %vx%v", errInvalidConfig, c.ViewportWidth, c.ViewportHeight)
	case !(c.WallScale > 0):
		return fmt.Errorf("%w: wall scale must be positive, got %v", errInvalidConfig, c.WallScale)
	case !(c.Fog > 0):
		return fmt.Errorf("%w: fog must be positive, got %v", errInvalidConfig, c.Fog)
	}
	return nil
}

// RayCount is the number of rays in the fan. Both edges of the field of view
// get a ray, so a 60 degree fan with a 1 degree step has 61 rays.
func (c Config) RayCount() int {
	return int(math.Floor(c.FOV/c.Step+1e-9)) + 1
}
