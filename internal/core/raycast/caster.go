package raycast

import (
	"image/color"
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Pose is the camera's position and heading in degrees. Heading 0 looks along
// +X; positive angles turn towards +Y.
type Pose struct {
	Position geom.Point
	Heading  float64
}

// Sample is the resolved end of one ray.
type Sample struct {
	Point    geom.Point // Hit point, or the far end of the ray on a miss
	Hit      bool
	Distance float64 // Depth used for projection; Range on a miss
}

// Strip is one shaded wall column in screen space.
type Strip struct {
	Column     int
	X, Y, W, H float64
	Color      color.RGBA
}

// Frame is the output of one pass. It is owned by the Caster and is only
// valid until the next call to Cast.
type Frame struct {
	Pose    Pose
	Samples []Sample
	Strips  []Strip
}

// Caster casts a fixed fan of rays against obstacle outlines.
type Caster struct {
	config  Config
	solver  geom.Solver
	offsets []float64
	frame   Frame
}

// New creates a Caster. Sample and strip buffers are sized here once.
func New(config Config) (*Caster, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	n := config.RayCount()
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = -config.FOV/2 + float64(i)*config.Step
	}

	return &Caster{
		config:  config,
		solver:  geom.NewSolver(config.Tolerance),
		offsets: offsets,
		frame: Frame{
			Samples: make([]Sample, n),
			Strips:  make([]Strip, 0, n),
		},
	}, nil
}

// Config returns the caster's configuration.
func (c *Caster) Config() Config {
	return c.config
}

// RayCount returns the number of rays cast per frame.
func (c *Caster) RayCount() int {
	return len(c.offsets)
}

// Offset returns the angular offset of ray i from the heading, in degrees.
func (c *Caster) Offset(i int) float64 {
	return c.offsets[i]
}

// SetFisheyeCorrection switches between radial and perpendicular depth.
func (c *Caster) SetFisheyeCorrection(enabled bool) {
	c.config.FisheyeCorrection = enabled
}

// StripWidth is the screen width covered by each ray.
func (c *Caster) StripWidth() float64 {
	return c.config.ViewportWidth / float64(len(c.offsets))
}

// Cast runs one pass over every ray from left to right. Obstacles are tested
// in slice order and edges in point order; on equal distances the first hit
// found is kept.
func (c *Caster) Cast(pose Pose, obstacles []geom.Obstacle) *Frame {
	c.frame.Pose = pose
	c.frame.Strips = c.frame.Strips[:0]

	width := c.StripWidth()
	for i, offset := range c.offsets {
		dir := geom.Direction(pose.Heading + offset)
		far := pose.Position.Add(dir.Scale(c.config.Range))
		ray := geom.Segment{A: pose.Position, B: far}

		correction := 1.0
		if c.config.FisheyeCorrection {
			correction = math.Cos(geom.Radians(offset))
		}

		best := math.MaxFloat64
		var nearest geom.Point
		var owner *geom.Obstacle
		for j := range obstacles {
			o := &obstacles[j]
			for e := 0; e < o.EdgeCount(); e++ {
				hit := c.solver.Intersect(ray, o.Edge(e))
				if !hit.OK {
					continue
				}
				d := geom.Distance(pose.Position, hit.Point) * correction
				if d < best {
					best = d
					nearest = hit.Point
					owner = o
				}
			}
		}

		if owner == nil {
			c.frame.Samples[i] = Sample{Point: far, Distance: c.config.Range}
			continue
		}

		c.frame.Samples[i] = Sample{Point: nearest, Hit: true, Distance: best}
		c.frame.Strips = append(c.frame.Strips, c.strip(i, width, best, owner))
	}

	return &c.frame
}

func (c *Caster) strip(column int, width, distance float64, owner *geom.Obstacle) Strip {
	// A camera standing on an edge would otherwise divide by zero.
	distance = math.Max(distance, c.config.Tolerance)
	height := c.config.WallScale / distance

	base := c.config.BaseColor
	if owner.Color != nil {
		base = toRGBA(owner.Color)
	}

	return Strip{
		Column: column,
		X:      float64(column) * width,
		Y:      (c.config.ViewportHeight - height) / 2,
		W:      width,
		H:      height,
		Color:  DepthShade(base, distance, c.config.Fog),
	}
}
