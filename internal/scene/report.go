package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

func printFrameSummary(out io.Writer, gameMap *maploader.Map, caster *raycast.Caster, frame *raycast.Frame) {
	cfg := caster.Config()

	nearest, farthest := math.Inf(1), 0.0
	for _, s := range frame.Samples {
		if !s.Hit {
			continue
		}
		nearest = math.Min(nearest, s.Distance)
		farthest = math.Max(farthest, s.Distance)
	}

	fmt.Fprintf(out, "Map:      %s (%d obstacles)\n", gameMap.Data.Name, len(gameMap.Obstacles))
	fmt.Fprintf(out, "Camera:   (%.1f, %.1f) heading %.1f°\n", frame.Pose.Position.X, frame.Pose.Position.Y, frame.Pose.Heading)
	fmt.Fprintf(out, "Fan:      %d rays over %.1f° (step %.2f°), range %.0f\n", caster.RayCount(), cfg.FOV, cfg.Step, cfg.Range)
	fmt.Fprintf(out, "Fisheye:  %v\n", cfg.FisheyeCorrection)
	fmt.Fprintf(out, "Hits:     %d of %d rays\n", len(frame.Strips), len(frame.Samples))
	if len(frame.Strips) > 0 {
		fmt.Fprintf(out, "Depth:    nearest %.1f, farthest %.1f\n", nearest, farthest)
	}
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonSample struct {
	Point    jsonPoint `json:"point"`
	Hit      bool      `json:"hit"`
	Distance float64   `json:"distance"`
}

type jsonStrip struct {
	Column int      `json:"column"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	W      float64  `json:"w"`
	H      float64  `json:"h"`
	Color  [3]uint8 `json:"color"`
}

type jsonFrame struct {
	Camera  jsonPoint    `json:"camera"`
	Heading float64      `json:"heading"`
	Samples []jsonSample `json:"samples"`
	Strips  []jsonStrip  `json:"strips"`
}

func writeFrameJSON(out io.Writer, frame *raycast.Frame) error {
	jf := jsonFrame{
		Camera:  jsonPoint{X: frame.Pose.Position.X, Y: frame.Pose.Position.Y},
		Heading: frame.Pose.Heading,
		Samples: make([]jsonSample, len(frame.Samples)),
		Strips:  make([]jsonStrip, len(frame.Strips)),
	}
	for i, s := range frame.Samples {
		jf.Samples[i] = jsonSample{Point: jsonPoint{X: s.Point.X, Y: s.Point.Y}, Hit: s.Hit, Distance: s.Distance}
	}
	for i, s := range frame.Strips {
		jf.Strips[i] = jsonStrip{
			Column: s.Column, X: s.X, Y: s.Y, W: s.W, H: s.H,
			Color: [3]uint8{s.Color.R, s.Color.G, s.Color.B},
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jf); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return nil
}
