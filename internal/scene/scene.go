// Package scene loads a config and map pair and runs the headless commands:
// single-frame casts and map listings.
package scene

import (
	"fmt"
	"io"
	"log"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/world/maploader"
)

// Options select the files a scene is built from.
type Options struct {
	ConfigPath string
	MapPath    string // Built-in map when empty
	NoFisheye  bool
}

// Load loads the config and the map named by opts.
func Load(opts Options) (*config.Config, *maploader.Map, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.NoFisheye {
		cfg.Camera.FisheyeCorrection = false
	}

	if opts.MapPath == "" {
		log.Println("Using built-in map")
		return cfg, maploader.Default(), nil
	}

	log.Printf("Loading map %s...", opts.MapPath)
	gameMap, err := maploader.LoadMap(opts.MapPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading map: %w", err)
	}
	return cfg, gameMap, nil
}

// CastOptions override the map's spawn pose for a headless cast.
type CastOptions struct {
	X, Y, Heading *float64
	JSON          bool
}

// Cast casts one frame from the spawn (or the overridden pose) and writes a
// summary, or the whole frame as JSON.
func Cast(opts Options, castOpts CastOptions, out io.Writer) error {
	cfg, gameMap, err := Load(opts)
	if err != nil {
		return err
	}

	caster, err := raycast.New(cfg.CasterConfig())
	if err != nil {
		return fmt.Errorf("creating caster: %w", err)
	}

	pos, heading := gameMap.Spawn()
	if castOpts.X != nil {
		pos.X = *castOpts.X
	}
	if castOpts.Y != nil {
		pos.Y = *castOpts.Y
	}
	if castOpts.Heading != nil {
		heading = *castOpts.Heading
	}

	frame := caster.Cast(raycast.Pose{Position: pos, Heading: heading}, gameMap.Obstacles)
	if castOpts.JSON {
		return writeFrameJSON(out, frame)
	}
	printFrameSummary(out, gameMap, caster, frame)
	return nil
}

// ListMaps writes one line per map file in dir.
func ListMaps(dir string, out io.Writer) error {
	maps, err := maploader.ScanMaps(dir)
	if err != nil {
		return err
	}
	if len(maps) == 0 {
		fmt.Fprintf(out, "No maps found in %s\n", dir)
		return nil
	}

	for _, entry := range maps {
		m, err := maploader.LoadMap(entry.Path)
		if err != nil {
			fmt.Fprintf(out, "  %-20s INVALID: %v\n", entry.Name, err)
			continue
		}
		w, h := m.Bounds()
		fmt.Fprintf(out, "  %-20s %4.0fx%-4.0f %3d obstacles  %s\n", entry.Name, w, h, len(m.Obstacles), entry.Path)
	}
	return nil
}
