package maploader

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// SpawnPoint defines where the player starts and which way they face
type SpawnPoint struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Heading float64 `json:"heading" yaml:"heading"` // Degrees
}

// PointData is a map point
type PointData struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// RectData is an axis-aligned rectangle by top-left corner and size
type RectData struct {
	Width  float64 `json:"w" yaml:"w"`
	Height float64 `json:"h" yaml:"h"`
}

// ObstacleData describes one obstacle. Either Rect or Points must be set;
// both are relative to Origin.
type ObstacleData struct {
	Name   string      `json:"name,omitempty" yaml:"name,omitempty"`
	Origin PointData   `json:"origin" yaml:"origin"`
	Rect   *RectData   `json:"rect,omitempty" yaml:"rect,omitempty"`
	Points []PointData `json:"points,omitempty" yaml:"points,omitempty"`
	Color  []int       `json:"color,omitempty" yaml:"color,omitempty"` // [r, g, b]
}

// MapData represents the loaded map file
type MapData struct {
	Name        string         `json:"name" yaml:"name"`
	Width       float64        `json:"width" yaml:"width"`
	Height      float64        `json:"height" yaml:"height"`
	PlayerSpawn SpawnPoint     `json:"player_spawn" yaml:"player_spawn"`
	Obstacles   []ObstacleData `json:"obstacles" yaml:"obstacles"`
}

// Map is a loaded map with its obstacles resolved
type Map struct {
	Data      *MapData
	Obstacles []geom.Obstacle
}

// LoadMap loads a map from a JSON or YAML file, chosen by extension
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	var mapData MapData
	switch strings.ToLower(filepath.Ext(mapPath)) {
	case ".json":
		err = json.Unmarshal(data, &mapData)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &mapData)
	default:
		return nil, fmt.Errorf("unsupported map format %q", filepath.Ext(mapPath))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	m, err := FromData(&mapData)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}
	return m, nil
}

// FromData validates map data and resolves its obstacles
func FromData(data *MapData) (*Map, error) {
	if err := validateMapData(data); err != nil {
		return nil, err
	}

	obstacles := make([]geom.Obstacle, 0, len(data.Obstacles))
	for i, od := range data.Obstacles {
		o, err := od.Obstacle()
		if err != nil {
			return nil, fmt.Errorf("obstacle %d (%s): %w", i, od.Name, err)
		}
		obstacles = append(obstacles, o)
	}

	return &Map{Data: data, Obstacles: obstacles}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Width < 0 || data.Height < 0 {
		return fmt.Errorf("invalid map dimensions: %vx%v", data.Width, data.Height)
	}
	if len(data.Obstacles) == 0 {
		return fmt.Errorf("map has no obstacles")
	}
	return nil
}

// Obstacle resolves the description into a geometry obstacle
func (od ObstacleData) Obstacle() (geom.Obstacle, error) {
	origin := geom.Point{X: od.Origin.X, Y: od.Origin.Y}

	var clr color.Color
	if od.Color != nil {
		if len(od.Color) != 3 {
			return geom.Obstacle{}, fmt.Errorf("color must have 3 components, got %d", len(od.Color))
		}
		for _, c := range od.Color {
			if c < 0 || c > 255 {
				return geom.Obstacle{}, fmt.Errorf("color component out of range: %d", c)
			}
		}
		clr = color.RGBA{R: uint8(od.Color[0]), G: uint8(od.Color[1]), B: uint8(od.Color[2]), A: 255}
	}

	switch {
	case od.Rect != nil && od.Points != nil:
		return geom.Obstacle{}, fmt.Errorf("obstacle sets both rect and points")
	case od.Rect != nil:
		if od.Rect.Width <= 0 || od.Rect.Height <= 0 {
			return geom.Obstacle{}, fmt.Errorf("invalid rect size: %vx%v", od.Rect.Width, od.Rect.Height)
		}
		return geom.NewRect(origin, od.Rect.Width, od.Rect.Height, clr), nil
	default:
		pts := make([]geom.Point, len(od.Points))
		for i, p := range od.Points {
			pts[i] = geom.Point{X: p.X, Y: p.Y}
		}
		return geom.NewObstacle(origin, clr, pts...)
	}
}

// Spawn returns the player's start position
func (m *Map) Spawn() (geom.Point, float64) {
	s := m.Data.PlayerSpawn
	return geom.Point{X: s.X, Y: s.Y}, s.Heading
}

// Bounds returns the map size. When the file leaves it out the size is taken
// from the obstacles' extent.
func (m *Map) Bounds() (width, height float64) {
	if m.Data.Width > 0 && m.Data.Height > 0 {
		return m.Data.Width, m.Data.Height
	}
	for _, o := range m.Obstacles {
		for _, p := range o.WorldPoints() {
			width = max(width, p.X)
			height = max(height, p.Y)
		}
	}
	return width, height
}
