package maploader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MapEntry is a map file discovered in a data directory
type MapEntry struct {
	Name string // File name without extension
	Path string
}

// ScanMaps lists the map files directly inside dir, sorted by name
func ScanMaps(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read map directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		maps = append(maps, MapEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}
