package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/silversquirl/elide-c/internal/config"
)

// HasUnitExt reports whether path ends in a recognized tree document extension.
func HasUnitExt(path string) bool {
	for _, ext := range config.UnitFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// UnitName derives a unit name from a file path.
// It takes the base filename and removes any recognized unit extension.
func UnitName(path string) string {
	name := filepath.Base(path)
	for _, ext := range config.UnitFileExtensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// ExpandUnitPaths replaces every directory in paths with the unit documents
// it contains (not recursive, sorted). Files are passed through unchecked.
func ExpandUnitPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			out = append(out, path)
			continue
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var units []string
		for _, e := range entries {
			if !e.IsDir() && HasUnitExt(e.Name()) {
				units = append(units, filepath.Join(path, e.Name()))
			}
		}
		sort.Strings(units)
		out = append(out, units...)
	}
	return out, nil
}
