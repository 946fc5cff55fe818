package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the elide.yaml configuration.
type Config struct {
	// MaxDepth bounds the nesting depth of expression trees the annotation
	// pass will descend into. 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`

	// Workers is the number of compilation units annotated in parallel.
	Workers int `yaml:"workers"`

	// Color is one of "auto", "always" or "never".
	Color string `yaml:"color"`

	// Dump prints every annotated tree after a successful pass.
	Dump bool `yaml:"dump"`

	// Units lists glob patterns of tree documents, relative to the config
	// file, checked when no files are given on the command line.
	Units []string `yaml:"units,omitempty"`

	// Dir is the directory the config was loaded from.
	Dir string `yaml:"-"`
}

// Default returns the configuration used when no elide.yaml exists.
func Default() *Config {
	cfg := &Config{MaxDepth: -1}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses an elide.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig parses elide.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Config{MaxDepth: -1}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for elide.yaml starting from dir and walking up to
// parent directories. It returns "" and a nil error when none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// UnitPaths expands the Units patterns relative to the config directory.
func (c *Config) UnitPaths() ([]string, error) {
	var paths []string
	for _, pattern := range c.Units {
		if !filepath.IsAbs(pattern) && c.Dir != "" {
			pattern = filepath.Join(c.Dir, pattern)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("units pattern %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// ValidColor reports whether mode is a colour setting the emitter accepts.
func ValidColor(mode string) bool {
	switch mode {
	case "auto", "always", "never":
		return true
	}
	return false
}

func (c *Config) validate(path string) error {
	if c.MaxDepth < -1 {
		return fmt.Errorf("%s: max_depth must not be negative", path)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%s: workers must not be negative", path)
	}
	if c.Color != "" && !ValidColor(c.Color) {
		return fmt.Errorf("%s: color must be auto, always or never, got %q", path, c.Color)
	}
	for i, pattern := range c.Units {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%s: units[%d]: %w", path, i, err)
		}
	}
	return nil
}

// setDefaults fills fields left unset. MaxDepth is -1 until decoded so an
// explicit max_depth: 0 (unlimited) survives.
func (c *Config) setDefaults() {
	if c.MaxDepth == -1 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
}
