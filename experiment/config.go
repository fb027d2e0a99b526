package experiment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridwalk/mapgen"
)

const (
	defaultCase     = 1
	defaultWidth    = 9
	defaultHeight   = 7
	defaultWallProb = 0.2
	defaultObserver = "stats"
	defaultDelayMS  = 50
)

// MapConfig selects where the map comes from. Precedence: ASCII, File,
// Random, then the built-in default map.
type MapConfig struct {
	ASCII    string  `yaml:"ascii,omitempty"`
	File     string  `yaml:"file,omitempty"`
	Random   bool    `yaml:"random,omitempty"`
	Width    int     `yaml:"width,omitempty"`
	Height   int     `yaml:"height,omitempty"`
	WallProb float64 `yaml:"wall_prob,omitempty"`
	Seed     int64   `yaml:"seed,omitempty"`
	MaxTries int     `yaml:"max_tries,omitempty"`
}

// AnimateConfig controls the animated viewer.
type AnimateConfig struct {
	Enabled bool `yaml:"enabled,omitempty"`
	DelayMS int  `yaml:"delay_ms,omitempty"`
	Clear   bool `yaml:"clear,omitempty"`
}

// Config holds the parameters of one experiment invocation.
type Config struct {
	Case       int                `yaml:"case,omitempty"`
	Map        MapConfig          `yaml:"map"`
	Costs      map[string]float64 `yaml:"costs,omitempty"`
	Algorithms []string           `yaml:"algorithms,omitempty"`
	Heuristics []int              `yaml:"heuristics,omitempty"`
	Observer   string             `yaml:"observer,omitempty"`
	TreeSearch bool               `yaml:"tree_search,omitempty"`
	Animate    AnimateConfig      `yaml:"animate"`
}

// DefaultConfig returns a Config running case 1 on the built-in map with a
// stats observer.
func DefaultConfig() Config {
	return Config{
		Case: defaultCase,
		Map: MapConfig{
			Width:    defaultWidth,
			Height:   defaultHeight,
			WallProb: defaultWallProb,
			MaxTries: mapgen.DefaultMaxTries,
		},
		Observer: defaultObserver,
		Animate:  AnimateConfig{DelayMS: defaultDelayMS},
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Case > 0 {
		c.Case = source.Case
	}
	c.Map.Merge(&source.Map)
	if len(source.Costs) > 0 {
		c.Costs = source.Costs
	}
	if len(source.Algorithms) > 0 {
		c.Algorithms = source.Algorithms
	}
	if len(source.Heuristics) > 0 {
		c.Heuristics = source.Heuristics
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.TreeSearch {
		c.TreeSearch = true
	}
	c.Animate.Merge(&source.Animate)
}

// Merge applies non-zero values from source into c.
func (c *MapConfig) Merge(source *MapConfig) {
	if source.ASCII != "" {
		c.ASCII = source.ASCII
	}
	if source.File != "" {
		c.File = source.File
	}
	if source.Random {
		c.Random = true
	}
	if source.Width > 0 {
		c.Width = source.Width
	}
	if source.Height > 0 {
		c.Height = source.Height
	}
	if source.WallProb > 0 {
		c.WallProb = source.WallProb
	}
	if source.Seed != 0 {
		c.Seed = source.Seed
	}
	if source.MaxTries > 0 {
		c.MaxTries = source.MaxTries
	}
}

// Merge applies non-zero values from source into c.
func (c *AnimateConfig) Merge(source *AnimateConfig) {
	if source.Enabled {
		c.Enabled = true
	}
	if source.DelayMS > 0 {
		c.DelayMS = source.DelayMS
	}
	if source.Clear {
		c.Clear = true
	}
}

// LoadConfig reads a YAML config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML data and merges it over DefaultConfig.
// Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	var loaded Config
	if err := decodeStrict(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// decodeStrict decodes a single YAML document into v, failing on unknown
// keys. An empty document leaves v untouched.
func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
