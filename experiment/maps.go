package experiment

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridwalk/gridmap"
	"github.com/katalvlaran/gridwalk/mapgen"
)

// DefaultMapASCII is the built-in 9×7 map: T at (4,4), P at (2,1).
const DefaultMapASCII = `
#########
# P     #
# # ##  #
#    #  #
# ##T   #
#       #
#########
`

// DefaultMap parses DefaultMapASCII.
func DefaultMap() *gridmap.Map { return gridmap.MustParse(DefaultMapASCII) }

// ResolveMap returns the map selected by cfg: inline ASCII, a map file, a
// generated map, or the default map, in that order of precedence.
func ResolveMap(cfg MapConfig) (*gridmap.Map, error) {
	switch {
	case cfg.ASCII != "":
		m, err := gridmap.Parse(cfg.ASCII)
		if err != nil {
			return nil, fmt.Errorf("inline map: %w", err)
		}
		return m, nil
	case cfg.File != "":
		data, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read map file: %w", err)
		}
		m, err := gridmap.Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("map file %s: %w", cfg.File, err)
		}
		return m, nil
	case cfg.Random:
		opts := []mapgen.Option{mapgen.WithSeed(cfg.Seed)}
		if cfg.MaxTries > 0 {
			opts = append(opts, mapgen.WithMaxTries(cfg.MaxTries))
		}
		return mapgen.Generate(cfg.Width, cfg.Height, cfg.WallProb, opts...)
	}
	return DefaultMap(), nil
}
