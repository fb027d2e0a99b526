package experiment

import (
	"strings"
	"time"

	"github.com/gonuts/flag"

	"github.com/katalvlaran/gridwalk/viewer"
)

// Flags holds command-line values that override a Config.
// Zero values leave the corresponding Config fields untouched.
type Flags struct {
	Case       int
	MapFile    string
	Random     bool
	Width      int
	Height     int
	WallProb   float64
	Seed       int64
	MaxTries   int
	Algorithms string // comma-separated
	Heuristic  int
	Observer   string
	TreeSearch bool
	Animate    bool
	Delay      time.Duration
	Clear      bool
}

// RegisterMapFlags binds the random-map flags of f to fs.
func (f *Flags) RegisterMapFlags(fs *flag.FlagSet) {
	fs.IntVar(&f.Width, "width", 0, "Random map width")
	fs.IntVar(&f.Height, "height", 0, "Random map height")
	fs.Float64Var(&f.WallProb, "wall-prob", 0, "Random map wall probability")
	fs.Int64Var(&f.Seed, "seed", 0, "Random map seed; 0 picks one from the clock")
	fs.IntVar(&f.MaxTries, "max-tries", 0, "Random map generation attempts")
}

// RegisterRunFlags binds every experiment flag of f to fs.
func (f *Flags) RegisterRunFlags(fs *flag.FlagSet) {
	f.RegisterMapFlags(fs)
	fs.IntVar(&f.Case, "case", 0, "Experiment case: 1, 2 or 3")
	fs.StringVar(&f.MapFile, "map", "", "Path to an ASCII map file")
	fs.BoolVar(&f.Random, "random", false, "Generate a random map")
	fs.StringVar(&f.Algorithms, "algorithms", "", "Comma-separated algorithms, e.g. bfs,ucs,astar")
	fs.IntVar(&f.Heuristic, "heuristic", 0, "A* heuristic: 1, 2 or 3")
	fs.StringVar(&f.Observer, "observer", "", "Per-run observer: "+strings.Join(viewer.Names(), ", "))
	fs.BoolVar(&f.TreeSearch, "tree", false, "Disable duplicate-state detection")
	fs.BoolVar(&f.Animate, "animate", false, "Animate the search in the terminal")
	fs.DurationVar(&f.Delay, "delay", 0, "Pause between animation frames")
	fs.BoolVar(&f.Clear, "clear", false, "Clear the terminal between animation frames")
}

// FlagOverrides converts f into a Config meant to be merged over a loaded
// or default one.
func FlagOverrides(f Flags) Config {
	out := Config{
		Case: f.Case,
		Map: MapConfig{
			File:     f.MapFile,
			Random:   f.Random,
			Width:    f.Width,
			Height:   f.Height,
			WallProb: f.WallProb,
			Seed:     f.Seed,
			MaxTries: f.MaxTries,
		},
		Observer:   f.Observer,
		TreeSearch: f.TreeSearch,
		Animate: AnimateConfig{
			Enabled: f.Animate,
			DelayMS: int(f.Delay.Milliseconds()),
			Clear:   f.Clear,
		},
	}
	for _, name := range strings.Split(f.Algorithms, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out.Algorithms = append(out.Algorithms, name)
		}
	}
	if f.Heuristic != 0 {
		out.Heuristics = []int{f.Heuristic}
	}
	return out
}

// SeedRandom gives a random map without a seed one taken from now, and
// reports whether it did.
func SeedRandom(cfg *MapConfig, now func() time.Time) bool {
	if !cfg.Random || cfg.Seed != 0 {
		return false
	}
	cfg.Seed = now().UnixNano()
	return true
}
