package viewer

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/katalvlaran/gridwalk/puzzle"
)

// ErrUnknownObserver is returned by Get for unregistered names.
var ErrUnknownObserver = errors.New("viewer: unknown observer")

// Factory builds a fresh grid observer. Observers with per-run state must not
// be shared, so the registry stores factories, not instances.
type Factory func() GridObserver

var (
	factories = map[string]Factory{
		"noop":  func() GridObserver { return Noop[puzzle.State, puzzle.Action]{} },
		"stats": func() GridObserver { return NewStats[puzzle.State, puzzle.Action]() },
		"slog":  func() GridObserver { return NewSlog[puzzle.State, puzzle.Action](slog.Default()) },
	}
	mutex sync.RWMutex
)

// Get builds the observer registered under name.
// Pre-registered: "noop", "stats" and "slog" (default logger).
func Get(name string) (GridObserver, error) {
	mutex.RLock()
	defer mutex.RUnlock()

	f, exists := factories[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObserver, name)
	}
	return f(), nil
}

// Register adds or replaces a named factory in the global registry.
func Register(name string, factory Factory) {
	mutex.Lock()
	defer mutex.Unlock()

	factories[name] = factory
}

// Names lists the registered names in lexical order.
func Names() []string {
	mutex.RLock()
	defer mutex.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
