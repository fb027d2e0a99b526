package viewer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/gridwalk/gridmap"
	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/search"
)

// GridObserver is an observer of grid-puzzle searches.
type GridObserver = search.Observer[puzzle.State, puzzle.Action]

// GridEvent is an event of a grid-puzzle search.
type GridEvent = search.Event[puzzle.State, puzzle.Action]

// Frame glyphs beyond those of gridmap.
const (
	CurrentMark = '@'
	VisitedMark = '.'
)

// Path strings longer than maxPathText are cut to maxPathText-3 runes plus "...".
const maxPathText = 50

// clearScreen homes the cursor and clears an ANSI terminal.
const clearScreen = "\x1b[H\x1b[2J"

// AnimatedOption customizes an Animated viewer.
type AnimatedOption func(*Animated)

// WithDelay sets the pause after each per-node frame. Panics when d < 0.
func WithDelay(d time.Duration) AnimatedOption {
	if d < 0 {
		panic("viewer: WithDelay(negative)")
	}
	return func(a *Animated) { a.delay = d }
}

// WithClearScreen prefixes every frame with an ANSI clear sequence.
func WithClearScreen(on bool) AnimatedOption {
	return func(a *Animated) { a.clear = on }
}

// WithSleep replaces the delay implementation. Panics on nil.
func WithSleep(fn func(ctx context.Context, d time.Duration)) AnimatedOption {
	if fn == nil {
		panic("viewer: WithSleep(nil)")
	}
	return func(a *Animated) { a.sleep = fn }
}

// WithClock replaces the time source used for the elapsed-time line.
// Panics on nil.
func WithClock(now func() time.Time) AnimatedOption {
	if now == nil {
		panic("viewer: WithClock(nil)")
	}
	return func(a *Animated) { a.now = now }
}

// Animated draws the search over a grid map as ASCII frames: visited cells,
// the cell being explored, and once found the solution path, followed by an
// info panel. A frame is written for every node_chosen and node_generated
// event, each followed by the configured delay, plus one frame when the run
// starts and one when it ends.
type Animated struct {
	w     io.Writer
	m     *gridmap.Map
	delay time.Duration
	clear bool
	sleep func(context.Context, time.Duration)
	now   func() time.Time

	// per-run state, reset on started
	visited     map[gridmap.Point]struct{}
	visits      int
	current     gridmap.Point
	currentCost float64
	expanded    int
	maxFrontier int
	start       time.Time
	elapsed     time.Duration
	path        []gridmap.Point
	actions     []string
	pathCost    float64
	solved      bool
	exhausted   bool
}

// NewAnimated creates a viewer drawing m into w. Panics on a nil writer or map.
func NewAnimated(w io.Writer, m *gridmap.Map, opts ...AnimatedOption) *Animated {
	if w == nil || m == nil {
		panic("viewer: NewAnimated(nil writer or map)")
	}
	a := &Animated{w: w, m: m, sleep: sleepContext, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	a.reset()
	return a
}

func (a *Animated) reset() {
	a.visited = make(map[gridmap.Point]struct{})
	a.visits, a.expanded, a.maxFrontier = 0, 0, 0
	a.current, a.currentCost = a.m.Start(), 0
	a.start, a.elapsed = a.now(), 0
	a.path, a.actions, a.pathCost = nil, nil, 0
	a.solved, a.exhausted = false, false
}

// Notify updates the run state and draws a frame.
func (a *Animated) Notify(ctx context.Context, event GridEvent) error {
	if event.Kind == search.EventStarted {
		a.reset()
	}
	a.elapsed = a.now().Sub(a.start)
	a.expanded = event.Stats.Expanded
	if event.FrontierLen > a.maxFrontier {
		a.maxFrontier = event.FrontierLen
	}

	pause := false
	switch event.Kind {
	case search.EventNodeChosen:
		a.visits++
		a.current, a.currentCost = event.Node.State(), event.Node.PathCost()
		a.visited[a.current] = struct{}{}
		pause = true
	case search.EventNodeGenerated:
		pause = true
	case search.EventGoalFound:
		a.current, a.currentCost = event.Node.State(), event.Node.PathCost()
		a.SetSolution(event.Node.Path(), event.Node.PathCost())
	case search.EventSearchExhausted:
		a.exhausted = true
	}

	if err := a.draw(); err != nil {
		return err
	}
	if pause && a.delay > 0 {
		a.sleep(ctx, a.delay)
	}
	return nil
}

// SetSolution records the path to draw and report in the info panel.
func (a *Animated) SetSolution(steps []search.Step[puzzle.State, puzzle.Action], cost float64) {
	a.path = puzzle.Positions(steps)
	a.actions = puzzle.ActionNames(steps)
	a.pathCost = cost
	a.solved = true
}

func (a *Animated) draw() error {
	var sb strings.Builder
	if a.clear {
		sb.WriteString(clearScreen)
	}
	sb.WriteString(a.Frame())
	if _, err := io.WriteString(a.w, sb.String()); err != nil {
		return fmt.Errorf("viewer: write frame: %w", err)
	}
	return nil
}

// Frame renders the current map and info panel.
func (a *Animated) Frame() string {
	onPath := make(map[gridmap.Point]struct{}, len(a.path))
	for _, p := range a.path {
		onPath[p] = struct{}{}
	}

	var sb strings.Builder
	for y := 0; y < a.m.Height(); y++ {
		for x := 0; x < a.m.Width(); x++ {
			p := gridmap.Point{X: x, Y: y}
			_, path := onPath[p]
			_, seen := a.visited[p]
			switch {
			case p == a.m.Start():
				sb.WriteRune(gridmap.Start)
			case p == a.m.Goal():
				sb.WriteRune(gridmap.Goal)
			case path:
				sb.WriteRune(gridmap.PathMark)
			case p == a.current && !a.solved:
				sb.WriteRune(CurrentMark)
			case seen:
				sb.WriteRune(VisitedMark)
			default:
				sb.WriteRune(a.m.At(p))
			}
		}
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "Explored position: %v\n", a.current)
	fmt.Fprintf(&sb, "Time: %v\n", a.elapsed.Round(time.Millisecond))
	fmt.Fprintf(&sb, "Cost: %g\n", a.currentCost)
	fmt.Fprintf(&sb, "Expanded: %d\n", a.expanded)
	fmt.Fprintf(&sb, "Visited: %d\n", a.visits)
	fmt.Fprintf(&sb, "Max list size: %d\n", a.maxFrontier)
	if a.solved {
		fmt.Fprintf(&sb, "Solution length: %d\n", len(a.path))
		fmt.Fprintf(&sb, "Solution cost: %g\n", a.pathCost)
		fmt.Fprintf(&sb, "Path: %s\n", truncate(strings.Join(a.actions, " > "), maxPathText))
	} else {
		sb.WriteString("Solution length: -\nSolution cost: -\nPath: -\n")
	}
	fmt.Fprintf(&sb, "Initial position: %v\n", a.m.Start())
	fmt.Fprintf(&sb, "Goal position: %v\n", a.m.Goal())
	fmt.Fprintf(&sb, "Status: %s\n", a.status())
	return sb.String()
}

func (a *Animated) status() string {
	switch {
	case a.solved:
		return "goal found"
	case a.exhausted:
		return "no solution"
	}
	return "searching"
}

// truncate cuts s to limit runes, ending in "..." when shortened.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
