package experiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridwalk/gridmap"
	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/search"
	"github.com/katalvlaran/gridwalk/viewer"
)

// ObserverFactory builds a per-run observer for map m.
type ObserverFactory func(m *gridmap.Map) viewer.GridObserver

// aborter is implemented by observers holding state that must be closed
// when a run fails before its final event.
type aborter interface {
	Abort(err error)
}

// RunResult is the outcome of one Run.
type RunResult struct {
	ID       string
	Run      Run
	Result   *search.Result[puzzle.State, puzzle.Action]
	Row      Row
	Report   string
	Observer viewer.GridObserver // the named per-run observer
}

// CaseResult collects the outcomes of every run of a case, in run order.
type CaseResult struct {
	Case Case
	Map  *gridmap.Map
	Runs []RunResult
}

// Rows returns the metrics table rows of r.
func (r *CaseResult) Rows() []Row {
	rows := make([]Row, len(r.Runs))
	for i, run := range r.Runs {
		rows[i] = run.Row
	}
	return rows
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for run lifecycle records. Nil is ignored.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOutput sets where reports and tables are written. Nil discards them.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		if w == nil {
			w = io.Discard
		}
		r.out = w
	}
}

// WithObserverName selects the registered viewer built fresh for every run.
// An empty name disables it.
func WithObserverName(name string) RunnerOption {
	return func(r *Runner) { r.observerName = name }
}

// WithObserver adds an observer shared by all runs, such as metrics or
// tracing. Nil is ignored.
func WithObserver(o viewer.GridObserver) RunnerOption {
	return func(r *Runner) {
		if o != nil {
			r.shared = append(r.shared, o)
		}
	}
}

// WithObserverFactory adds an observer built fresh for every run.
func WithObserverFactory(f ObserverFactory) RunnerOption {
	return func(r *Runner) {
		if f != nil {
			r.factories = append(r.factories, f)
		}
	}
}

// WithSearchOptions appends options passed to every search.
func WithSearchOptions(opts ...search.Option) RunnerOption {
	return func(r *Runner) { r.searchOpts = append(r.searchOpts, opts...) }
}

// Runner executes experiment cases.
type Runner struct {
	logger       *slog.Logger
	out          io.Writer
	observerName string
	shared       []viewer.GridObserver
	factories    []ObserverFactory
	searchOpts   []search.Option
}

// NewRunner returns a Runner writing to io.Discard with the default logger
// and the "stats" viewer.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:       slog.Default(),
		out:          io.Discard,
		observerName: defaultObserver,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunCase runs every run of c on m, writing a report per run and the metrics
// table at the end. On error it returns the runs completed so far.
func (r *Runner) RunCase(ctx context.Context, c Case, m *gridmap.Map) (*CaseResult, error) {
	if m == nil {
		return nil, puzzle.ErrNilMap
	}
	if len(c.Runs) == 0 {
		return nil, ErrNoRuns
	}

	out := &CaseResult{Case: c, Map: m}
	fmt.Fprintf(r.out, "=== Case %d ===\n", c.Number)
	for _, run := range c.Runs {
		rr, err := r.runOne(ctx, c, m, run)
		if err != nil {
			return out, err
		}
		out.Runs = append(out.Runs, *rr)
		fmt.Fprintf(r.out, "--- %s ---\n%s\n", run.Label(), rr.Report)
	}
	fmt.Fprint(r.out, Table(out.Rows()))
	return out, nil
}

func (r *Runner) runOne(ctx context.Context, c Case, m *gridmap.Map, run Run) (*RunResult, error) {
	problem, err := puzzle.NewProblem(m, c.Costs, run.Heuristic)
	if err != nil {
		return nil, err
	}

	observers := make([]viewer.GridObserver, 0, 1+len(r.factories)+len(r.shared))
	var named viewer.GridObserver
	if r.observerName != "" {
		named, err = viewer.Get(r.observerName)
		if err != nil {
			return nil, err
		}
		observers = append(observers, named)
	}
	for _, f := range r.factories {
		observers = append(observers, f(m))
	}
	observers = append(observers, r.shared...)

	id := uuid.Must(uuid.NewV7()).String()
	logger := r.logger.With(
		slog.String("run_id", id),
		slog.Int("case", c.Number),
		slog.String("algorithm", run.Label()),
	)
	logger.InfoContext(ctx, "run started")

	opts := append([]search.Option{search.WithContext(ctx)}, r.searchOpts...)
	started := time.Now()
	res, err := problem.Solve(run.Strategy, viewer.NewMulti(observers...), opts...)
	if err != nil {
		for _, o := range r.shared {
			if a, ok := o.(aborter); ok {
				a.Abort(err)
			}
		}
		logger.ErrorContext(ctx, "run failed", slog.Any("error", err))
		return nil, fmt.Errorf("run %s: %w", run.Label(), err)
	}

	logger.InfoContext(ctx, "run finished",
		slog.Bool("found", res.Found),
		slog.Float64("cost", res.Cost()),
		slog.Int("expanded", res.Stats.Expanded),
		slog.Duration("elapsed", time.Since(started)),
	)
	return &RunResult{
		ID:       id,
		Run:      run,
		Result:   res,
		Row:      ExtractRow(run, c.Costs, res),
		Report:   Report(problem, res),
		Observer: named,
	}, nil
}

// RunConfig resolves the map and case of cfg and runs it. cfg.Observer
// replaces the runner's named viewer, cfg.Animate adds an animated viewer
// drawing to the runner's output, and cfg.TreeSearch disables duplicate
// detection for every run.
func (r *Runner) RunConfig(ctx context.Context, cfg *Config) (*CaseResult, error) {
	m, err := ResolveMap(cfg.Map)
	if err != nil {
		return nil, err
	}
	c, err := BuildCase(cfg)
	if err != nil {
		return nil, err
	}

	rc := *r
	rc.searchOpts = r.searchOpts[:len(r.searchOpts):len(r.searchOpts)]
	rc.factories = r.factories[:len(r.factories):len(r.factories)]
	if cfg.Observer != "" {
		rc.observerName = cfg.Observer
	}
	if cfg.TreeSearch {
		rc.searchOpts = append(rc.searchOpts, search.WithGraphSearch(false))
	}
	if cfg.Animate.Enabled {
		rc.factories = append(rc.factories, AnimatedFactory(r.out, cfg.Animate))
	}
	return rc.RunCase(ctx, c, m)
}

// AnimatedFactory returns a factory building an animated viewer that draws
// into w with the delay and screen clearing of cfg.
func AnimatedFactory(w io.Writer, cfg AnimateConfig) ObserverFactory {
	return func(m *gridmap.Map) viewer.GridObserver {
		return viewer.NewAnimated(w, m,
			viewer.WithDelay(time.Duration(max(cfg.DelayMS, 0))*time.Millisecond),
			viewer.WithClearScreen(cfg.Clear),
		)
	}
}
