package experiment_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/experiment"
	"github.com/katalvlaran/gridwalk/gridmap"
	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/search"
	"github.com/katalvlaran/gridwalk/viewer"
)

// abortRecorder counts events and records Abort calls.
type abortRecorder struct {
	events  int
	aborted error
}

func (a *abortRecorder) Notify(context.Context, viewer.GridEvent) error {
	a.events++
	return nil
}

func (a *abortRecorder) Abort(err error) { a.aborted = err }

func mustCase(t *testing.T, n int) experiment.Case {
	t.Helper()
	c, err := experiment.LookupCase(n)
	require.NoError(t, err)
	return c
}

func TestRunCase_Case1(t *testing.T) {
	var out, logs bytes.Buffer
	r := experiment.NewRunner(
		experiment.WithOutput(&out),
		experiment.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	res, err := r.RunCase(context.Background(), mustCase(t, 1), experiment.DefaultMap())
	require.NoError(t, err)
	require.Len(t, res.Runs, 2)

	bfs, dfs := res.Runs[0], res.Runs[1]
	assert.True(t, bfs.Row.Found)
	assert.Equal(t, 6, bfs.Row.Length)
	assert.Equal(t, 5.0, bfs.Row.Cost)
	assert.Equal(t, 24, bfs.Row.Expanded)
	assert.True(t, bfs.Row.Optimal)

	assert.Equal(t, 22, dfs.Row.Length)
	assert.Equal(t, 21.0, dfs.Row.Cost)
	assert.False(t, dfs.Row.Optimal)

	// the default named observer is a fresh Stats per run
	stats, ok := bfs.Observer.(*viewer.Stats[puzzle.State, puzzle.Action])
	require.True(t, ok)
	assert.True(t, stats.Snapshot().Found)
	assert.NotSame(t, bfs.Observer, dfs.Observer)

	assert.NotEqual(t, bfs.ID, dfs.ID)
	assert.Len(t, bfs.ID, 36)

	assert.Contains(t, out.String(), "=== Case 1 ===")
	assert.Contains(t, out.String(), "--- breadth_first ---")
	assert.Contains(t, out.String(), "Total cost of solution: 21")
	assert.Contains(t, out.String(), "Optimal")
	assert.Contains(t, logs.String(), "run_id="+bfs.ID)
	assert.Contains(t, logs.String(), "run finished")
}

func TestRunCase_Case2AgreesOnOptimum(t *testing.T) {
	r := experiment.NewRunner(experiment.WithObserverName("noop"))
	res, err := r.RunCase(context.Background(), mustCase(t, 2), experiment.DefaultMap())
	require.NoError(t, err)

	rows := res.Rows()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 9.0, row.Cost, row.Algorithm)
	}
	assert.False(t, rows[0].Optimal, "breadth-first with skewed costs")
	assert.Equal(t, 23, rows[1].Expanded)
	assert.Equal(t, 9, rows[2].Expanded)
	assert.Less(t, rows[2].Expanded, rows[1].Expanded)
}

func TestRunCase_Case3Heuristics(t *testing.T) {
	r := experiment.NewRunner(experiment.WithObserverName(""))
	res, err := r.RunCase(context.Background(), mustCase(t, 3), experiment.DefaultMap())
	require.NoError(t, err)

	rows := res.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []int{9, 15, 5}, []int{rows[0].Expanded, rows[1].Expanded, rows[2].Expanded})
	assert.Equal(t, []bool{true, true, false}, []bool{rows[0].Optimal, rows[1].Optimal, rows[2].Optimal})
	for _, row := range rows {
		assert.Equal(t, 9.0, row.Cost, row.Algorithm)
	}
	assert.Nil(t, res.Runs[0].Observer)
}

func TestRunCase_SharedObserverSeesEveryRun(t *testing.T) {
	rec := &abortRecorder{}
	stats := viewer.NewStats[puzzle.State, puzzle.Action]()
	r := experiment.NewRunner(
		experiment.WithObserver(rec),
		experiment.WithObserverFactory(func(*gridmap.Map) viewer.GridObserver { return stats }),
	)
	res, err := r.RunCase(context.Background(), mustCase(t, 2), experiment.DefaultMap())
	require.NoError(t, err)
	require.Len(t, res.Runs, 3)
	assert.Greater(t, rec.events, 0)
	assert.NoError(t, rec.aborted)
	assert.Equal(t, 9, stats.Snapshot().Expanded, "last run was A*")
}

func TestRunCase_ObserverFailureAborts(t *testing.T) {
	boom := errors.New("boom")
	rec := &abortRecorder{}
	failing := search.ObserverFunc[puzzle.State, puzzle.Action](func(_ context.Context, e viewer.GridEvent) error {
		if e.Kind == search.EventNodeChosen {
			return boom
		}
		return nil
	})
	r := experiment.NewRunner(
		experiment.WithObserverFactory(func(*gridmap.Map) viewer.GridObserver { return failing }),
		experiment.WithObserver(rec),
	)
	res, err := r.RunCase(context.Background(), mustCase(t, 1), experiment.DefaultMap())
	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrObserver)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, res.Runs)
	assert.ErrorIs(t, rec.aborted, boom)
}

func TestRunCase_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := experiment.NewRunner().RunCase(ctx, mustCase(t, 1), experiment.DefaultMap())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCase_InvalidInput(t *testing.T) {
	r := experiment.NewRunner()
	_, err := r.RunCase(context.Background(), mustCase(t, 1), nil)
	assert.ErrorIs(t, err, puzzle.ErrNilMap)

	_, err = r.RunCase(context.Background(), experiment.Case{Number: 1}, experiment.DefaultMap())
	assert.ErrorIs(t, err, experiment.ErrNoRuns)

	_, err = experiment.NewRunner(experiment.WithObserverName("nope")).
		RunCase(context.Background(), mustCase(t, 1), experiment.DefaultMap())
	assert.ErrorIs(t, err, viewer.ErrUnknownObserver)
}

func TestRunConfig_TreeSearch(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.Algorithms = []string{"bfs"}
	cfg.Observer = "noop"

	r := experiment.NewRunner()
	graph, err := r.RunConfig(context.Background(), &cfg)
	require.NoError(t, err)

	cfg.TreeSearch = true
	tree, err := r.RunConfig(context.Background(), &cfg)
	require.NoError(t, err)

	assert.Equal(t, 5.0, tree.Runs[0].Row.Cost)
	assert.Greater(t, tree.Runs[0].Row.Expanded, graph.Runs[0].Row.Expanded)
	_, isNoop := tree.Runs[0].Observer.(viewer.Noop[puzzle.State, puzzle.Action])
	assert.True(t, isNoop)
}

func TestRunConfig_Animated(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.Map.ASCII = "#####\n#T P#\n#####"
	cfg.Algorithms = []string{"ucs"}
	cfg.Animate = experiment.AnimateConfig{Enabled: true, DelayMS: -1}

	var out bytes.Buffer
	res, err := experiment.NewRunner(experiment.WithOutput(&out)).RunConfig(context.Background(), &cfg)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Runs[0].Row.Cost)
	assert.Contains(t, out.String(), "#T·P#")
	assert.Contains(t, out.String(), "goal found")
}

func TestRunConfig_Errors(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.Case = 5
	_, err := experiment.NewRunner().RunConfig(context.Background(), &cfg)
	assert.ErrorIs(t, err, experiment.ErrUnknownCase)

	cfg = experiment.DefaultConfig()
	cfg.Map.ASCII = "###\n#T#\n###"
	_, err = experiment.NewRunner().RunConfig(context.Background(), &cfg)
	assert.ErrorIs(t, err, gridmap.ErrMissingGoal)
}
