package experiment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/experiment"
	"github.com/katalvlaran/gridwalk/gridmap"
	"github.com/katalvlaran/gridwalk/mapgen"
)

func TestDefaultMap(t *testing.T) {
	m := experiment.DefaultMap()
	assert.Equal(t, 9, m.Width())
	assert.Equal(t, 7, m.Height())
	assert.Equal(t, gridmap.Point{X: 4, Y: 4}, m.Start())
	assert.Equal(t, gridmap.Point{X: 2, Y: 1}, m.Goal())
	assert.True(t, m.Solvable())
}

func TestResolveMap_Precedence(t *testing.T) {
	const tiny = "#####\n#T P#\n#####"
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("######\n#P  T#\n######\n"), 0o600))

	m, err := experiment.ResolveMap(experiment.MapConfig{ASCII: tiny, File: path, Random: true})
	require.NoError(t, err)
	assert.Equal(t, tiny, m.String(), "inline ASCII wins")

	m, err = experiment.ResolveMap(experiment.MapConfig{File: path, Random: true})
	require.NoError(t, err)
	assert.Equal(t, 6, m.Width(), "file beats random")

	m, err = experiment.ResolveMap(experiment.MapConfig{})
	require.NoError(t, err)
	assert.Equal(t, experiment.DefaultMap().String(), m.String())
}

func TestResolveMap_Random(t *testing.T) {
	cfg := experiment.MapConfig{Random: true, Width: 10, Height: 8, WallProb: 0.25, Seed: 7}
	a, err := experiment.ResolveMap(cfg)
	require.NoError(t, err)
	b, err := experiment.ResolveMap(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String(), "same seed, same map")
	assert.Equal(t, 10, a.Width())
	assert.True(t, a.Solvable())

	_, err = experiment.ResolveMap(experiment.MapConfig{Random: true, Width: 2, Height: 8})
	assert.ErrorIs(t, err, mapgen.ErrTooSmall)
}

func TestResolveMap_Errors(t *testing.T) {
	_, err := experiment.ResolveMap(experiment.MapConfig{ASCII: "#####\n#   #\n#####"})
	assert.ErrorIs(t, err, gridmap.ErrMissingStart)

	_, err = experiment.ResolveMap(experiment.MapConfig{File: filepath.Join(t.TempDir(), "none.txt")})
	assert.Error(t, err)
}
