package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverrides(t *testing.T) {
	physics, body := Physics, Body
	t.Cleanup(func() { Physics, Body = physics, body })

	err := ApplyOverrides([]byte(`
physics:
  max_step: 8ms
  solid_window: 300
body:
  elasticity: 0.5
`))
	require.NoError(t, err)

	assert.Equal(t, 8*time.Millisecond, Physics.MaxStep)
	assert.Equal(t, 300.0, Physics.SolidWindow)
	assert.Equal(t, 0.5, Body.Elasticity)

	// Untouched fields keep their defaults.
	assert.Equal(t, physics.DynamicWindow, Physics.DynamicWindow)
	assert.Equal(t, body.GroundDrag, Body.GroundDrag)
}

func TestApplyOverrides_InvalidYAML(t *testing.T) {
	physics := Physics
	t.Cleanup(func() { Physics = physics })

	assert.Error(t, ApplyOverrides([]byte("physics: [")))
}

func TestLoadOverrides(t *testing.T) {
	player := Player
	t.Cleanup(func() { Player = player })

	assert.NoError(t, LoadOverrides(""))

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  move_speed: 420\n"), 0o644))
	require.NoError(t, LoadOverrides(path))
	assert.Equal(t, 420.0, Player.MoveSpeed)

	assert.Error(t, LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestMaxStepMS(t *testing.T) {
	assert.InDelta(t, 16.6666667, MaxStepMS(), 1e-6)
}
