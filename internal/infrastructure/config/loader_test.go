package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Display.CellSize)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, "Blockfall", cfg.Display.Title)
	assert.Equal(t, 170*time.Millisecond, cfg.Input.RepeatDelay())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "../../../cmd/game/configs", loader.BasePath())
}

func TestLoader_LoadGame_DefaultsFillMissingKeys(t *testing.T) {
	fsys := fstest.MapFS{
		ConfigFile: {Data: []byte(`{"display": {"cellSize": 24}, "session": {"seed": 77}}`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadGame()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 24, cfg.Display.CellSize)
	assert.Equal(t, def.Display.Framerate, cfg.Display.Framerate)
	assert.Equal(t, def.Display.Scale, cfg.Display.Scale)
	assert.Equal(t, def.Input, cfg.Input)
	assert.Equal(t, def.Logging, cfg.Logging)
	assert.Equal(t, uint64(77), cfg.Session.Seed)
	assert.Equal(t, "", cfg.Session.RecordDir)
}

func TestLoader_LoadGame_EnvOverride(t *testing.T) {
	t.Setenv("BLOCKFALL_LOGGING_LEVEL", "debug")
	t.Setenv("BLOCKFALL_SESSION_SEED", "5")

	fsys := fstest.MapFS{
		ConfigFile: {Data: []byte(`{"logging": {"level": "warn"}}`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, uint64(5), cfg.Session.Seed)
}

func TestLoader_LoadGame_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{"missing file", fstest.MapFS{}, "failed to read game.json"},
		{"bad json", fstest.MapFS{ConfigFile: {Data: []byte(`{"display":`)}}, "failed to parse game.json"},
		{"invalid values", fstest.MapFS{ConfigFile: {Data: []byte(`{"display": {"cellSize": 0}}`)}}, "display.cellSize must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadGame()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGameConfig_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.Display.Framerate = 0
	cfg.Display.Scale = -1
	cfg.Input.RepeatRateMs = -5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.framerate")
	assert.Contains(t, err.Error(), "display.scale")
	assert.Contains(t, err.Error(), "input timings")
}

func TestInputConfig_Durations(t *testing.T) {
	in := InputConfig{RepeatDelayMs: 200, RepeatRateMs: 40, SoftDropRateMs: 30}

	assert.Equal(t, 200*time.Millisecond, in.RepeatDelay())
	assert.Equal(t, 40*time.Millisecond, in.RepeatRate())
	assert.Equal(t, 30*time.Millisecond, in.SoftDropRate())
}
