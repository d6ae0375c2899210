package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmonia/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(constants.ConcertPitch, cfg.Theory.ConcertPitch)
	assert.Equal(constants.DefaultOctave, cfg.Theory.DefaultOctave)
	assert.Equal(constants.ServerAddr, cfg.Server.Addr)
	assert.Equal([]string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(uint8(constants.Velocity), cfg.Midi.Velocity)
	assert.False(cfg.Convention().OctaveIsSimple)
}

func TestYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harmonia.yaml")
	data := []byte(`
theory:
  concert_pitch: 432
  octave_is_simple: true
server:
  addr: ":9000"
  allowed_origins: ["http://localhost:3000"]
midi:
  velocity: 64
  ticks_per_note: 480
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(432.0, cfg.Theory.ConcertPitch)
	assert.True(cfg.Convention().OctaveIsSimple)
	assert.Equal(":9000", cfg.Server.Addr)
	assert.Equal([]string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(constants.DebounceMillis, cfg.Midi.DebounceMs)

	opts := cfg.WriteOptions()
	assert.Equal(uint8(64), opts.Velocity)
	assert.Equal(uint32(480), opts.TicksPerNote)
}

func TestEnvironmentWins(t *testing.T) {
	t.Setenv("HARMONIA_CONCERT_PITCH", "415")
	t.Setenv("HARMONIA_OCTAVE_IS_SIMPLE", "true")
	t.Setenv("HARMONIA_ADDR", ":7070")
	t.Setenv("HARMONIA_MIDI_OUT_DIR", "/tmp/exports")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(415.0, cfg.Theory.ConcertPitch)
	assert.True(cfg.Theory.OctaveIsSimple)
	assert.Equal(":7070", cfg.Server.Addr)
	assert.Equal("/tmp/exports", cfg.Midi.OutDir)
}

func TestBadValues(t *testing.T) {
	t.Setenv("HARMONIA_CONCERT_PITCH", "loud")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	t.Setenv("HARMONIA_CONCERT_PITCH", "")
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theory: [unclosed"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
