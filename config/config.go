package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jsphweid/harmonia/constants"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/midi"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Theory struct {
		ConcertPitch   float64 `yaml:"concert_pitch"`
		OctaveIsSimple bool    `yaml:"octave_is_simple"`
		OneAccidental  bool    `yaml:"one_accidental"` // enharmonics without double accidentals
		DefaultOctave  int     `yaml:"default_octave"`
	} `yaml:"theory"`
	Server struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Midi struct {
		InPort       int    `yaml:"in_port"`
		DebounceMs   int    `yaml:"debounce_ms"`
		OutDir       string `yaml:"out_dir"`
		Velocity     uint8  `yaml:"velocity"`
		TicksPerNote uint32 `yaml:"ticks_per_note"`
	} `yaml:"midi"`
}

// Default is the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Theory.ConcertPitch = constants.ConcertPitch
	cfg.Theory.DefaultOctave = constants.DefaultOctave
	cfg.Server.Addr = constants.ServerAddr
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Midi.DebounceMs = constants.DebounceMillis
	cfg.Midi.OutDir = constants.GetOutDir()
	cfg.Midi.Velocity = constants.Velocity
	cfg.Midi.TicksPerNote = constants.TicksPerQuarter
	return &cfg
}

// LoadConfig reads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config
	cfg := Default()
	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, errors.Wrap(err, "reading config")
	default:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", path)
		}
	}

	// 3. Override with Environment Variables if present
	if v := os.Getenv("HARMONIA_CONCERT_PITCH"); v != "" {
		fq, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrap(err, "HARMONIA_CONCERT_PITCH")
		}
		cfg.Theory.ConcertPitch = fq
	}
	if v := os.Getenv("HARMONIA_OCTAVE_IS_SIMPLE"); v != "" {
		simple, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, errors.Wrap(err, "HARMONIA_OCTAVE_IS_SIMPLE")
		}
		cfg.Theory.OctaveIsSimple = simple
	}
	if v := os.Getenv("HARMONIA_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("HARMONIA_MIDI_OUT_DIR"); v != "" {
		cfg.Midi.OutDir = v
	}

	return cfg, nil
}

func (c *Config) Convention() interval.Convention {
	return interval.Convention{OctaveIsSimple: c.Theory.OctaveIsSimple}
}

func (c *Config) WriteOptions() midi.WriteOptions {
	return midi.WriteOptions{
		Velocity:     c.Midi.Velocity,
		TicksPerNote: c.Midi.TicksPerNote,
	}
}
