package constants

import "os"

// GetConfigPath is where the CLI looks for its YAML config.
func GetConfigPath() string {
	path := os.Getenv("HARMONIA_CONFIG")
	if path != "" {
		return path
	}
	return "harmonia.yaml"
}

// GetOutDir is the default directory for exported MIDI files.
func GetOutDir() string {
	path := os.Getenv("HARMONIA_MIDI_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

const ConcertPitch = 440.0

// DefaultOctave places chord roots given without an octave.
const DefaultOctave = 4

const ServerAddr = ":8080"

const DebounceMillis = 60

const Velocity = 90

// TicksPerQuarter is the SMF resolution used for exports.
const TicksPerQuarter = 960
