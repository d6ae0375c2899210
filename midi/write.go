package midi

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonia/constants"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrOutOfRange = errors.New("pitch outside the MIDI range")

type WriteOptions struct {
	Velocity     uint8
	TicksPerNote uint32
	BPM          float64
	Channel      uint8
}

func (o WriteOptions) withDefaults() WriteOptions {
	if o.Velocity == 0 {
		o.Velocity = constants.Velocity
	}
	if o.TicksPerNote == 0 {
		o.TicksPerNote = constants.TicksPerQuarter
	}
	if o.BPM <= 0 {
		o.BPM = 120
	}
	return o
}

// DefaultFilename is a fresh file name inside the export directory.
func DefaultFilename() string {
	return FilenameIn(constants.GetOutDir())
}

func FilenameIn(dir string) string {
	return filepath.Join(dir, uuid.New().String()+".mid")
}

func key(p pitch.Pitch) (uint8, error) {
	n := p.MIDI()
	if n < 0 || n > 127 {
		return 0, errors.Wrapf(ErrOutOfRange, "%s is MIDI %d", p, n)
	}
	return uint8(n), nil
}

// Build lays out groups one after another, each sounding for
// TicksPerNote ticks with all of its pitches together.
func Build(groups [][]pitch.Pitch, opts WriteOptions) (*smf.SMF, error) {
	opts = opts.withDefaults()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTempo(opts.BPM))
	var rest uint32
	for _, group := range groups {
		keys := make([]uint8, 0, len(group))
		for _, p := range group {
			k, err := key(p)
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
		}
		if len(keys) == 0 {
			rest += opts.TicksPerNote
			continue
		}

		for i, k := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = rest
			}
			track.Add(delta, gomidi.NoteOn(opts.Channel, k, opts.Velocity))
		}
		for i, k := range keys {
			delta := uint32(0)
			if i == 0 {
				delta = opts.TicksPerNote
			}
			track.Add(delta, gomidi.NoteOff(opts.Channel, k))
		}
		rest = 0
	}
	track.Close(rest)

	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "adding track")
	}
	return s, nil
}

// WritePitches writes groups to path as a single-track file, creating the
// directory when needed.
func WritePitches(path string, groups [][]pitch.Pitch, opts WriteOptions) error {
	s, err := Build(groups, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating export directory")
		}
	}
	return errors.Wrap(s.WriteFile(path), "writing midi file")
}

// Sequential turns pitches into single-note groups, played one by one.
func Sequential(pitches []pitch.Pitch) [][]pitch.Pitch {
	groups := make([][]pitch.Pitch, len(pitches))
	for i, p := range pitches {
		groups[i] = []pitch.Pitch{p}
	}
	return groups
}
