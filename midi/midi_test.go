package midi

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/harmonia/model"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func pitches(names ...string) []pitch.Pitch {
	res := make([]pitch.Pitch, len(names))
	for i, name := range names {
		res[i] = pitch.MustParse(name)
	}
	return res
}

func TestWriteThenReadChords(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "nested", "cadence.mid")

	groups := [][]pitch.Pitch{
		pitches("C4", "E4", "G4"),
		pitches("F4", "A4", "C5"),
		pitches("G3", "B3", "D4", "F4"),
	}
	require.NoError(t, WritePitches(path, groups, WriteOptions{}))

	events, chords, err := ReadChords(path)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Len(t, chords, 3)

	assert.Equal(model.Notes{60, 64, 67}, events[0].Notes)
	assert.Equal(uint64(0), events[0].Ticks)
	assert.True(events[0].FormedByNoteOn)
	assert.Equal(uint32(500), events[1].Offset)

	var names []string
	for _, c := range chords {
		names = append(names, c.Name())
	}
	assert.Equal([]string{"C", "F", "G7"}, names)
}

func TestRestsAndSequentialNotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.mid")
	groups := append(Sequential(pitches("C4", "D4")), nil, pitches("E4"))
	require.NoError(t, WritePitches(path, groups, WriteOptions{TicksPerNote: 480}))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	events := GetChords(s)
	require.Len(t, events, 3)
	assert.Equal(t, model.Notes{62}, events[1].Notes)
	assert.Equal(t, uint64(480), events[1].Ticks)
	assert.Equal(t, uint64(1440), events[2].Ticks)
}

func TestOutOfRange(t *testing.T) {
	_, err := Build([][]pitch.Pitch{pitches("C-2")}, WriteOptions{})
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestReadMidiFileErrors(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.mid")
	require.NoError(t, os.WriteFile(path, []byte("not a midi file"), 0o644))
	_, err = ReadMidiFile(path)
	assert.Error(t, err)
}

func TestExcerpt(t *testing.T) {
	s, err := Build(Sequential(pitches("C4", "D4", "E4")), WriteOptions{})
	require.NoError(t, err)

	ex := Excerpt(s, 960, 2)
	require.Len(t, ex.Tracks, 1)

	var notes int
	var first uint8
	for _, evt := range ex.Tracks[0] {
		var ch, key, vel uint8
		if evt.Message.Is(gomidi.NoteOnMsg) || evt.Message.Is(gomidi.NoteOffMsg) {
			if notes == 0 {
				evt.Message.GetNoteOff(&ch, &key, &vel)
				first = key
			}
			notes++
		}
	}
	assert.Equal(t, 2, notes)
	assert.Equal(t, uint8(60), first)
}

func countNotes(track []smf.Event) int {
	var n int
	for _, evt := range track {
		if evt.Message.Is(gomidi.NoteOnMsg) || evt.Message.Is(gomidi.NoteOffMsg) {
			n++
		}
	}
	return n
}

func TestExcerptNoteLimit(t *testing.T) {
	s, err := Build(Sequential(pitches("C4", "D4", "E4")), WriteOptions{})
	require.NoError(t, err)

	cases := map[string]struct {
		maxNotes int
		want     int
	}{
		"none":     {0, 0},
		"negative": {-1, 0},
		"one":      {1, 1},
		"all":      {6, 6},
		"more":     {100, 6},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			ex := Excerpt(s, 0, c.maxNotes)
			require.Len(t, ex.Tracks, 1)
			assert.Equal(t, c.want, countNotes(ex.Tracks[0]))

			var ends int
			for _, evt := range ex.Tracks[0] {
				if evt.Message.Is(smf.MetaEndOfTrackMsg) {
					ends++
				}
			}
			assert.Equal(t, 1, ends)
		})
	}
}

func TestCreateChordKey(t *testing.T) {
	assert.Equal(t, "60-64-67", CreateChordKey(model.Notes{67, 60, 64}))
	assert.Equal(t, "", CreateChordKey(nil))
}

func TestDefaultFilename(t *testing.T) {
	t.Setenv("HARMONIA_MIDI_OUT_DIR", "exports")
	name := DefaultFilename()
	assert.Equal(t, "exports", filepath.Dir(name))
	assert.True(t, strings.HasSuffix(name, ".mid"))
	assert.NotEqual(t, name, DefaultFilename())
}
