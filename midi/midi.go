// Package midi reads and writes standard MIDI files: it extracts the note
// sets sounding together in a file and exports pitches and chords.
package midi

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// smf panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("parsing midi file %s: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}

func reduce(s *smf.SMF) []model.ReducedEvent {
	var events []model.ReducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, model.ReducedEvent{
					Ticks:     uint64(absTicks),
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, model.ReducedEvent{
					Ticks:     uint64(absTicks),
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// earlier first, note offs before note ons at the same time
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Ticks != events[j].Ticks {
			return events[i].Ticks < events[j].Ticks
		}
		return events[i].IsNoteOff && !events[j].IsNoteOff
	})
	return events
}

func snapshot(pressed map[uint8]bool) model.Notes {
	notes := make(model.Notes, 0, len(pressed))
	for note := range pressed {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })
	return notes
}

// GetChords returns every distinct set of held notes in s, in time order.
// Sets changing at the same tick collapse into the last one.
func GetChords(s *smf.SMF) []model.ChordEvent {
	var chords []model.ChordEvent
	pressed := make(map[uint8]bool)
	for _, evt := range reduce(s) {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}

		c := model.ChordEvent{
			Ticks: evt.Ticks,
			// stored in millis, accurate enough and fits in 32 bits
			Offset:         uint32(evt.Offset / 1000),
			Notes:          snapshot(pressed),
			FormedByNoteOn: !evt.IsNoteOff,
		}
		if n := len(chords); n > 0 && chords[n-1].Ticks == c.Ticks {
			chords[n-1] = c
		} else {
			chords = append(chords, c)
		}
	}

	res := chords[:0]
	for _, c := range chords {
		if len(c.Notes) > 0 {
			res = append(res, c)
		}
	}
	return res
}

// ReadChords reads the file at path and names every chord in it.
func ReadChords(path string) ([]model.ChordEvent, []*chord.Chord, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return nil, nil, err
	}
	events := GetChords(s)
	chords := make([]*chord.Chord, len(events))
	for i, evt := range events {
		keys := make([]int, len(evt.Notes))
		for j, n := range evt.Notes {
			keys[j] = int(n)
		}
		c, err := chord.FromKeys(keys)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "chord at tick %d", evt.Ticks)
		}
		chords[i] = c
	}
	return events, chords, nil
}

// CreateChordKey joins sorted notes with dashes, e.g. "60-64-67".
func CreateChordKey(notes model.Notes) string {
	sorted := append(model.Notes(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}
