// Package scale instantiates named interval templates over a tonic.
package scale

import (
	"strings"

	"github.com/jsphweid/harmonia/coord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
)

var ErrUnknownScale = errors.New("unknown scale")

var templates = map[string][]string{
	"major":             {"P1", "M2", "M3", "P4", "P5", "M6", "M7"},
	"ionian":            {"P1", "M2", "M3", "P4", "P5", "M6", "M7"},
	"dorian":            {"P1", "M2", "m3", "P4", "P5", "M6", "m7"},
	"phrygian":          {"P1", "m2", "m3", "P4", "P5", "m6", "m7"},
	"lydian":            {"P1", "M2", "M3", "A4", "P5", "M6", "M7"},
	"mixolydian":        {"P1", "M2", "M3", "P4", "P5", "M6", "m7"},
	"minor":             {"P1", "M2", "m3", "P4", "P5", "m6", "m7"},
	"aeolian":           {"P1", "M2", "m3", "P4", "P5", "m6", "m7"},
	"locrian":           {"P1", "m2", "m3", "P4", "d5", "m6", "m7"},
	"majorpentatonic":   {"P1", "M2", "M3", "P5", "M6"},
	"minorpentatonic":   {"P1", "m3", "P4", "P5", "m7"},
	"chromatic":         {"P1", "m2", "M2", "m3", "M3", "P4", "A4", "P5", "m6", "M6", "m7", "M7"},
	"harmonicchromatic": {"P1", "m2", "M2", "m3", "M3", "P4", "A4", "P5", "m6", "M6", "m7", "M7"},
	"harmonicminor":     {"P1", "M2", "m3", "P4", "P5", "m6", "M7"},
	"melodicminor":      {"P1", "M2", "m3", "P4", "P5", "M6", "M7"},
	"blues":             {"P1", "m3", "P4", "A4", "P5", "m7"},
	"flamenco":          {"P1", "m2", "M3", "P4", "P5", "m6", "m7"},
	"doubleharmonic":    {"P1", "m2", "M3", "P4", "P5", "m6", "M7"},
	"wholetone":         {"P1", "M2", "M3", "A4", "A5", "A6"},
}

type Scale struct {
	tonic     pitch.Pitch
	name      string
	intervals []interval.Interval
}

// New builds the scale called name over tonic. Names are case-insensitive.
func New(tonic pitch.Pitch, name string) (*Scale, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	template, ok := templates[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScale, "%q", name)
	}

	intervals := make([]interval.Interval, len(template))
	for i, step := range template {
		intervals[i] = interval.MustParse(step)
	}
	return &Scale{tonic: tonic, name: name, intervals: intervals}, nil
}

// Parse is New with the tonic given as text.
func Parse(tonic, name string) (*Scale, error) {
	p, err := pitch.Parse(tonic)
	if err != nil {
		return nil, err
	}
	return New(p, name)
}

// Names lists the known templates in alphabetical order.
func Names() []string {
	return util.GetKeys(templates)
}

func (s *Scale) Tonic() pitch.Pitch {
	return s.tonic
}

func (s *Scale) Name() string {
	return s.name
}

// Intervals returns a copy of the template, tonic first.
func (s *Scale) Intervals() []interval.Interval {
	return append([]interval.Interval(nil), s.intervals...)
}

func (s *Scale) Notes() []pitch.Pitch {
	notes := make([]pitch.Pitch, len(s.intervals))
	for i, step := range s.intervals {
		notes[i] = s.tonic.Transpose(step)
	}
	return notes
}

// Simple spells the notes without octave, lower case ("ab", "bbb").
func (s *Scale) Simple() []string {
	notes := s.Notes()
	res := make([]string, len(notes))
	for i, note := range notes {
		res[i] = note.Name() + note.Accidental()
	}
	return res
}

// Get returns the 1-based degree n. Degrees past the template continue in
// the octaves above; zero and negative degrees continue below, so 0 is the
// last degree an octave down.
func (s *Scale) Get(n int) pitch.Pitch {
	size := len(s.intervals)
	idx := util.Mod(n-1, size)
	octaves := util.FloorDiv(n-1, size)
	step := s.intervals[idx].Coord.Add(coord.New(7, 12).Scale(octaves))
	return s.tonic.Transpose(interval.FromCoord(step))
}

// GetNamed resolves degree words like "third" or "ninth".
func (s *Scale) GetNamed(word string) (pitch.Pitch, error) {
	n, err := knowledge.DegreeNumber(word)
	if err != nil {
		return pitch.Pitch{}, err
	}
	return s.Get(n), nil
}

// Transpose moves the tonic by i in place and returns s.
func (s *Scale) Transpose(i interval.Interval) *Scale {
	s.tonic = s.tonic.Transpose(i)
	return s
}

// Interval returns a new scale of the same template, i above this one.
func (s *Scale) Interval(i interval.Interval) *Scale {
	return &Scale{tonic: s.tonic.Transpose(i), name: s.name, intervals: s.Intervals()}
}

// Contains reports whether p, in any octave, is spelled as a member of s.
func (s *Scale) Contains(p pitch.Pitch) bool {
	return p.ScaleDegree(s) > 0
}

func (s *Scale) String() string {
	return s.tonic.Class() + " " + s.name
}
