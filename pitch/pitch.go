// Package pitch implements pitches as points in the (diatonic steps,
// semitones) space, anchored at A4 = (0, 0). Every readout is derived from
// the coordinate; nothing else is stored.
package pitch

import (
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/constants"
	"github.com/jsphweid/harmonia/coord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/jsphweid/harmonia/notation"
	"github.com/jsphweid/harmonia/util"
)

type Pitch struct {
	Coord coord.Coord
}

func FromCoord(c coord.Coord) Pitch {
	return Pitch{Coord: c}
}

func New(steps, semitones int) Pitch {
	return Pitch{Coord: coord.New(steps, semitones)}
}

// Parse reads scientific ("Eb4") or Helmholtz ("eb'") notation.
func Parse(text string) (Pitch, error) {
	c, err := notation.Parse(text)
	if err != nil {
		return Pitch{}, err
	}
	return Pitch{Coord: c}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(text string) Pitch {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// FromKey spells piano key number key (A4 = 49), preferring the spelling
// whose letter lies nearest the equal-tempered position.
func FromKey(key int) Pitch {
	semitones := key - knowledge.A4Key
	// round half up, semitones*7/12
	steps := util.FloorDiv(7*semitones+6, 12)
	return New(steps, semitones)
}

// FromMIDI spells a MIDI note number. The range is not checked.
func FromMIDI(note int) Pitch {
	return FromKey(note - 20)
}

// FromFrequency returns the pitch of the nearest piano key and the
// deviation from it in cents. A concert pitch <= 0 means 440 Hz.
func FromFrequency(fq, concertPitch float64) (Pitch, float64) {
	if concertPitch <= 0 {
		concertPitch = constants.ConcertPitch
	}
	key := int(math.Floor(float64(knowledge.A4Key) + 12*math.Log2(fq/concertPitch) + 0.5))
	original := concertPitch * math.Pow(2, float64(key-knowledge.A4Key)/12)
	cents := 1200 * math.Log2(fq/original)
	return FromKey(key), cents
}

func (p Pitch) Octave() int {
	return p.Coord.Octave()
}

// Name is the lower-case letter name without accidental.
func (p Pitch) Name() string {
	return p.Coord.LetterName()
}

func (p Pitch) AccidentalValue() int {
	return p.Coord.AccidentalValue()
}

func (p Pitch) Accidental() string {
	v := p.AccidentalValue()
	if idx := v + 2; idx >= 0 && idx < len(knowledge.Accidentals) {
		return knowledge.Accidentals[idx]
	}
	if v < 0 {
		return strings.Repeat("b", -v)
	}
	return strings.Repeat("x", v/2) + strings.Repeat("#", v%2)
}

// Key is the piano key number, A4 = 49.
func (p Pitch) Key() int {
	return p.Coord.Absolute().Semitones - 8
}

// WhiteKey counts white keys only, A4 = 29.
func (p Pitch) WhiteKey() int {
	return p.Coord.Absolute().Steps - 4
}

func (p Pitch) MIDI() int {
	return p.Key() + 20
}

// Frequency in Hz. A concert pitch <= 0 means 440 Hz.
func (p Pitch) Frequency(concertPitch float64) float64 {
	if concertPitch <= 0 {
		concertPitch = constants.ConcertPitch
	}
	return concertPitch * math.Pow(2, float64(p.Coord.Semitones)/12)
}

func (p Pitch) Chroma() int {
	return p.Coord.Chroma()
}

// Interval returns the interval leading from p to other.
func (p Pitch) Interval(other Pitch) interval.Interval {
	return interval.Between(p.Coord, other.Coord)
}

// Transpose returns the pitch i away from p.
func (p Pitch) Transpose(i interval.Interval) Pitch {
	return Pitch{Coord: p.Coord.Add(i.Coord)}
}

// Class is the spelled pitch class without octave, e.g. "C#".
func (p Pitch) Class() string {
	return strings.ToUpper(p.Name()) + p.Accidental()
}

func (p Pitch) Scientific() string {
	return p.Class() + strconv.Itoa(p.Octave())
}

// Helmholtz spells the pitch as in "C,", "c#", "a'".
func (p Pitch) Helmholtz() string {
	octave := p.Octave()
	if octave < 3 {
		marks := 0
		if octave < 2 {
			marks = 2 - octave
		}
		return strings.ToUpper(p.Name()) + p.Accidental() + strings.Repeat(",", marks)
	}
	return p.Name() + p.Accidental() + strings.Repeat("'", octave-3)
}

func (p Pitch) String() string {
	return p.Scientific()
}

func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.Scientific()), nil
}

func (p *Pitch) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
