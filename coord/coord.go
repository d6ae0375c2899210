// Package coord is the two-counter vector space underneath pitches and
// intervals. Steps count diatonic letter steps and Semitones count chromatic
// semitones, both from A4. Equal Semitones means the same sounding pitch;
// Steps congruent mod 7 means the same letter.
package coord

import (
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/jsphweid/harmonia/util"
)

type Coord struct {
	Steps     int
	Semitones int
}

// Sharp raises a coordinate by one semitone without changing its letter.
var Sharp = Coord{Steps: 0, Semitones: 1}

// A4 is the offset that turns an A4-relative coordinate into one counted
// from C0.
var A4 = Coord{Steps: knowledge.A4.Steps, Semitones: knowledge.A4.Semitones}

func New(steps, semitones int) Coord {
	return Coord{Steps: steps, Semitones: semitones}
}

func (c Coord) Add(o Coord) Coord {
	return Coord{c.Steps + o.Steps, c.Semitones + o.Semitones}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{c.Steps - o.Steps, c.Semitones - o.Semitones}
}

func (c Coord) Scale(k int) Coord {
	return Coord{c.Steps * k, c.Semitones * k}
}

func (c Coord) Neg() Coord {
	return c.Scale(-1)
}

// Absolute re-anchors an A4-relative coordinate at C0.
func (c Coord) Absolute() Coord {
	return c.Add(A4)
}

// The readouts below all take A4-relative coordinates.

func (c Coord) Octave() int {
	return util.FloorDiv(c.Absolute().Steps, 7)
}

// Letter is the index into knowledge.Tones.
func (c Coord) Letter() int {
	return util.Mod(c.Absolute().Steps, 7)
}

func (c Coord) LetterName() string {
	return knowledge.Tones[c.Letter()]
}

// AccidentalValue is the semitone distance from the natural letter in the
// same octave: -1 for a flat, 2 for a double sharp.
func (c Coord) AccidentalValue() int {
	return c.Absolute().Semitones - (c.Octave()*12 + knowledge.Naturals[c.Letter()])
}

// Chroma is the pitch class, 0 for C through 11 for B.
func (c Coord) Chroma() int {
	return util.Mod(c.Absolute().Semitones, 12)
}
