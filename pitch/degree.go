package pitch

import (
	"strings"

	"github.com/jsphweid/harmonia/coord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/jsphweid/harmonia/util"
)

// Tonal is anything with a tonic and a template of intervals above it.
// *scale.Scale implements it.
type Tonal interface {
	Tonic() Pitch
	Intervals() []interval.Interval
}

var enharmonicProbes = []interval.Interval{
	interval.MustParse("m3"),
	interval.MustParse("m2"),
	interval.MustParse("m-2"),
	interval.MustParse("m-3"),
}

// Enharmonics returns differently spelled pitches sounding the same as p.
// Only the letters a second or third away are probed, so at most four
// spellings come back. With oneAccidental set, double sharps and double
// flats are left out.
func (p Pitch) Enharmonics(oneAccidental bool) []Pitch {
	key := p.Key()
	limit := 3
	if oneAccidental {
		limit = 2
	}

	var res []Pitch
	for _, probe := range enharmonicProbes {
		candidate := p.Transpose(probe)
		acc := candidate.AccidentalValue()
		diff := key - (candidate.Key() - acc)
		if diff < limit && diff > -limit {
			candidate.Coord = candidate.Coord.Add(coord.Sharp.Scale(diff - acc))
			res = append(res, candidate)
		}
	}
	return res
}

// degreeInterval is the upward simple interval from the tonic of s to p.
func (p Pitch) degreeInterval(s Tonal) interval.Interval {
	i := s.Tonic().Interval(p)
	if i.Direction() == interval.Down || (i.Coord.Semitones == 0 && i.Coord.Steps != 0) {
		i = i.Invert()
	}
	return i.SimpleUp()
}

// ScaleDegree returns the 1-based position of p in s, or 0 when p does not
// belong to it. Octave placement is ignored; spelling is not.
func (p Pitch) ScaleDegree(s Tonal) int {
	target := p.degreeInterval(s)
	for i, step := range s.Intervals() {
		if step.SimpleUp().Coord == target.Coord {
			return i + 1
		}
	}
	return 0
}

// Solfege returns the chromatic solfège syllable of p relative to the tonic
// of s. The table has no syllable for some doubly altered intervals; ok is
// false for those. With showOctaves, one ' or , is appended per octave
// between p and the tonic, counting a partial octave below the tonic as a
// whole one.
func (p Pitch) Solfege(s Tonal, showOctaves bool) (string, bool) {
	i := s.Tonic().Interval(p)
	if i.Direction() == interval.Down {
		i = i.Invert()
	}
	syllable, ok := knowledge.IntervalSolfege[i.SimpleUp().String()]
	if !ok || !showOctaves {
		return syllable, ok
	}

	count := util.FloorDiv(p.WhiteKey()-s.Tonic().WhiteKey(), 7)
	stroke := "'"
	if count < 0 {
		stroke = ","
	}
	return syllable + strings.Repeat(stroke, util.Abs(count)), true
}
