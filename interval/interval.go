// Package interval implements intervals as displacement vectors in the
// (diatonic steps, semitones) space.
//
// Quality, number and class are read from the upward form of the vector;
// direction comes from the sign of the diatonic step count alone, so a
// unison-class interval is always "up" and a descending doubly diminished
// second is "down" even though it sounds a semitone higher.
package interval

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/coord"
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
)

var ErrMalformedNotation = errors.New("malformed notation")

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

type Interval struct {
	Coord coord.Coord
}

var pattern = regexp.MustCompile(`^(A+|P|M|m|d+)(-?)(\d+)$`)

func FromCoord(c coord.Coord) Interval {
	return Interval{Coord: c}
}

func New(steps, semitones int) Interval {
	return Interval{Coord: coord.New(steps, semitones)}
}

// Between returns the interval that leads from a to b.
func Between(a, b coord.Coord) Interval {
	return Interval{Coord: b.Sub(a)}
}

// Parse reads the short form: quality letters, an optional minus sign and
// the interval number, e.g. "m3", "A-9" or "dd2".
func Parse(name string) (Interval, error) {
	m := pattern.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return Interval{}, errors.Wrapf(ErrMalformedNotation, "interval %q", name)
	}
	quality, negative := m[1], m[2] == "-"
	number, err := strconv.Atoi(m[3])
	if err != nil || number < 1 {
		return Interval{}, errors.Wrapf(ErrMalformedNotation, "interval %q", name)
	}

	offset, ok := qualityOffset(quality, (number-1)%7)
	if !ok {
		return Interval{}, errors.Wrapf(ErrMalformedNotation, "interval %q: %s cannot qualify a %s",
			name, quality, knowledge.IntervalNames[(number-1)%7])
	}

	sign := 1
	if negative {
		sign = -1
	}
	steps := number - 1
	semitones := knowledge.IntervalSemitones[steps%7] + 12*(steps/7) + offset
	return New(sign*steps, sign*semitones), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(name string) Interval {
	i, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return i
}

func qualityOffset(quality string, class int) (int, bool) {
	perfect := knowledge.PerfectClass(class)
	switch {
	case quality == "P":
		return 0, perfect
	case quality == "M":
		return 0, !perfect
	case quality == "m":
		return -1, !perfect
	case quality[0] == 'A':
		return len(quality), true
	default:
		if perfect {
			return -len(quality), true
		}
		return -len(quality) - 1, true
	}
}

// up returns the upward form of the interval and the sign that restores it.
func (i Interval) up() (coord.Coord, int) {
	if i.Coord.Steps < 0 {
		return i.Coord.Neg(), -1
	}
	return i.Coord, 1
}

func (i Interval) Direction() Direction {
	if i.Coord.Steps < 0 {
		return Down
	}
	return Up
}

// WithDirection turns the interval around when it does not already point
// in the given direction.
func (i Interval) WithDirection(d Direction) Interval {
	if i.Direction() != d {
		return Interval{Coord: i.Coord.Neg()}
	}
	return i
}

// Number is the unsigned diatonic size: 1 for a unison, 9 for a ninth.
func (i Interval) Number() int {
	return util.Abs(i.Coord.Steps) + 1
}

// Value is Number carrying the direction.
func (i Interval) Value() int {
	if i.Direction() == Down {
		return -i.Number()
	}
	return i.Number()
}

// QualityValue is the semitone deviation from the perfect or major
// interval of the same span.
func (i Interval) QualityValue() int {
	u, _ := i.up()
	class := u.Steps % 7
	reference := knowledge.IntervalSemitones[class] + 12*(u.Steps/7)
	return u.Semitones - reference
}

// Quality returns the short quality symbol. Deviations past the doubly
// altered ones repeat the letter.
func (i Interval) Quality() string {
	u, _ := i.up()
	dev := i.QualityValue()
	if knowledge.PerfectClass(u.Steps % 7) {
		if idx := dev + 2; idx >= 0 && idx < len(knowledge.Alterations.Perfect) {
			return knowledge.Alterations.Perfect[idx]
		}
		if dev > 0 {
			return strings.Repeat("A", dev)
		}
		return strings.Repeat("d", -dev)
	}
	if idx := dev + 3; idx >= 0 && idx < len(knowledge.Alterations.Minor) {
		return knowledge.Alterations.Minor[idx]
	}
	if dev > 0 {
		return strings.Repeat("A", dev)
	}
	return strings.Repeat("d", -dev-1)
}

func (i Interval) QualityLong() string {
	if long, ok := knowledge.QualityLong[i.Quality()]; ok {
		return long
	}
	q := i.Quality()
	if q[0] == 'A' {
		return strconv.Itoa(len(q)) + "x augmented"
	}
	return strconv.Itoa(len(q)) + "x diminished"
}

func (i Interval) IsCompound() bool {
	return util.Abs(i.Coord.Steps) >= 7
}

// Base, Octaves, Simple and SimpleUp read an exact octave as compound.
// Use a Convention to count it as simple.

func (i Interval) Base() string {
	return Convention{}.Base(i)
}

func (i Interval) Octaves() int {
	return Convention{}.Octaves(i)
}

func (i Interval) Simple() Interval {
	return Convention{}.Simple(i)
}

func (i Interval) SimpleUp() Interval {
	return Convention{}.SimpleUp(i)
}

// Invert returns the upward complement of the simple interval: the one that
// completes it to an octave. Unison-class intervals mirror around the
// unison instead, so A1 and d1 swap and P1 stays put.
func (i Interval) Invert() Interval {
	s := i.SimpleUp()
	if s.Coord.Steps == 0 {
		return New(0, -s.Coord.Semitones)
	}
	return New(7-s.Coord.Steps, 12-s.Coord.Semitones)
}

func (i Interval) Add(o Interval) Interval {
	return Interval{Coord: i.Coord.Add(o.Coord)}
}

func (i Interval) Equal(o Interval) bool {
	return i.Coord == o.Coord
}

func (i Interval) Greater(o Interval) bool {
	return i.Coord.Semitones > o.Coord.Semitones
}

func (i Interval) Smaller(o Interval) bool {
	return i.Coord.Semitones < o.Coord.Semitones
}

func (i Interval) String() string {
	sign := ""
	if i.Direction() == Down {
		sign = "-"
	}
	return i.Quality() + sign + strconv.Itoa(i.Number())
}

// MarshalText makes intervals encode as their short form.
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
