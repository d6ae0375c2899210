package interval

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownUnit = errors.New("unknown interval unit")

type Unit string

const (
	UnitSemitones Unit = "semitones"
	UnitSteps     Unit = "steps"
	UnitOctaves   Unit = "octaves"
	UnitCents     Unit = "cents"
	UnitRatio     Unit = "ratio"
)

var units = map[string]Unit{
	"semitones": UnitSemitones,
	"semitone":  UnitSemitones,
	"steps":     UnitSteps,
	"step":      UnitSteps,
	"octaves":   UnitOctaves,
	"octave":    UnitOctaves,
	"cents":     UnitCents,
	"cent":      UnitCents,
	"ratio":     UnitRatio,
}

func ParseUnit(name string) (Unit, error) {
	u, ok := units[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", errors.Wrapf(ErrUnknownUnit, "%q", name)
	}
	return u, nil
}

// Semitones is a chromatic distance in equal temperament.
type Semitones float64

func (s Semitones) Cents() float64 {
	return float64(s) * 100
}

func (s Semitones) Octaves() float64 {
	return float64(s) / 12
}

// Ratio is the frequency ratio spanned by s.
func (s Semitones) Ratio() float64 {
	return math.Pow(2, float64(s)/12)
}

// Measure expresses the size of i in the named unit.
func Measure(i Interval, unit string) (float64, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return 0, err
	}

	s := Semitones(i.Coord.Semitones)
	switch u {
	case UnitSteps:
		return float64(i.Coord.Steps), nil
	case UnitOctaves:
		return s.Octaves(), nil
	case UnitCents:
		return s.Cents(), nil
	case UnitRatio:
		return s.Ratio(), nil
	default:
		return float64(s), nil
	}
}
