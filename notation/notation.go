// Package notation turns scientific ("C#4", "Bb-1") and Helmholtz
// ("c#''", "F,") pitch spellings into coordinates relative to A4.
// H is accepted as a synonym for B.
package notation

import (
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/coord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// ErrMalformedNotation is shared with the interval parser so callers can
// test for either with a single errors.Is.
var ErrMalformedNotation = interval.ErrMalformedNotation

var accidentalValues = map[string]int{
	"bb": -2,
	"b":  -1,
	"":   0,
	"#":  1,
	"x":  2,
	"##": 2,
}

// Parse tries scientific notation first and falls back to Helmholtz.
func Parse(text string) (coord.Coord, error) {
	if c, err := ParseScientific(text); err == nil {
		return c, nil
	}
	if c, err := ParseHelmholtz(text); err == nil {
		return c, nil
	}
	return coord.Coord{}, errors.Wrapf(ErrMalformedNotation, "pitch %q", text)
}

func ParseScientific(text string) (coord.Coord, error) {
	letter, acc, rest, ok := splitName(strings.TrimSpace(text))
	if !ok || rest == "" {
		return coord.Coord{}, errors.Wrapf(ErrMalformedNotation, "scientific pitch %q", text)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return coord.Coord{}, errors.Wrapf(ErrMalformedNotation, "scientific pitch %q", text)
	}
	return FromParts(letter, acc, octave), nil
}

func ParseHelmholtz(text string) (coord.Coord, error) {
	text = strings.TrimSpace(text)
	letter, acc, marks, ok := splitName(text)
	if !ok {
		return coord.Coord{}, errors.Wrapf(ErrMalformedNotation, "helmholtz pitch %q", text)
	}

	upper := text[0] >= 'A' && text[0] <= 'H'
	var octave int
	switch {
	case upper && strings.Trim(marks, ",") == "":
		octave = 2 - len(marks)
	case !upper && strings.Trim(marks, "'") == "":
		octave = 3 + len(marks)
	default:
		return coord.Coord{}, errors.Wrapf(ErrMalformedNotation, "helmholtz pitch %q", text)
	}
	return FromParts(letter, acc, octave), nil
}

// FromParts builds the coordinate of a letter index (0 = C), an
// accidental value and an octave number.
func FromParts(letter, accidental, octave int) coord.Coord {
	abs := coord.New(octave*7+letter, octave*12+knowledge.Naturals[letter]+accidental)
	return abs.Sub(coord.A4)
}

// splitName reads a letter and an optional accidental off the front of text
// and returns what follows.
func splitName(text string) (letter, accidental int, rest string, ok bool) {
	if text == "" {
		return 0, 0, "", false
	}
	name := strings.ToLower(text[:1])
	if name == "h" {
		name = "b"
	}
	letter = slices.Index(knowledge.Tones, name)
	if letter < 0 {
		return 0, 0, "", false
	}

	rest = text[1:]
	for _, sign := range []string{"bb", "##", "b", "#", "x"} {
		if strings.HasPrefix(strings.ToLower(rest), sign) {
			return letter, accidentalValues[sign], rest[len(sign):], true
		}
	}
	return letter, 0, rest, true
}

// LetterIndex resolves a letter name (case-insensitive, H = B).
func LetterIndex(name string) (int, error) {
	letter, acc, rest, ok := splitName(name)
	if !ok || acc != 0 || rest != "" {
		return 0, errors.Wrapf(ErrMalformedNotation, "letter %q", name)
	}
	return letter, nil
}
