// Package knowledge holds the static reference tables every other package
// reads: letter names, accidentals, interval names, alteration tables, the
// chord-symbol vocabulary and the solfège syllables.
package knowledge

import "github.com/pkg/errors"

var ErrInvalidDegreeName = errors.New("invalid degree name")

// Tones are the letter names in diatonic order starting from C.
var Tones = []string{"c", "d", "e", "f", "g", "a", "b"}

// Naturals holds the semitone offset of each natural letter above C.
var Naturals = []int{0, 2, 4, 5, 7, 9, 11}

// Accidentals is indexed by accidental value + 2.
var Accidentals = []string{"bb", "b", "", "#", "x"}

// A4 is the reference pitch counted from C0 as (diatonic steps, semitones).
var A4 = struct{ Steps, Semitones int }{Steps: 33, Semitones: 57}

// A4Key is the piano key number of the reference pitch.
const A4Key = 49

// IntervalNames is indexed by the diatonic span of an interval.
var IntervalNames = []string{
	"unison", "second", "third", "fourth", "fifth", "sixth", "seventh",
	"octave", "ninth", "tenth", "eleventh", "twelfth", "thirteenth",
	"fourteenth", "fifteenth",
}

// IntervalSemitones is the perfect or major size of each simple class.
var IntervalSemitones = []int{0, 2, 4, 5, 7, 9, 11}

// PerfectClass reports whether a simple class (0 = unison) is a perfect one.
func PerfectClass(class int) bool {
	return class == 0 || class == 3 || class == 4
}

// Alterations map quality deviations to symbols. Perfect classes are
// indexed by deviation+2, imperfect ones by deviation+3.
var Alterations = struct {
	Perfect []string
	Minor   []string
}{
	Perfect: []string{"dd", "d", "P", "A", "AA"},
	Minor:   []string{"dd", "d", "m", "M", "A", "AA"},
}

var QualityLong = map[string]string{
	"P":  "perfect",
	"M":  "major",
	"m":  "minor",
	"A":  "augmented",
	"AA": "doubly augmented",
	"d":  "diminished",
	"dd": "doubly diminished",
}

// Symbols is the base vocabulary of the chord grammar: a quality prefix and
// the intervals it implies above the root.
var Symbols = map[string][]string{
	"min": {"m3", "P5"},
	"mi":  {"m3", "P5"},
	"m":   {"m3", "P5"},
	"-":   {"m3", "P5"},

	"M": {"M3", "P5"},
	"":  {"M3", "P5"},

	"+":   {"M3", "A5"},
	"aug": {"M3", "A5"},

	"dim": {"m3", "d5"},
	"o":   {"m3", "d5"},
	"°":   {"m3", "d5"},

	"maj": {"M3", "P5", "M7"},
	"ma":  {"M3", "P5", "M7"},
	"Δ":   {"M3", "P5", "M7"},
	"dom": {"M3", "P5", "m7"},
	"ø":   {"m3", "d5", "m7"},

	"mM":   {"m3", "P5", "M7"},
	"mmaj": {"m3", "P5", "M7"},

	"5":       {"P5"},
	"N":       {"M3", "m6"},
	"tristan": {"A4", "A6", "A9"},
}

// ChordShort maps chord quality names to their conventional symbols.
var ChordShort = map[string]string{
	"major":              "",
	"minor":              "m",
	"augmented":          "+",
	"diminished":         "o",
	"dominant":           "7",
	"major-seventh":      "M7",
	"minor-seventh":      "m7",
	"diminished-seventh": "o7",
	"augmented-seventh":  "+7",
	"half-diminished":    "ø",
	"major-minor":        "mM",
	"major-sixth":        "6",
	"minor-sixth":        "m6",
	"dominant-ninth":     "9",
	"major-ninth":        "M9",
	"minor-ninth":        "m9",
	"dominant-11th":      "11",
	"major-11th":         "M11",
	"minor-11th":         "m11",
	"dominant-13th":      "13",
	"major-13th":         "M13",
	"minor-13th":         "m13",
	"suspended-second":   "sus2",
	"suspended-fourth":   "sus4",
	"Neapolitan":         "N",
	"power":              "5",
	"Tristan":            "tristan",
}

// StepNumber resolves degree words to interval numbers.
var StepNumber = map[string]int{
	"unison":     1,
	"first":      1,
	"second":     2,
	"third":      3,
	"fourth":     4,
	"fifth":      5,
	"sixth":      6,
	"seventh":    7,
	"octave":     8,
	"ninth":      9,
	"eleventh":   11,
	"thirteenth": 13,
}

// DegreeNumber looks up a degree word such as "third" or "ninth".
func DegreeNumber(word string) (int, error) {
	n, ok := StepNumber[word]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidDegreeName, "%q", word)
	}
	return n, nil
}

// IntervalSolfege holds the adjusted Shearer chromatic syllables.
// dd2, dd3, AA3, dd6, dd7 and AA7 have no syllable.
var IntervalSolfege = map[string]string{
	"dd1": "daw",
	"d1":  "de",
	"P1":  "do",
	"A1":  "di",
	"AA1": "dai",
	"d2":  "raw",
	"m2":  "ra",
	"M2":  "re",
	"A2":  "ri",
	"AA2": "rai",
	"d3":  "maw",
	"m3":  "me",
	"M3":  "mi",
	"A3":  "mai",
	"dd4": "faw",
	"d4":  "fe",
	"P4":  "fa",
	"A4":  "fi",
	"AA4": "fai",
	"dd5": "saw",
	"d5":  "se",
	"P5":  "so",
	"A5":  "si",
	"AA5": "sai",
	"d6":  "law",
	"m6":  "le",
	"M6":  "la",
	"A6":  "li",
	"AA6": "lai",
	"d7":  "taw",
	"m7":  "te",
	"M7":  "ti",
	"A7":  "tai",
	"dd8": "daw",
	"d8":  "de",
	"P8":  "do",
	"A8":  "di",
	"AA8": "dai",
}
