package chord

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type qualityToken struct {
	text string
	// fold matches case-insensitively
	fold bool
	// word refuses a match directly followed by another letter
	word bool
}

// Longest and most specific first: "mmaj" before "maj" before "m".
var qualityTokens = []qualityToken{
	{text: "tristan", fold: true},
	{text: "mmaj", fold: true},
	{text: "maj", fold: true},
	{text: "min", fold: true},
	{text: "mM"},
	{text: "ma", word: true},
	{text: "mi", word: true},
	{text: "m"},
	{text: "M"},
	{text: "Δ"},
	{text: "-"},
	{text: "+"},
	{text: "aug", fold: true},
	{text: "dim", fold: true},
	{text: "dom", fold: true},
	{text: "o"},
	{text: "°"},
	{text: "ø"},
	{text: "5"},
	{text: "N"},
}

// sevenths is the seventh an extension implies for each quality.
var sevenths = map[string]string{
	"dim": "d7",
	"o":   "d7",
	"°":   "d7",
	"M":   "M7",
	"maj": "M7",
	"ma":  "M7",
	"Δ":   "M7",

	"mM":   "M7",
	"mmaj": "M7",
}

var (
	extensions  = []string{"6/9", "69", "13", "11", "9", "7", "6"}
	addPattern  = regexp.MustCompile(`^(?i:add)([b#]?)(\d+)`)
	alterations = regexp.MustCompile(`^([b#])(\d+)`)
	separators  = " (),"
)

type spelling struct {
	quality string
	byNum   map[int]interval.Interval
}

func (s *spelling) set(i interval.Interval) {
	s.byNum[i.Number()] = i
}

func (s *spelling) drop(numbers ...int) {
	for _, n := range numbers {
		delete(s.byNum, n)
	}
}

func (s *spelling) seventh() interval.Interval {
	if name, ok := sevenths[s.quality]; ok {
		return interval.MustParse(name)
	}
	return interval.MustParse("m7")
}

func (s *spelling) minor() bool {
	third, ok := s.byNum[3]
	return ok && third.Quality() == "m"
}

// dominant qualities drop the third from an eleventh chord.
func (s *spelling) dominant() bool {
	return s.quality == "" || s.quality == "dom"
}

func (s *spelling) extend(ext string) {
	switch ext {
	case "6":
		s.set(interval.MustParse("M6"))
	case "69", "6/9":
		s.set(interval.MustParse("M6"))
		s.set(interval.MustParse("M9"))
	case "7":
		s.set(s.seventh())
	case "9":
		s.set(s.seventh())
		s.set(interval.MustParse("M9"))
	case "11":
		s.set(s.seventh())
		s.set(interval.MustParse("M9"))
		s.set(interval.MustParse("P11"))
		if s.dominant() {
			s.drop(3)
		}
	case "13":
		s.set(s.seventh())
		s.set(interval.MustParse("M9"))
		s.set(interval.MustParse("M13"))
		if s.minor() {
			s.set(interval.MustParse("P11"))
		}
	}
}

func (s *spelling) intervals() []interval.Interval {
	res := maps.Values(s.byNum)
	slices.SortFunc(res, func(a, b interval.Interval) bool {
		if a.Coord.Steps != b.Coord.Steps {
			return a.Coord.Steps < b.Coord.Steps
		}
		return a.Coord.Semitones < b.Coord.Semitones
	})
	return res
}

// natural is the perfect or major interval numbered n, shifted by the
// given accidental.
func natural(n int, accidental string) (interval.Interval, bool) {
	if n < 1 || n > 15 {
		return interval.Interval{}, false
	}
	quality := "M"
	if knowledge.PerfectClass((n - 1) % 7) {
		quality = "P"
	}
	i := interval.MustParse(quality + strconv.Itoa(n))
	switch accidental {
	case "b":
		i.Coord.Semitones--
	case "#":
		i.Coord.Semitones++
	}
	return i, true
}

func readQuality(text string) (string, string) {
	for _, tok := range qualityTokens {
		if len(text) < len(tok.text) {
			continue
		}
		head := text[:len(tok.text)]
		if head != tok.text && !(tok.fold && strings.EqualFold(head, tok.text)) {
			continue
		}
		rest := text[len(tok.text):]
		if tok.word && rest != "" && isLetter(rest[0]) {
			continue
		}
		// folded tokens are spelled in lower case in the table
		return tok.text, rest
	}
	return "", text
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// ParseSymbol turns a chord symbol without root, such as "m7b5", "maj9" or
// "7(#9, b13)", into its intervals above the root, unison included, in
// ascending order.
func ParseSymbol(symbol string) ([]interval.Interval, error) {
	quality, rest := readQuality(strings.TrimSpace(symbol))
	s := &spelling{quality: quality, byNum: map[int]interval.Interval{}}
	s.set(interval.MustParse("P1"))
	for _, name := range knowledge.Symbols[quality] {
		s.set(interval.MustParse(name))
	}

	for _, ext := range extensions {
		if strings.HasPrefix(rest, ext) {
			s.extend(ext)
			rest = rest[len(ext):]
			break
		}
	}

	for {
		rest = strings.TrimLeft(rest, separators)
		if rest == "" {
			break
		}
		lower := strings.ToLower(rest)

		switch {
		case strings.HasPrefix(lower, "sus2"):
			s.drop(3)
			s.set(interval.MustParse("M2"))
			rest = rest[4:]
		case strings.HasPrefix(lower, "sus4"):
			s.drop(3)
			s.set(interval.MustParse("P4"))
			rest = rest[4:]
		case strings.HasPrefix(lower, "sus"):
			s.drop(3)
			s.set(interval.MustParse("P4"))
			rest = rest[3:]
		case strings.HasPrefix(lower, "maj7"):
			s.set(interval.MustParse("M7"))
			rest = rest[4:]
		case strings.HasPrefix(lower, "no3"):
			s.drop(3)
			rest = rest[3:]
		case strings.HasPrefix(lower, "no5"):
			s.drop(5)
			rest = rest[3:]
		case addPattern.MatchString(rest):
			m := addPattern.FindStringSubmatch(rest)
			n, _ := strconv.Atoi(m[2])
			i, ok := natural(n, m[1])
			if !ok {
				return nil, errors.Wrapf(ErrMalformedNotation, "chord symbol %q: cannot add %s", symbol, m[0])
			}
			s.set(i)
			rest = rest[len(m[0]):]
		case alterations.MatchString(rest):
			m := alterations.FindStringSubmatch(rest)
			n, _ := strconv.Atoi(m[2])
			i, ok := natural(n, m[1])
			if !ok || n < 2 {
				return nil, errors.Wrapf(ErrMalformedNotation, "chord symbol %q: cannot alter %s", symbol, m[0])
			}
			s.set(i)
			rest = rest[len(m[0]):]
		default:
			return nil, errors.Wrapf(ErrMalformedNotation, "chord symbol %q near %q", symbol, rest)
		}
	}
	return s.intervals(), nil
}
