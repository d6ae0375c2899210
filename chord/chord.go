// Package chord models chords as a root pitch plus intervals, parsed from
// conventional chord symbols, with a separately mutable voicing.
package chord

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/jsphweid/harmonia/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var (
	ErrMalformedNotation    = interval.ErrMalformedNotation
	ErrInvalidParallelChord = errors.New("only major/minor triads have parallel chords")
	ErrEmptyChord           = errors.New("chord has no pitches")
)

var rootPattern = regexp.MustCompile(`(?i)^([a-h])(x|#|bb|b?)`)

type Chord struct {
	root      pitch.Pitch
	symbol    string
	name      string
	intervals []interval.Interval
	voicing   []interval.Interval
}

// New builds the chord described by symbol over root. A slash bass
// ("maj7/G") is moved below the root; "6/9" is not a slash chord.
func New(root pitch.Pitch, symbol string) (*Chord, error) {
	body, bass := symbol, ""
	if parts := strings.Split(symbol, "/"); len(parts) == 2 && strings.TrimSpace(parts[1]) != "9" {
		body, bass = parts[0], strings.TrimSpace(parts[1])
	}

	intervals, err := ParseSymbol(body)
	if err != nil {
		return nil, err
	}
	c := &Chord{
		root:      root,
		symbol:    symbol,
		name:      root.Class() + symbol,
		intervals: intervals,
		voicing:   slices.Clone(intervals),
	}
	if bass == "" {
		return c, nil
	}

	// the bass is spelled above the root, then turned down
	note, err := pitch.Parse(bass + strconv.Itoa(root.Octave()+1))
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedNotation, "chord %q: bass %q", c.name, bass)
	}
	bassInterval := root.Interval(note)
	simple := bassInterval.Simple()

	c.voicing = []interval.Interval{bassInterval.Invert().WithDirection(interval.Down)}
	for _, i := range intervals {
		if !i.Simple().Equal(simple) {
			c.voicing = append(c.voicing, i)
		}
	}
	return c, nil
}

// Parse reads a full chord name such as "Cmaj7", "f#m7b5" or "Bb7/D" and
// places its root in the given octave.
func Parse(name string, octave int) (*Chord, error) {
	name = strings.TrimSpace(name)
	m := rootPattern.FindString(name)
	if m == "" {
		return nil, errors.Wrapf(ErrMalformedNotation, "chord %q: no root", name)
	}
	root, err := pitch.Parse(strings.ToLower(m) + strconv.Itoa(octave))
	if err != nil {
		return nil, err
	}
	return New(root, name[len(m):])
}

// MustParse is Parse for literals known to be valid.
func MustParse(name string, octave int) *Chord {
	c, err := Parse(name, octave)
	if err != nil {
		panic(err)
	}
	return c
}

// FromQuality accepts either a symbol or a quality name like
// "dominant-ninth".
func FromQuality(root pitch.Pitch, quality string) (*Chord, error) {
	if symbol, ok := ShortSymbol(quality); ok {
		return New(root, symbol)
	}
	return New(root, quality)
}

// ShortSymbol returns the conventional symbol of a quality name.
func ShortSymbol(quality string) (string, bool) {
	symbol, ok := knowledge.ChordShort[quality]
	return symbol, ok
}

// FromPitches builds a chord rooted on the lowest of pitches, keeping their
// spelling. The symbol is derived from the resulting quality when it has
// one.
func FromPitches(pitches []pitch.Pitch) (*Chord, error) {
	if len(pitches) == 0 {
		return nil, ErrEmptyChord
	}
	sorted := slices.Clone(pitches)
	slices.SortFunc(sorted, func(a, b pitch.Pitch) bool {
		if a.Key() != b.Key() {
			return a.Key() < b.Key()
		}
		return a.WhiteKey() < b.WhiteKey()
	})

	root := sorted[0]
	var intervals []interval.Interval
	for _, p := range sorted {
		i := root.Interval(p)
		if !slices.Contains(intervals, i) {
			intervals = append(intervals, i)
		}
	}

	c := &Chord{root: root, intervals: intervals, voicing: slices.Clone(intervals)}
	if symbol, ok := ShortSymbol(c.Quality()); ok {
		c.symbol = symbol
	}
	c.name = root.Class() + c.symbol
	return c, nil
}

// spellings is the preferred interval for each semitone distance above the
// lowest note of an unspelled chord.
var spellings = []string{"P1", "m2", "M2", "m3", "M3", "P4", "d5", "P5", "A5", "M6", "m7", "M7"}

// FromKeys builds a chord from MIDI note numbers, spelling every note by its
// distance from the lowest one.
func FromKeys(keys []int) (*Chord, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyChord
	}
	lowest := keys[0]
	for _, k := range keys {
		lowest = util.Min(lowest, k)
	}

	has := make(map[int]bool)
	for _, k := range keys {
		has[(k-lowest)%12] = true
	}
	spell := func(distance int) string {
		// over a diminished triad the sixth semitone is a diminished seventh
		if distance == 9 && has[3] && has[6] {
			return "d7"
		}
		return spellings[distance]
	}

	root := pitch.FromMIDI(lowest)
	pitches := make([]pitch.Pitch, len(keys))
	for idx, k := range keys {
		distance := k - lowest
		i := interval.MustParse(spell(distance % 12))
		i.Coord.Steps += 7 * (distance / 12)
		i.Coord.Semitones += 12 * (distance / 12)
		pitches[idx] = root.Transpose(i)
	}
	return FromPitches(pitches)
}

func (c *Chord) Root() pitch.Pitch {
	return c.root
}

func (c *Chord) Symbol() string {
	return c.symbol
}

func (c *Chord) Name() string {
	return c.name
}

// Intervals returns a copy of the chord's intervals in symbol order.
func (c *Chord) Intervals() []interval.Interval {
	return slices.Clone(c.intervals)
}

// Notes are the pitches of the current voicing, bass first.
func (c *Chord) Notes() []pitch.Pitch {
	notes := make([]pitch.Pitch, len(c.voicing))
	for i, v := range c.voicing {
		notes[i] = c.root.Transpose(v)
	}
	return notes
}

// Simple spells the notes without octave, e.g. "Bb".
func (c *Chord) Simple() []string {
	notes := c.Notes()
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.Class()
	}
	return res
}

func (c *Chord) Bass() pitch.Pitch {
	return c.root.Transpose(c.voicing[0])
}

func (c *Chord) Voicing() []interval.Interval {
	return slices.Clone(c.voicing)
}

// SetVoicing replaces the voicing with the named intervals, lowest first.
// On error the voicing is left untouched.
func (c *Chord) SetVoicing(names ...string) error {
	if len(names) == 0 {
		return errors.Wrap(ErrMalformedNotation, "empty voicing")
	}
	voicing := make([]interval.Interval, len(names))
	for i, name := range names {
		v, err := interval.Parse(name)
		if err != nil {
			return err
		}
		voicing[i] = v
	}
	c.voicing = voicing
	return nil
}

// ResetVoicing restores the intervals in symbol order, dropping any slash
// bass.
func (c *Chord) ResetVoicing() {
	c.voicing = slices.Clone(c.intervals)
}

// Get returns the chord tone whose interval number is exactly n, so 9 and
// 2 are different tones.
func (c *Chord) Get(n int) (pitch.Pitch, bool) {
	for _, i := range c.intervals {
		if i.Number() == n {
			return c.root.Transpose(i), true
		}
	}
	return pitch.Pitch{}, false
}

// GetNamed is Get for degree words like "fifth". Unknown words fail with
// knowledge.ErrInvalidDegreeName; known words without a chord tone report
// ok == false.
func (c *Chord) GetNamed(word string) (p pitch.Pitch, ok bool, err error) {
	n, err := knowledge.DegreeNumber(word)
	if err != nil {
		return pitch.Pitch{}, false, err
	}
	p, ok = c.Get(n)
	return p, ok, nil
}

// Dominant is the chord a fifth above the root, spelled with symbol.
func (c *Chord) Dominant(symbol string) (*Chord, error) {
	return New(c.root.Transpose(interval.MustParse("P5")), symbol)
}

// Subdominant is the chord a fourth above the root, spelled with symbol.
func (c *Chord) Subdominant(symbol string) (*Chord, error) {
	return New(c.root.Transpose(interval.MustParse("P4")), symbol)
}

// Parallel returns the relative minor of a major triad, a minor third
// down, or the relative major of a minor triad, a minor third up.
func (c *Chord) Parallel() (*Chord, error) {
	quality := c.Quality()
	if c.ChordType() != "triad" || quality == "diminished" || quality == "augmented" {
		return nil, errors.Wrapf(ErrInvalidParallelChord, "%s is %s", c.name, quality)
	}
	if c.IsMajor() {
		return New(c.root.Transpose(interval.MustParse("m-3")), "m")
	}
	return New(c.root.Transpose(interval.MustParse("m3")), "")
}

// Interval returns a copy of the chord moved up by i, voicing included.
func (c *Chord) Interval(i interval.Interval) *Chord {
	moved := &Chord{
		root:      c.root.Transpose(i),
		symbol:    c.symbol,
		intervals: slices.Clone(c.intervals),
		voicing:   slices.Clone(c.voicing),
	}
	moved.name = moved.root.Class() + moved.symbol
	return moved
}

// Transpose moves the chord by i in place and returns it.
func (c *Chord) Transpose(i interval.Interval) *Chord {
	c.root = c.root.Transpose(i)
	c.name = c.root.Class() + c.symbol
	return c
}

func (c *Chord) String() string {
	return c.name
}
