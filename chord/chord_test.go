package chord

import (
	"testing"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/knowledge"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(intervals []interval.Interval) []string {
	res := make([]string, len(intervals))
	for i, v := range intervals {
		res[i] = v.String()
	}
	return res
}

func scientific(pitches []pitch.Pitch) []string {
	res := make([]string, len(pitches))
	for i, p := range pitches {
		res[i] = p.Scientific()
	}
	return res
}

func TestDominantSeventh(t *testing.T) {
	assert := assert.New(t)
	c := MustParse("C7", 4)

	assert.Equal("dominant", c.Quality())
	assert.Equal("tetrad", c.ChordType())
	assert.Equal([]string{"C", "E", "G", "Bb"}, c.Simple())
	assert.Equal("C7", c.String())
	assert.Equal(pitch.MustParse("C4"), c.Root())
	assert.True(c.IsMajor())
	assert.False(c.IsMinor())
}

func TestMajorSeventh(t *testing.T) {
	c := MustParse("CM7", 4)
	assert.Equal(t, "major-seventh", c.Quality())
	assert.Equal(t, []string{"C", "E", "G", "B"}, c.Simple())
}

func TestDiminishedSeventh(t *testing.T) {
	c := MustParse("Co7", 4)
	assert.Equal(t, "diminished-seventh", c.Quality())
	assert.Equal(t, []string{"C", "Eb", "Gb", "Bbb"}, c.Simple())
}

func TestQualityNamesRoundTrip(t *testing.T) {
	qualities := []string{
		"major", "minor", "augmented", "diminished", "dominant",
		"major-seventh", "minor-seventh", "diminished-seventh",
		"augmented-seventh", "half-diminished", "major-minor",
		"major-sixth", "minor-sixth", "dominant-ninth", "major-ninth",
		"minor-ninth", "dominant-11th", "dominant-13th", "major-13th",
		"suspended-second", "suspended-fourth",
	}
	for _, quality := range qualities {
		t.Run(quality, func(t *testing.T) {
			c, err := FromQuality(pitch.MustParse("F4"), quality)
			require.NoError(t, err)
			assert.Equal(t, quality, c.Quality())
		})
	}
}

func TestQualityBranchOrder(t *testing.T) {
	// an augmented fifth with a minor seventh wins over plain dominant
	c := MustParse("C7#5", 4)
	assert.Equal(t, "augmented-seventh", c.Quality())

	// no third, minor seventh, ninth and eleventh
	c = MustParse("C11", 4)
	assert.Equal(t, "dominant-11th", c.Quality())
	_, ok := c.GetDegree(3)
	assert.False(t, ok)

	c = MustParse("C5", 4)
	assert.Equal(t, "other", c.Quality())
}

func TestSlashChordVoicing(t *testing.T) {
	assert := assert.New(t)
	c := MustParse("Cmaj7/G", 4)

	assert.Equal("Cmaj7/G", c.Name())
	assert.Equal([]string{"P-4", "P1", "M3", "M7"}, names(c.Voicing()))
	assert.Equal([]string{"G3", "C4", "E4", "B4"}, scientific(c.Notes()))
	assert.Equal(pitch.MustParse("G3"), c.Bass())
	assert.Equal("major-seventh", c.Quality())

	c.ResetVoicing()
	assert.Equal([]string{"C4", "E4", "G4", "B4"}, scientific(c.Notes()))
	assert.Equal(pitch.MustParse("C4"), c.Bass())
}

func TestSlashBassOutsideChord(t *testing.T) {
	c := MustParse("Dm7/C", 3)
	assert.Equal(t, []string{"C3", "D3", "F3", "A3"}, scientific(c.Notes()))

	c = MustParse("F/E", 4)
	assert.Equal(t, []string{"E4", "F4", "A4", "C5"}, scientific(c.Notes()))
}

func TestSixNineIsNotASlashChord(t *testing.T) {
	c := MustParse("C6/9", 4)
	assert.Equal(t, []string{"P1", "M3", "P5", "M6", "M9"}, names(c.Voicing()))
	assert.Equal(t, pitch.MustParse("C4"), c.Bass())
}

func TestSetVoicing(t *testing.T) {
	assert := assert.New(t)
	c := MustParse("C", 4)

	require.NoError(t, c.SetVoicing("P-4", "P1", "M3"))
	assert.Equal([]string{"G3", "C4", "E4"}, scientific(c.Notes()))

	err := c.SetVoicing("P1", "X9")
	assert.True(errors.Is(err, ErrMalformedNotation))
	assert.Equal([]string{"G3", "C4", "E4"}, scientific(c.Notes()))

	err = c.SetVoicing()
	assert.True(errors.Is(err, ErrMalformedNotation))
}

func TestParallel(t *testing.T) {
	assert := assert.New(t)

	minor, err := MustParse("C", 4).Parallel()
	require.NoError(t, err)
	assert.Equal("Am", minor.Name())
	assert.Equal(pitch.MustParse("A3"), minor.Root())
	assert.True(minor.IsMinor())

	major, err := MustParse("Am", 4).Parallel()
	require.NoError(t, err)
	assert.Equal("C", major.Name())
	assert.Equal(pitch.MustParse("C5"), major.Root())

	for _, name := range []string{"C7", "Cdim", "C+", "Csus4"} {
		_, err := MustParse(name, 4).Parallel()
		assert.True(errors.Is(err, ErrInvalidParallelChord), name)
	}
}

func TestDominantAndSubdominant(t *testing.T) {
	assert := assert.New(t)
	c := MustParse("C", 4)

	d, err := c.Dominant("7")
	require.NoError(t, err)
	assert.Equal("G7", d.Name())
	assert.Equal(pitch.MustParse("G4"), d.Root())

	s, err := c.Subdominant("")
	require.NoError(t, err)
	assert.Equal("F", s.Name())
}

func TestChordType(t *testing.T) {
	cases := map[string]string{
		"C5":    "dyad",
		"C":     "triad",
		"Cm":    "triad",
		"Csus2": "trichord",
		"C7":    "tetrad",
		"Cm7b5": "tetrad",
		"C9":    "unknown",
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, MustParse(name, 4).ChordType())
		})
	}
}

func TestGet(t *testing.T) {
	assert := assert.New(t)
	c := MustParse("C9", 4)

	p, ok := c.Get(9)
	assert.True(ok)
	assert.Equal(pitch.MustParse("D5"), p)

	_, ok = c.Get(2)
	assert.False(ok)

	i, ok := c.GetDegree(2)
	assert.True(ok)
	assert.Equal(interval.MustParse("M9"), i)

	p, ok, err := c.GetNamed("fifth")
	require.NoError(t, err)
	assert.True(ok)
	assert.Equal(pitch.MustParse("G4"), p)

	_, ok, err = c.GetNamed("sixth")
	require.NoError(t, err)
	assert.False(ok)

	_, _, err = c.GetNamed("fiveth")
	assert.True(errors.Is(err, knowledge.ErrInvalidDegreeName))
}

func TestTransposeAndInterval(t *testing.T) {
	assert := assert.New(t)
	c := MustParse("Bb7", 3)

	up := c.Interval(interval.MustParse("M2"))
	assert.Equal("C7", up.Name())
	assert.Equal("Bb7", c.Name())

	same := c.Transpose(interval.MustParse("m-2"))
	assert.Same(c, same)
	assert.Equal("A7", c.Name())
	assert.Equal([]string{"A", "C#", "E", "G"}, c.Simple())
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse("f#m7b5", 3)
	require.NoError(t, err)
	assert.Equal("F#m7b5", c.Name())
	assert.Equal(pitch.MustParse("F#3"), c.Root())
	assert.Equal("half-diminished", c.Quality())

	c, err = Parse("Hmaj7", 4)
	require.NoError(t, err)
	assert.Equal(pitch.MustParse("B4"), c.Root())

	_, err = Parse("Qm", 4)
	assert.True(errors.Is(err, ErrMalformedNotation))

	_, err = Parse("Cfoo", 4)
	assert.True(errors.Is(err, ErrMalformedNotation))
}

func TestFromKeys(t *testing.T) {
	cases := []struct {
		keys   []int
		name   string
		simple []string
	}{
		{[]int{60, 64, 67}, "C", []string{"C", "E", "G"}},
		{[]int{69, 62, 66}, "D", []string{"D", "F#", "A"}},
		{[]int{57, 60, 64}, "Am", []string{"A", "C", "E"}},
		{[]int{55, 59, 62, 65}, "G7", []string{"G", "B", "D", "F"}},
		{[]int{60, 64, 68}, "C+", []string{"C", "E", "G#"}},
		{[]int{60, 63, 66, 69}, "Co7", []string{"C", "Eb", "Gb", "Bbb"}},
		{[]int{69, 66, 63, 60}, "Co7", []string{"C", "Eb", "Gb", "Bbb"}},
		{[]int{60, 64, 67, 69}, "C6", []string{"C", "E", "G", "A"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ch, err := FromKeys(c.keys)
			require.NoError(t, err)
			assert.Equal(t, c.name, ch.Name())
			assert.Equal(t, c.simple, ch.Simple())
		})
	}

	_, err := FromKeys(nil)
	assert.True(t, errors.Is(err, ErrEmptyChord))
}

func TestFromPitchesKeepsSpelling(t *testing.T) {
	c, err := FromPitches([]pitch.Pitch{
		pitch.MustParse("G#4"), pitch.MustParse("E4"), pitch.MustParse("B3"),
	})
	require.NoError(t, err)
	assert.Equal(t, pitch.MustParse("B3"), c.Root())
	assert.Equal(t, []string{"B", "E", "G#"}, c.Simple())
}
