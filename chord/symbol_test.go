package chord

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	cases := map[string][]string{
		"":          {"P1", "M3", "P5"},
		"M":         {"P1", "M3", "P5"},
		"m":         {"P1", "m3", "P5"},
		"min7":      {"P1", "m3", "P5", "m7"},
		"-7":        {"P1", "m3", "P5", "m7"},
		"mi7":       {"P1", "m3", "P5", "m7"},
		"maj":       {"P1", "M3", "P5", "M7"},
		"Maj7":      {"P1", "M3", "P5", "M7"},
		"Δ":         {"P1", "M3", "P5", "M7"},
		"ma9":       {"P1", "M3", "P5", "M7", "M9"},
		"+":         {"P1", "M3", "A5"},
		"aug7":      {"P1", "M3", "A5", "m7"},
		"dim7":      {"P1", "m3", "d5", "d7"},
		"°7":        {"P1", "m3", "d5", "d7"},
		"ø":         {"P1", "m3", "d5", "m7"},
		"m7b5":      {"P1", "m3", "d5", "m7"},
		"dom7":      {"P1", "M3", "P5", "m7"},
		"mM7":       {"P1", "m3", "P5", "M7"},
		"mmaj7":     {"P1", "m3", "P5", "M7"},
		"m(maj7)":   {"P1", "m3", "P5", "M7"},
		"5":         {"P1", "P5"},
		"N":         {"P1", "M3", "m6"},
		"Tristan":   {"P1", "A4", "A6", "A9"},
		"6":         {"P1", "M3", "P5", "M6"},
		"m6":        {"P1", "m3", "P5", "M6"},
		"69":        {"P1", "M3", "P5", "M6", "M9"},
		"6/9":       {"P1", "M3", "P5", "M6", "M9"},
		"9":         {"P1", "M3", "P5", "m7", "M9"},
		"11":        {"P1", "P5", "m7", "M9", "P11"},
		"m11":       {"P1", "m3", "P5", "m7", "M9", "P11"},
		"13":        {"P1", "M3", "P5", "m7", "M9", "M13"},
		"m13":       {"P1", "m3", "P5", "m7", "M9", "P11", "M13"},
		"M13":       {"P1", "M3", "P5", "M7", "M9", "M13"},
		"sus2":      {"P1", "M2", "P5"},
		"sus4":      {"P1", "P4", "P5"},
		"7sus":      {"P1", "P4", "P5", "m7"},
		"9sus4":     {"P1", "P4", "P5", "m7", "M9"},
		"add9":      {"P1", "M3", "P5", "M9"},
		"madd9":     {"P1", "m3", "P5", "M9"},
		"(add11)":   {"P1", "M3", "P5", "P11"},
		"7b9":       {"P1", "M3", "P5", "m7", "m9"},
		"7(#9,b13)": {"P1", "M3", "P5", "m7", "A9", "m13"},
		"maj7#11":   {"P1", "M3", "P5", "M7", "A11"},
		"7no3":      {"P1", "P5", "m7"},
		"no5":       {"P1", "M3"},
	}
	for symbol, want := range cases {
		t.Run(symbol, func(t *testing.T) {
			got, err := ParseSymbol(symbol)
			require.NoError(t, err)
			assert.Equal(t, want, names(got))
		})
	}
}

func TestParseSymbolRejectsGarbage(t *testing.T) {
	for _, symbol := range []string{"foo", "7#", "add", "add99", "b1", "m7/"} {
		t.Run(symbol, func(t *testing.T) {
			_, err := ParseSymbol(symbol)
			assert.True(t, errors.Is(err, ErrMalformedNotation), "got %v", err)
		})
	}
}
