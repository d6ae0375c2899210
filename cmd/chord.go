package cmd

import (
	"strings"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/spf13/cobra"
)

var (
	chordOctave    int
	chordVoicing   []string
	chordTranspose string
	chordPitches   bool
	chordRelated   bool
)

func init() {
	chordCmd.Flags().IntVarP(&chordOctave, "octave", "o", -1, "octave of the root (default from config)")
	chordCmd.Flags().StringSliceVar(&chordVoicing, "voicing", nil, "intervals to voice the chord with, e.g. P-4,P1,M3")
	chordCmd.Flags().StringVarP(&chordTranspose, "transpose", "t", "", "move the chord by an interval")
	chordCmd.Flags().BoolVarP(&chordPitches, "pitches", "p", false, "name the chord formed by the given pitches")
	chordCmd.Flags().BoolVarP(&chordRelated, "related", "r", false, "also show the dominant, subdominant and parallel")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord name | --pitches pitch...",
	Short: "Describes chords",
	Long:  `Describes chords given by symbol ("Cmaj7", "Bb7/D") or by their pitches.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildChord(args)
		if err != nil {
			return err
		}
		if len(chordVoicing) > 0 {
			if err := c.SetVoicing(chordVoicing...); err != nil {
				return err
			}
		}
		if chordTranspose != "" {
			i, err := interval.Parse(chordTranspose)
			if err != nil {
				return err
			}
			c.Transpose(i)
		}

		describeChord(c)
		if chordRelated {
			return describeRelated(c)
		}
		return nil
	},
}

func buildChord(args []string) (*chord.Chord, error) {
	if chordPitches {
		pitches := make([]pitch.Pitch, len(args))
		for i, arg := range args {
			p, err := pitch.Parse(arg)
			if err != nil {
				return nil, err
			}
			pitches[i] = p
		}
		return chord.FromPitches(pitches)
	}

	octave := chordOctave
	if octave < 0 {
		octave = cfg.Theory.DefaultOctave
	}
	return chord.Parse(strings.Join(args, ""), octave)
}

func describeChord(c *chord.Chord) {
	title(c.Name())
	field("quality", c.Quality())
	field("type", c.ChordType())
	field("notes", joinStrings(c.Notes()))
	field("intervals", joinStrings(c.Intervals()))
	field("bass", c.Bass())
}

func describeRelated(c *chord.Chord) error {
	dominant, err := c.Dominant("7")
	if err != nil {
		return err
	}
	subdominant, err := c.Subdominant("")
	if err != nil {
		return err
	}
	field("dominant", dominant)
	field("subdominant", subdominant)
	if parallel, err := c.Parallel(); err == nil {
		field("parallel", parallel)
	}
	return nil
}

func joinStrings[T interface{ String() string }](items []T) string {
	res := make([]string, len(items))
	for i, item := range items {
		res[i] = item.String()
	}
	return strings.Join(res, " ")
}
