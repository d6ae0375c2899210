package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	intervalAdd     bool
	intervalUnit    string
	intervalBetween []string
	octaveIsSimple  bool
)

func init() {
	intervalCmd.Flags().BoolVarP(&intervalAdd, "add", "a", false, "add the intervals together")
	intervalCmd.Flags().StringVarP(&intervalUnit, "unit", "u", "", "also measure in semitones, steps, octaves, cents or ratio")
	intervalCmd.Flags().StringSliceVarP(&intervalBetween, "between", "b", nil, "the interval between two pitches, e.g. --between C4,G4")
	intervalCmd.Flags().BoolVar(&octaveIsSimple, "octave-is-simple", false, "treat the octave as a simple interval")
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval [name...]",
	Short: "Describes intervals",
	Long:  `Describes intervals given in short form, e.g. "m3", "P-5" or "A11".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conv := cfg.Convention()
		if cmd.Flags().Changed("octave-is-simple") {
			conv.OctaveIsSimple = octaveIsSimple
		}

		var intervals []interval.Interval
		if len(intervalBetween) > 0 {
			if len(intervalBetween) != 2 {
				return errors.New("--between takes exactly two pitches")
			}
			from, err := pitch.Parse(intervalBetween[0])
			if err != nil {
				return err
			}
			to, err := pitch.Parse(intervalBetween[1])
			if err != nil {
				return err
			}
			intervals = append(intervals, from.Interval(to))
		}
		for _, arg := range args {
			i, err := interval.Parse(arg)
			if err != nil {
				return err
			}
			intervals = append(intervals, i)
		}
		if len(intervals) == 0 {
			return errors.New("need at least one interval or --between")
		}

		if intervalAdd {
			var sum interval.Interval
			for _, i := range intervals {
				sum = sum.Add(i)
			}
			intervals = []interval.Interval{sum}
		}
		for _, i := range intervals {
			if err := describeInterval(i, conv); err != nil {
				return err
			}
		}
		return nil
	},
}

func describeInterval(i interval.Interval, conv interval.Convention) error {
	title(i.String())
	field("quality", i.QualityLong())
	field("direction", i.Direction())
	field("span", fmt.Sprintf("%d steps, %d semitones", i.Coord.Steps, i.Coord.Semitones))
	field("simple", conv.Simple(i))
	field("base", conv.Base(i))
	field("octaves", conv.Octaves(i))
	field("inverted", i.Invert())
	if intervalUnit != "" {
		v, err := interval.Measure(i, intervalUnit)
		if err != nil {
			return err
		}
		field(intervalUnit, fmt.Sprintf("%g", v))
	}
	return nil
}
