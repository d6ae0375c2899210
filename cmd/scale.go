package cmd

import (
	"strconv"
	"strings"

	"github.com/jsphweid/harmonia/interval"
	"github.com/jsphweid/harmonia/scale"
	"github.com/spf13/cobra"
)

var (
	scaleDegrees   []string
	scaleTranspose string
	scaleList      bool
)

func init() {
	scaleCmd.Flags().StringSliceVarP(&scaleDegrees, "degree", "d", nil, "pick degrees by number or word, e.g. 3,fifth,9")
	scaleCmd.Flags().StringVarP(&scaleTranspose, "transpose", "t", "", "move the scale by an interval")
	scaleCmd.Flags().BoolVarP(&scaleList, "list", "l", false, "list the known scales")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale tonic name",
	Short: "Spells scales",
	Long:  `Spells the named scale over a tonic, e.g. "scale Ab2 harmonic minor".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if scaleList {
			for _, name := range scale.Names() {
				title(name)
			}
			return nil
		}
		if err := cobra.MinimumNArgs(2)(cmd, args); err != nil {
			return err
		}

		sc, err := scale.Parse(args[0], strings.Join(args[1:], ""))
		if err != nil {
			return err
		}
		if scaleTranspose != "" {
			i, err := interval.Parse(scaleTranspose)
			if err != nil {
				return err
			}
			sc.Transpose(i)
		}

		title(sc.String())
		field("notes", joinStrings(sc.Notes()))
		field("simple", strings.Join(sc.Simple(), " "))
		for _, d := range scaleDegrees {
			if n, err := strconv.Atoi(d); err == nil {
				field("degree "+d, sc.Get(n))
				continue
			}
			p, err := sc.GetNamed(d)
			if err != nil {
				return err
			}
			field(d, p)
		}
		return nil
	},
}
