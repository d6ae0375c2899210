package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonia/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	excerptFrom  uint64
	excerptNotes int
	excerptOut   string
)

func init() {
	inspectCmd.Flags().Uint64Var(&excerptFrom, "from", 0, "tick the excerpt starts at")
	inspectCmd.Flags().IntVar(&excerptNotes, "notes", 32, "note events kept per track in the excerpt")
	inspectCmd.Flags().StringVarP(&excerptOut, "excerpt", "e", "", "write an excerpt of the file here instead of naming chords")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect file",
	Short: "Names the chords in a MIDI file",
	Long:  `Names every distinct set of notes sounding together in a MIDI file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if excerptOut != "" {
			return excerpt(args[0])
		}

		events, chords, err := midi.ReadChords(args[0])
		if err != nil {
			return err
		}
		for i, evt := range events {
			fmt.Printf("%s %s %-20s %s\n",
				labelStyle.Render(fmt.Sprintf("%8d %7dms", evt.Ticks, evt.Offset)),
				nameStyle.Render(fmt.Sprintf("%-8s", chords[i].Name())),
				chords[i].Quality(),
				midi.CreateChordKey(evt.Notes))
		}
		return nil
	},
}

func excerpt(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	ex := midi.Excerpt(s, excerptFrom, excerptNotes)
	if err := ex.WriteFile(excerptOut); err != nil {
		return errors.Wrap(err, "writing excerpt")
	}
	fmt.Printf("wrote excerpt of %s to %s\n", path, excerptOut)
	return nil
}
