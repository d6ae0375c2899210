package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonia/chord"
	"github.com/jsphweid/harmonia/midi"
	"github.com/jsphweid/harmonia/pitch"
	"github.com/spf13/cobra"
)

var (
	exportOut     string
	exportPitches bool
	exportBPM     float64
	exportOctave  int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "file to write (default: a new file in the export directory)")
	exportCmd.Flags().BoolVarP(&exportPitches, "pitches", "p", false, "arguments are pitches played one after another")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", 120, "tempo")
	exportCmd.Flags().IntVar(&exportOctave, "octave", -1, "octave of chord roots (default from config)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export chord... | --pitches pitch...",
	Short: "Writes chords or pitches to a MIDI file",
	Long:  `Writes chords, or single pitches, to a standard MIDI file. A "-" argument is a rest.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := exportGroups(args)
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			path = midi.FilenameIn(cfg.Midi.OutDir)
		}
		opts := cfg.WriteOptions()
		opts.BPM = exportBPM
		if err := midi.WritePitches(path, groups, opts); err != nil {
			return err
		}
		fmt.Printf("wrote %d groups to %s\n", len(groups), path)
		return nil
	},
}

func exportGroups(args []string) ([][]pitch.Pitch, error) {
	octave := exportOctave
	if octave < 0 {
		octave = cfg.Theory.DefaultOctave
	}

	groups := make([][]pitch.Pitch, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			groups = append(groups, nil)
			continue
		}
		if exportPitches {
			p, err := pitch.Parse(arg)
			if err != nil {
				return nil, err
			}
			groups = append(groups, []pitch.Pitch{p})
			continue
		}
		c, err := chord.Parse(arg, octave)
		if err != nil {
			return nil, err
		}
		groups = append(groups, c.Notes())
	}
	return groups, nil
}
