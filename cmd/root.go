package cmd

import (
	"github.com/jsphweid/harmonia/config"
	"github.com/jsphweid/harmonia/constants"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "harmonia",
	Short: "Music theory on the command line",
	Long:  `Spell pitches, intervals, chords and scales, and move them in and out of MIDI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", constants.GetConfigPath(), "path to the YAML config file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
