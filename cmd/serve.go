package cmd

import (
	"log"

	"github.com/jsphweid/harmonia/server"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long:  `Serves pitches, intervals, chords and scales as JSON over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}
		log.Fatal(server.New(cfg).ListenAndServe())
	},
}
