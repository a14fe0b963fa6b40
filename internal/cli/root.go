// Package cli implements the biofilter command line interface. All
// interactivity, logging and file I/O lives here; the conditioning
// packages only see parsed series and signal types.
package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "biofilter",
	Short: "Bandpass conditioning for ECG/EEG recordings",
	Long: `biofilter loads a single-channel biomedical recording, estimates its
sampling rate from the embedded timestamps, and applies a zero-phase
Butterworth bandpass tuned to the signal type (ECG or EEG).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
		}).Level(level).With().Timestamp().Logger()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
}
