package main

import (
	"github.com/leandrodaf/lilymidi/internal/logger"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"github.com/leandrodaf/lilymidi/sdk/midi"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "lilymidi",
	Short: "Live MIDI input for LilyPond",
	Long: `lilymidi listens to a MIDI keyboard and prints every note or chord you play
as LilyPond input, spelled for the current key signature.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, error or fatal")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs as JSON lines to this file instead of stderr")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// newClient builds the logger from the persistent flags and the MIDI client
// that shares it.
func newClient() (contracts.Logger, contracts.ClientMIDI, error) {
	level, err := contracts.ParseLogLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	log := logger.NewZapLogger()

	opts := []contracts.Option{
		contracts.WithLogger(log),
		contracts.WithLogLevel(level),
	}
	if logFile != "" {
		opts = append(opts, contracts.WithLogFile(logFile))
	}
	client, err := midi.NewMIDIClient(opts...)
	if err != nil {
		return nil, nil, err
	}
	return log, client, nil
}
