// Package cmd implements the ti99tape command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	versionMajor = "0"
	versionMinor = "1"
)

var rootCmd = &cobra.Command{
	Use:     "ti99tape",
	Short:   "Recover and regenerate TI-99/4A cassette tape audio",
	Version: versionMajor + "." + versionMinor,
	Long: `ti99tape recovers the digital program recorded on a TI-99/4A cassette
tape from a captured WAV file, and can re-synthesize a tape-compatible
waveform from a recovered byte stream.`,
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
