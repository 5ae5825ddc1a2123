package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ti99tape/tape"
	"ti99tape/tape/bitproc"
	"ti99tape/tape/dataproc"
	"ti99tape/tape/profile"
	"ti99tape/tape/signal"
	"ti99tape/wavio"
)

var (
	decodeProfile     string
	decodeFilePrefix  string
	decodeChannel     int
	decodeDebugWavePath string
)

var decodeCmd = &cobra.Command{
	Use:                   "decode FILE",
	Short:                 "Decode a TI-99/4A cassette tape capture",
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		if decodeProfile == "list" {
			printProfiles()
			return
		}

		prof, ok := profile.Get(decodeProfile)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown profile %q; run with --profile=list to see available profiles\n", decodeProfile)
			os.Exit(1)
		}

		samples, _, err := wavio.ReadMono(args[0], decodeChannel)
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading capture"))
			os.Exit(1)
		}

		diag := &tape.DiagnosticLog{}
		files := &fileProgramSink{prefix: decodeFilePrefix}

		dp := dataproc.New(files, diag)
		bp := bitproc.New(prof.Config, dp)
		sp := signal.New(prof.Config, bp)

		var debugChannels [6][]int16
		if decodeDebugWavePath != "" {
			sp.SetDebugSink(func(f signal.DebugFrame) {
				debugChannels[0] = append(debugChannels[0], f.Sample)
				debugChannels[1] = append(debugChannels[1], f.Level)
				debugChannels[2] = append(debugChannels[2], f.RangeMax)
				debugChannels[3] = append(debugChannels[3], f.RangeMin)
				debugChannels[4] = append(debugChannels[4], f.Threshold)
				debugChannels[5] = append(debugChannels[5], f.Peak)
			})
		}

		for _, s := range samples {
			sp.ProcessSample(s)
		}
		sp.ProcessEOF()

		if decodeDebugWavePath != "" {
			chans := make([][]int16, 6)
			for i := range debugChannels {
				chans[i] = debugChannels[i]
			}
			if err := wavio.WriteInterleaved(decodeDebugWavePath, chans, wavio.SampleRate); err != nil {
				fmt.Fprintln(os.Stderr, errors.Wrap(err, "writing debug wave"))
			}
		}

		for _, d := range diag.Entries {
			fmt.Println(d)
		}
	},
}

func printProfiles() {
	fmt.Println("Available profiles:")
	for _, name := range profile.Names() {
		fmt.Printf("  %s\n", profile.Describe(name))
	}
}

type fileProgramSink struct {
	prefix string
}

func (s *fileProgramSink) EmitProgram(index int, program tape.Program) {
	filename := fmt.Sprintf("%s%03d.dat", s.prefix, index)
	if err := os.WriteFile(filename, program.Data, 0644); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrapf(err, "writing %s", filename))
		return
	}
	fmt.Printf("wrote %s (%d records)\n", filename, program.RecordCount)
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeProfile, "profile", "p", profile.Default, "decoder profile to use; 'list' prints the available profiles")
	decodeCmd.Flags().StringVar(&decodeFilePrefix, "file-prefix", "tape_", "output filename prefix")
	decodeCmd.Flags().IntVar(&decodeChannel, "channel", 0, "input audio channel to decode")
	decodeCmd.Flags().StringVar(&decodeDebugWavePath, "debug-wave", "", "dump the envelope tracker's internal state to a 6-channel debug WAV file")
	rootCmd.AddCommand(decodeCmd)
}
