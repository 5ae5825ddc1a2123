package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ti99tape/tape/encoder"
	"ti99tape/wavio"
)

var encodeHPF bool

var encodeCmd = &cobra.Command{
	Use:                   "encode INPUT OUTPUT.wav",
	Short:                 "Encode a raw recovered byte stream as TI-99/4A cassette tape audio",
	Args:                  cobra.ExactArgs(2),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrapf(err, "reading %s", args[0]))
			os.Exit(1)
		}

		sink := &sampleSliceSink{}
		enc := encoder.New(sink, encodeHPF)
		if err := enc.Encode(data); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "encoding"))
			os.Exit(1)
		}

		if err := wavio.WriteMono(args[1], sink.samples, wavio.SampleRate); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "writing wav"))
			os.Exit(1)
		}
		fmt.Printf("encoded %d bytes to %s\n", len(data), args[1])
	},
}

type sampleSliceSink struct {
	samples []int16
}

func (s *sampleSliceSink) WriteSample(sample int16) {
	s.samples = append(s.samples, sample)
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeHPF, "hpf", false, "apply a high-pass filter to the generated waveform, matching real tape deck response")
	rootCmd.AddCommand(encodeCmd)
}
