package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ti99tape/storage"
	"ti99tape/tape/tifiles"
)

var tifileName string

var tifileCmd = &cobra.Command{
	Use:                   "tifile FILE",
	Short:                 "Wrap a raw recovered program in a TIFILES container",
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrapf(err, "opening %s", args[0]))
			os.Exit(1)
		}
		defer f.Close()

		data, err := storage.NewReader(f).ReadAll()
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "reading"))
			os.Exit(1)
		}

		name := tifileName
		if name == "" {
			base := filepath.Base(args[0])
			name = strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))
		}

		out := tifiles.Wrap(data, name)
		outPath := name + ".tifile"
		if err := os.WriteFile(outPath, out, 0644); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrapf(err, "writing %s", outPath))
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", outPath)
	},
}

func init() {
	tifileCmd.Flags().StringVar(&tifileName, "name", "", "TIFILES filename field (default: derived from the input filename)")
	rootCmd.AddCommand(tifileCmd)
}
