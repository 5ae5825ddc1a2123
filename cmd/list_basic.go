package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"ti99tape/tape/basic"
)

var listBasicHeader bool

var listBasicCmd = &cobra.Command{
	Use:                   "list-basic FILE",
	Short:                 "List a recovered TI BASIC / Extended BASIC program image",
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrapf(err, "reading %s", args[0]))
			os.Exit(1)
		}

		if listBasicHeader {
			h, err := basic.ParseHeader(data)
			if err != nil {
				fmt.Fprintln(os.Stderr, errors.Wrap(err, "parsing header"))
				os.Exit(1)
			}
			fmt.Println("Header:")
			fmt.Printf("  checksum word:    0x%04x\n", h.ChkWord)
			fmt.Printf("  line table start: 0x%04x\n", h.LineTableStart)
			fmt.Printf("  line table end:   0x%04x\n", h.LineTableEnd)
			fmt.Printf("  memory end:       0x%04x\n", h.MemoryEnd)
			if h.Protected() {
				fmt.Println("  program is protected (Extended BASIC)")
			}
			fmt.Println()
		}

		lines, err := basic.Decode(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "decoding"))
			os.Exit(1)
		}
		for _, line := range lines {
			fmt.Println(line.String())
		}
	},
}

func init() {
	listBasicCmd.Flags().BoolVar(&listBasicHeader, "header", false, "print the parsed program header before the listing")
	rootCmd.AddCommand(listBasicCmd)
}
