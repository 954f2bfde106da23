// Command avrolit is a small CLI front end for the avrolit transducer:
// transliterate text given as a command-line argument, or run the
// engine against a fixed set of known-good scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "avrolit",
		Short: "Roman-to-Bengali phonetic transliteration",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newParseCmd(), newValidateCmd())
	return root
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text]",
		Short: "transliterate the given text and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := defaultEngine()
			if err != nil {
				return fmt.Errorf("avrolit: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Parse(args[0]))
			return nil
		},
	}
}
