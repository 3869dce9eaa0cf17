// Command electorium is the §6 CLI harness around the resolver: a
// --manual mode that reads one election case from standard input and
// prints the winner's identity, for ad-hoc testing and scripting
// against the core without writing Go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	exitOK              = 0
	exitMalformedInput  = 1
	exitInvariantBroken = 2
)

var (
	manual  bool
	verbose bool
	format  string
)

var rootCmd = &cobra.Command{
	Use:   "electorium",
	Short: "Resolve a delegated-vote election to its single winner",
	Long: `electorium runs the delegated-vote election resolver against a single
case read from standard input.

With --manual, standard input holds one election case in the format
named by --format ("text", the default §6 line format, or "binary",
fuzzcompile's compiled format); the winning candidate's identity is
printed to standard output followed by a newline.`,
	RunE: runManual,
}

func init() {
	rootCmd.Flags().BoolVar(&manual, "manual", false, "read one election case from standard input and print the winner")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to standard error")
	rootCmd.Flags().StringVar(&format, "format", "text", `input format: "text" or "binary"`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "electorium:", err)
		os.Exit(exitCodeFor(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}

	return l
}
