package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"shelf-cli/internal/index"
	"shelf-cli/internal/query"
	"shelf-cli/internal/session"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:          "shelf",
	Short:        "Shelf CLI — index and search your shell script library",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Shelf scans a library of shell functions, aliases, and scripts under
a corpus root (default ~/.shelf/repo), extracts header metadata into a JSON
index, and answers search, locate, sort, and grep queries against it.`,
	PersistentPreRun: func(*cobra.Command, []string) {
		log.SetOutput(os.Stderr)
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Print scan progress and debug information to stderr")
}

// Execute is called by main.go. Exit codes: 0 success, 1 nothing found,
// 2 hard failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, query.ErrNoMatches) ||
			errors.Is(err, session.ErrEmpty) ||
			errors.Is(err, index.ErrNotFound) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
