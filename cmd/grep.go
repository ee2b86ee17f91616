package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/query"
)

var flagGrepScope string

var grepCmd = &cobra.Command{
	Use:   "grep <pattern> [contextLines]",
	Short: "Search file contents across the corpus",
	Long: `Line-oriented search across the scope's corpus files, with optional
context lines around each match. The pattern is a regular expression; if it
does not compile it is matched as a literal substring. Output per collection
is capped to keep terminal output bounded.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGrep,
}

func init() {
	grepCmd.Flags().StringVar(&flagGrepScope, "scope", "all", "Collection to search: all, callables, aliases, or scripts")
	rootCmd.AddCommand(grepCmd)
}

func runGrep(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	scope, err := query.ParseScope(flagGrepScope)
	if err != nil {
		return err
	}

	contextLines := 0
	if len(args) > 1 {
		contextLines, err = strconv.Atoi(args[1])
		if err != nil || contextLines < 0 {
			return fmt.Errorf("contextLines must be a non-negative integer, got %q", args[1])
		}
	}

	matches := query.Grep(cfg, args[0], scope, contextLines)
	fmt.Printf("\nshelf grep %q (scope: %s)\n\n", args[0], scope)
	if len(matches) == 0 {
		printMiss("", "nothing matched")
		printCount(0)
		return query.ErrNoMatches
	}

	for i, m := range matches {
		if i > 0 && contextLines > 0 {
			fmt.Println("  --")
		}
		for j, line := range m.Before {
			fmt.Printf("  %s:%d  %s\n", m.Path, m.LineNum-len(m.Before)+j, line)
		}
		fmt.Printf("  %s:%d> %s\n", m.Path, m.LineNum, strings.TrimRight(m.Line, " \t"))
		for j, line := range m.After {
			fmt.Printf("  %s:%d  %s\n", m.Path, m.LineNum+1+j, line)
		}
	}
	printCount(len(matches))
	return nil
}
