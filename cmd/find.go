package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/query"
)

var flagFindScope string

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "Match corpus filenames against a glob pattern",
	Long: `Match filenames in the scope's subtree against a glob pattern
(*, ?, [...]). Works directly on the filesystem; the index is not consulted.

Example:
  shelf find 'git*'
  shelf find '*backup*' --scope=scripts`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVar(&flagFindScope, "scope", "all", "Collection to search: all, callables, aliases, or scripts")
	rootCmd.AddCommand(findCmd)
}

func runFind(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	scope, err := query.ParseScope(flagFindScope)
	if err != nil {
		return err
	}

	matches, err := query.FindByPattern(cfg, args[0], scope)
	if err != nil {
		return err
	}

	fmt.Printf("\nshelf find %q (scope: %s)\n\n", args[0], scope)
	if len(matches) == 0 {
		printMiss("", "nothing matched")
		printCount(0)
		return query.ErrNoMatches
	}

	for _, m := range matches {
		fmt.Printf("  [%s] %s\n", m.Kind, m.Entry.RelativePath)
	}
	replaceSession(cfg, matches)
	printCount(len(matches))
	return nil
}
