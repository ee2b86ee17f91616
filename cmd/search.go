package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/query"
)

var (
	flagSearchScope     string
	flagSearchCountOnly bool
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search indexed entries by substring",
	Long: `Search name, description, category, and usage fields of every entry
in scope for a case-insensitive substring. Scope "content" searches file
contents line by line instead of the index. When no index exists the search
falls back to scanning filenames directly (slower, no descriptions).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchScope, "scope", "all", "Collection to search: all, callables, aliases, scripts, or content")
	searchCmd.Flags().BoolVar(&flagSearchCountOnly, "count-only", false, "Print only the match count")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	scope, err := query.ParseScope(flagSearchScope)
	if err != nil {
		return err
	}
	term := strings.Join(args, " ")

	if scope == query.ScopeContent {
		return runSearchContent(cfg, term)
	}

	doc, err := loadDocOrNil(cfg)
	if err != nil {
		return err
	}

	var matches []query.Match
	if doc != nil {
		matches = query.Search(doc, term, scope)
	} else {
		printWarn("", "no index found — searching filenames directly (run 'shelf build' for metadata search)")
		matches = query.SearchFiles(cfg, term, scope)
	}

	if flagSearchCountOnly {
		fmt.Println(len(matches))
		if len(matches) == 0 {
			return query.ErrNoMatches
		}
		return nil
	}

	fmt.Printf("\nshelf search %q (scope: %s)\n\n", term, scope)
	if len(matches) == 0 {
		printMiss("", "nothing matched")
		printCount(0)
		return query.ErrNoMatches
	}

	printMatches(matches)
	replaceSession(cfg, matches)
	printCount(len(matches))
	return nil
}

func runSearchContent(cfg *config.Config, term string) error {
	matches := query.SearchContent(cfg, term)

	if flagSearchCountOnly {
		fmt.Println(len(matches))
		if len(matches) == 0 {
			return query.ErrNoMatches
		}
		return nil
	}

	fmt.Printf("\nshelf search %q (scope: content)\n\n", term)
	if len(matches) == 0 {
		printMiss("", "nothing matched")
		printCount(0)
		return query.ErrNoMatches
	}
	for _, m := range matches {
		fmt.Printf("  %s:%d: %s\n", m.Path, m.LineNum, strings.TrimSpace(m.Line))
	}
	printCount(len(matches))
	return nil
}
