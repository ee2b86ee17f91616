package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/index"
	"shelf-cli/internal/query"
)

var sortCmd = &cobra.Command{
	Use:   "sort <criterion> [order] [scope]",
	Short: "List indexed entries sorted by a criterion",
	Long: `List the scope's entries sorted by name, size, date, lines, or
category, ascending or descending. Name breaks ties for every other
criterion. An unknown criterion sorts by name.

Example:
  shelf sort size desc
  shelf sort date asc callables`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

func runSort(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	criterion := query.ParseCriterion(args[0])
	order := query.Asc
	if len(args) > 1 {
		order = query.ParseOrder(args[1])
	}
	scope := query.ScopeAll
	if len(args) > 2 {
		if scope, err = query.ParseScope(args[2]); err != nil {
			return err
		}
	}

	doc, err := index.Load(cfg.IndexPath)
	if err != nil {
		if err == index.ErrNotFound {
			printMiss("", fmt.Sprintf("no index at %s — run 'shelf build'", cfg.IndexPath))
		}
		return err
	}

	rows := query.SortEntries(doc, scope, criterion, order)
	fmt.Printf("\nshelf sort %s (scope: %s)\n\n", criterion, scope)
	if len(rows) == 0 {
		printMiss("", "scope is empty")
		printCount(0)
		return query.ErrNoMatches
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, m := range rows {
		fmt.Fprintf(w, "  %d.\t[%s]\t%s\t%s\t%s\n",
			i+1, m.Kind, m.Entry.Name, m.Entry.Category, criterionValue(m, criterion))
	}
	_ = w.Flush()

	replaceSession(cfg, rows)
	printCount(len(rows))
	return nil
}

func criterionValue(m query.Match, c query.Criterion) string {
	switch c {
	case query.BySize:
		return fmt.Sprintf("%d B", m.Entry.SizeBytes)
	case query.ByDate:
		return time.Unix(m.Entry.ModifiedAt, 0).UTC().Format("2006-01-02")
	case query.ByLines:
		return fmt.Sprintf("%d lines", m.Entry.LineCount)
	case query.ByCategory:
		return m.Entry.Category
	default:
		return ""
	}
}
