package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/index"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	doc, err := index.Load(cfg.IndexPath)
	if err != nil {
		if err == index.ErrNotFound {
			printMiss("", fmt.Sprintf("no index at %s — run 'shelf build'", cfg.IndexPath))
		}
		return err
	}

	printSection("Index Stats")
	fmt.Printf("Corpus root:  %s\n", doc.CorpusRoot)
	fmt.Printf("Last updated: %s\n", doc.LastUpdatedAt)
	fmt.Printf("Last build:   %.2fs\n", doc.Statistics.LastBuildDurationSeconds)
	fmt.Printf("Contents:     %s\n", doc.Describe())

	if len(doc.Categories) > 0 {
		fmt.Println("\nCategories:")
		names := make([]string, 0, len(doc.Categories))
		for name := range doc.Categories {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, name := range names {
			c := doc.Categories[name]
			fmt.Fprintf(w, "  %s\t%d callables\n", c.Name, c.CallableCount)
		}
		_ = w.Flush()
	}
	return nil
}
