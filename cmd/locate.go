package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/query"
)

var locateCmd = &cobra.Command{
	Use:   "locate <name>",
	Short: "Look an entry up by exact name",
	Long: `Look name up in the index (callables first, then aliases, then
scripts). On a miss the corpus is searched directly, and near-miss names are
suggested.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	doc, err := loadDocOrNil(cfg)
	if err != nil {
		return err
	}

	m, suggestions, err := query.LocateExact(doc, cfg, args[0])
	if err != nil {
		printMiss("", fmt.Sprintf("no entry named %q", args[0]))
		if len(suggestions) > 0 {
			fmt.Println("\nDid you mean:")
			for _, s := range suggestions {
				fmt.Printf("  - %s\n", s)
			}
		}
		return err
	}

	printOK(string(m.Kind), m.Entry.SourcePath)
	if m.Entry.Description != "" {
		printInfo("", m.Entry.Description)
	}
	replaceSession(cfg, []query.Match{*m})
	return nil
}
