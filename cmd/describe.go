package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/query"
)

var flagDescribeSource bool

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show full metadata for one entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().BoolVar(&flagDescribeSource, "source", false, "Also print the entry's file contents")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(_ *cobra.Command, args []string) error {
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
		for _, s := range suggestions {
			fmt.Printf("  - did you mean %s?\n", s)
		}
		return err
	}

	e := m.Entry
	printSection(e.Name)
	field := func(label, value string) {
		if value != "" {
			fmt.Printf("%-14s %s\n", label+":", value)
		}
	}
	field("Kind", string(m.Kind))
	field("Category", e.Category)
	field("Path", e.SourcePath)
	field("Description", e.Description)
	field("Usage", e.Usage)
	field("Requirements", e.Requirements)
	field("Version", e.Version)
	field("Author", e.Author)
	if len(e.DeclaredUnits) > 0 {
		field("Defines", strings.Join(e.DeclaredUnits, ", "))
	}
	if e.SizeBytes > 0 {
		field("Size", fmt.Sprintf("%d B, %d lines", e.SizeBytes, e.LineCount))
	}
	if e.ModifiedAt > 0 {
		field("Modified", time.Unix(e.ModifiedAt, 0).UTC().Format(time.RFC3339))
	}

	if flagDescribeSource {
		data, err := os.ReadFile(e.SourcePath)
		if err != nil {
			return fmt.Errorf("cannot read source %s: %w", e.SourcePath, err)
		}
		fmt.Printf("\n%s\n", string(data))
	}
	return nil
}
