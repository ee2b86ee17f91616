package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the shelf directory and a default config file",
	Long: `Initialize ~/.shelf/: write shelf.yaml with the default settings if
none exists, and create the corpus subtrees so scripts can be dropped in
right away.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	dir, err := config.ShelfDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("shelf directory ready: %s", dir))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", cfgPath))
	} else {
		printInfo("", fmt.Sprintf("config already exists: %s", cfgPath))
	}

	for _, sub := range append([]string{cfg.FunctionsDir, cfg.AliasesDir}, cfg.ScriptDirs...) {
		if err := os.MkdirAll(filepath.Join(cfg.CorpusRoot, sub), 0o755); err != nil {
			return fmt.Errorf("cannot create corpus subtree %s: %w", sub, err)
		}
	}
	printOK("", fmt.Sprintf("corpus root ready: %s", cfg.CorpusRoot))
	printInfo("", "drop scripts into the corpus and run 'shelf build'")
	return nil
}
