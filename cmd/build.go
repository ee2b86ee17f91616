package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/index"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the script index from the corpus",
	Long: `Scan the corpus root and rebuild the full index document. The new
document is written to a temporary file and installed atomically, so a
concurrent reader (or an interrupted build) never observes a half-written
index.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the index only if the corpus changed",
	Args:  cobra.NoArgs,
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(refreshCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	printSection("Build")
	doc, err := index.Build(cfg)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	printOK("", fmt.Sprintf("indexed %s in %.2fs", doc.Describe(), doc.Statistics.LastBuildDurationSeconds))
	printInfo("", fmt.Sprintf("index written: %s", cfg.IndexPath))
	return nil
}

func runRefresh(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	doc, rebuilt, err := index.Refresh(cfg)
	if err != nil {
		return fmt.Errorf("index refresh failed: %w", err)
	}
	if rebuilt {
		printOK("", fmt.Sprintf("index rebuilt: %s", doc.Describe()))
	} else {
		printInfo("", "index up to date")
	}
	return nil
}
