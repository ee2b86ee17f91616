package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/fuzzy"
	"shelf-cli/internal/query"
)

var fuzzyCmd = &cobra.Command{
	Use:   "fuzzy [term]",
	Short: "Pick an entry interactively with an external fuzzy filter",
	Long: `Feed every indexed entry to an external fuzzy-filter utility
(fzf by default, override with fuzzy_command or SHELF_FUZZY) and act on the
selection. When the utility is not installed this falls back to a plain
non-interactive search.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFuzzy,
}

func init() {
	rootCmd.AddCommand(fuzzyCmd)
}

func runFuzzy(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initial := ""
	if len(args) > 0 {
		initial = args[0]
	}

	picker := fuzzy.NewExecPicker(cfg.FuzzyCommand)
	if !picker.Available() {
		// A missing fuzzy utility degrades to a plain search; an empty term
		// lists everything, mirroring what the picker would have offered.
		printWarn("", fmt.Sprintf("%s not found on PATH — falling back to plain search", cfg.FuzzyCommand))
		flagSearchScope = "all"
		return runSearch(nil, []string{initial})
	}

	candidates, err := fuzzyCandidates(cfg)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		printMiss("", "corpus is empty")
		return query.ErrNoMatches
	}

	selected, err := picker.Pick(candidates, initial)
	if err != nil {
		return err
	}
	if selected == nil {
		printInfo("", "no selection")
		return nil
	}

	return actOnSelection(selected)
}

// fuzzyCandidates builds the flat pick list from the index document, or from
// a direct filesystem scan when no index exists.
func fuzzyCandidates(cfg *config.Config) ([]fuzzy.Candidate, error) {
	doc, err := loadDocOrNil(cfg)
	if err != nil {
		return nil, err
	}

	var matches []query.Match
	if doc != nil {
		matches = query.Search(doc, "", query.ScopeAll)
	} else {
		matches = query.SearchFiles(cfg, "", query.ScopeAll)
	}

	out := make([]fuzzy.Candidate, len(matches))
	for i, m := range matches {
		out[i] = fuzzy.Candidate{
			Kind:        string(m.Kind),
			Name:        m.Entry.Name,
			Description: m.Entry.Description,
			Path:        m.Entry.SourcePath,
		}
	}
	return out, nil
}

// actOnSelection offers view/edit/path actions against the selected file.
func actOnSelection(c *fuzzy.Candidate) error {
	fmt.Printf("\nSelected: [%s] %s\n", c.Kind, c.Name)
	fmt.Print("Action — [v]iew, [e]dit, [p]ath (default): ")

	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "v":
		data, err := os.ReadFile(c.Path)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", c.Path, err)
		}
		fmt.Println(string(data))
	case "e":
		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}
		ed := exec.Command(editor, c.Path)
		ed.Stdin = os.Stdin
		ed.Stdout = os.Stdout
		ed.Stderr = os.Stderr
		if err := ed.Run(); err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}
	default:
		fmt.Println(c.Path)
	}
	return nil
}
