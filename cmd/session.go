package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelf-cli/internal/config"
	"shelf-cli/internal/session"
)

var saveCmd = &cobra.Command{
	Use:   "save <sessionName>",
	Short: "Save the current result list under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		mgr, err := sessionManager()
		if err != nil {
			return err
		}
		s, err := mgr.Save(args[0])
		if err != nil {
			return err
		}
		printOK(args[0], fmt.Sprintf("saved %d results", len(s.Results)))
		return nil
	},
}

var recallCmd = &cobra.Command{
	Use:   "recall <sessionName>",
	Short: "Restore a saved result list",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		mgr, err := sessionManager()
		if err != nil {
			return err
		}
		s, err := mgr.Recall(args[0])
		if err != nil {
			return err
		}
		if len(s.Results) == 0 {
			printWarn(args[0], "session is empty")
			return nil
		}
		printOK(args[0], fmt.Sprintf("restored %d results (saved %s)", len(s.Results), s.SavedAt))
		printCursor(s)
		return nil
	},
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Move to the next result",
	Args:  cobra.NoArgs,
	RunE:  navRunE((*session.Manager).Next, "already at last result"),
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Move to the previous result",
	Args:  cobra.NoArgs,
	RunE:  navRunE((*session.Manager).Prev, "already at first result"),
}

var firstCmd = &cobra.Command{
	Use:   "first",
	Short: "Jump to the first result",
	Args:  cobra.NoArgs,
	RunE:  navRunE((*session.Manager).First, "already at first result"),
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Jump to the last result",
	Args:  cobra.NoArgs,
	RunE:  navRunE((*session.Manager).Last, "already at last result"),
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(recallCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(firstCmd)
	rootCmd.AddCommand(lastCmd)
}

func sessionManager() (*session.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return session.NewManager(cfg.SessionsDir), nil
}

// navRunE wraps one cursor movement. At-boundary moves report their position
// instead of erroring; an empty session surfaces session.ErrEmpty.
func navRunE(move func(*session.Manager) (*session.Session, bool, error), clampMsg string) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error {
		mgr, err := sessionManager()
		if err != nil {
			return err
		}
		s, moved, err := move(mgr)
		if err != nil {
			return err
		}
		if !moved {
			printInfo("", clampMsg)
		}
		printCursor(s)
		return nil
	}
}

func printCursor(s *session.Session) {
	fmt.Printf("  [%d/%d] %s\n", s.Cursor+1, len(s.Results), s.Results[s.Cursor])
}
