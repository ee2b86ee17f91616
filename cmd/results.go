package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"shelf-cli/internal/config"
	"shelf-cli/internal/index"
	"shelf-cli/internal/query"
	"shelf-cli/internal/session"
)

// loadDocOrNil loads the index document, mapping an absent index to nil so
// callers can take the direct-filesystem slow path. Any other load error is
// fatal.
func loadDocOrNil(cfg *config.Config) (*index.Document, error) {
	doc, err := index.Load(cfg.IndexPath)
	if err != nil {
		if err == index.ErrNotFound {
			log.Debug("no index document, using slow path", "path", cfg.IndexPath)
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// printMatches renders result rows as an aligned table.
func printMatches(matches []query.Match) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, m := range matches {
		desc := m.Entry.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "  %d.\t[%s]\t%s\t%s\t%s\n", i+1, m.Kind, m.Entry.Name, m.Entry.Category, desc)
	}
	_ = w.Flush()
}

// replaceSession installs the matches' names as the active result session so
// next/prev/first/last can walk them. Session write failures only warn; a
// successful query should not fail because session persistence did.
func replaceSession(cfg *config.Config, matches []query.Match) {
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Entry.Name
	}
	if err := session.NewManager(cfg.SessionsDir).Replace(names); err != nil {
		log.Warn("cannot persist result session", "err", err)
	}
}
