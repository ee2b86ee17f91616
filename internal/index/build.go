package index

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"shelf-cli/internal/config"
	"shelf-cli/internal/scan"
)

// Build performs a full rebuild of the index for cfg's corpus and installs
// the resulting document at cfg.IndexPath.
func Build(cfg *config.Config) (*Document, error) {
	start := time.Now()

	cols, err := scan.Corpus(cfg.CorpusRoot, layoutFrom(cfg))
	if err != nil {
		return nil, err
	}

	doc := &Document{
		SchemaVersion: SchemaVersion,
		LastUpdatedAt: buildTimestamp(cfg.IndexPath, start),
		CorpusRoot:    cfg.CorpusRoot,
		Statistics: Statistics{
			TotalCallables:           len(cols.Callables),
			TotalAliases:             len(cols.Aliases),
			TotalScripts:             len(cols.Scripts),
			TotalCategories:          len(cols.Categories),
			LastBuildDurationSeconds: time.Since(start).Seconds(),
		},
		Callables:  cols.Callables,
		Aliases:    cols.Aliases,
		Scripts:    cols.Scripts,
		Categories: cols.Categories,
	}

	if err := write(cfg.IndexPath, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Refresh loads the current document and rebuilds when any corpus file is
// newer than it (or an indexed file vanished). The boolean reports whether a
// rebuild happened. An absent index always triggers a build.
func Refresh(cfg *config.Config) (*Document, bool, error) {
	doc, err := Load(cfg.IndexPath)
	if err != nil {
		if err == ErrNotFound {
			built, berr := Build(cfg)
			return built, true, berr
		}
		return nil, false, err
	}

	since, err := time.Parse(time.RFC3339, doc.LastUpdatedAt)
	if err != nil {
		// Unparseable timestamp: treat the document as stale.
		since = time.Time{}
	}

	if !corpusChanged(cfg, doc, since) {
		log.Debug("index up to date", "path", cfg.IndexPath)
		return doc, false, nil
	}

	built, err := Build(cfg)
	return built, true, err
}

// corpusChanged reports whether any file under the scanned subtrees was
// modified after since, or whether any indexed source file no longer exists.
func corpusChanged(cfg *config.Config, doc *Document, since time.Time) bool {
	subs := append([]string{cfg.FunctionsDir, cfg.AliasesDir}, cfg.ScriptDirs...)
	for _, sub := range subs {
		dir := filepath.Join(cfg.CorpusRoot, sub)
		changed := false
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err == nil && info.ModTime().After(since) {
				changed = true
				return fs.SkipAll
			}
			return nil
		})
		if changed {
			return true
		}
	}

	for _, e := range doc.Callables {
		if _, err := os.Stat(e.SourcePath); err != nil {
			return true
		}
	}
	for _, e := range doc.Aliases {
		if _, err := os.Stat(e.SourcePath); err != nil {
			return true
		}
	}
	for _, e := range doc.Scripts {
		if _, err := os.Stat(e.SourcePath); err != nil {
			return true
		}
	}
	return false
}

// buildTimestamp returns now in RFC3339 UTC, clamped so the persisted
// timestamp never moves backwards across rebuilds of the same document.
func buildTimestamp(path string, now time.Time) string {
	stamp := now.UTC().Truncate(time.Second)
	if prev, err := Load(path); err == nil {
		if t, perr := time.Parse(time.RFC3339, prev.LastUpdatedAt); perr == nil && t.After(stamp) {
			return prev.LastUpdatedAt
		}
	}
	return stamp.Format(time.RFC3339)
}

func layoutFrom(cfg *config.Config) scan.Layout {
	return scan.Layout{
		FunctionsDir: cfg.FunctionsDir,
		AliasesDir:   cfg.AliasesDir,
		ScriptDirs:   cfg.ScriptDirs,
		Extensions:   cfg.Extensions,
	}
}

// Describe returns a short human-readable summary line for stats output.
func (d *Document) Describe() string {
	return fmt.Sprintf("%d callables, %d aliases, %d scripts, %d categories",
		d.Statistics.TotalCallables, d.Statistics.TotalAliases,
		d.Statistics.TotalScripts, d.Statistics.TotalCategories)
}
