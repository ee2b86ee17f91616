package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Layout names the corpus subtrees each collection is scanned from.
type Layout struct {
	FunctionsDir string
	AliasesDir   string
	ScriptDirs   []string

	// Extensions filters files in the functions and aliases subtrees.
	// Script subtrees accept any regular non-hidden file.
	Extensions []string
}

type kind int

const (
	kindCallable kind = iota
	kindAlias
	kindScript
)

type scanned struct {
	kind       kind
	rel        string
	entry      Entry
	aliasCount int
	executable bool
	readable   bool
}

// Corpus walks the configured subtrees under root and partitions the
// extracted entries into typed collections. Missing subtrees are skipped;
// unreadable files are counted as warnings, never as failures. Extraction
// runs on a bounded worker pool; results are merged in sorted relative-path
// order so duplicate names resolve deterministically (last write wins).
func Corpus(root string, layout Layout) (*Collections, error) {
	files := listFiles(root, layout)

	results := make([]scanned, 0, len(files))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(poolSize())
	for _, f := range files {
		f := f
		g.Go(func() error {
			entry, content, ok := extractFile(f.path, f.rel)
			s := scanned{kind: f.kind, rel: f.rel, entry: entry, readable: ok}
			switch f.kind {
			case kindAlias:
				s.aliasCount = countAliases(content)
			case kindScript:
				s.executable = f.executable
			}
			mu.Lock()
			results = append(results, s)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; unreadable files are warnings

	sort.Slice(results, func(i, j int) bool { return results[i].rel < results[j].rel })

	out := &Collections{
		Callables:  make(map[string]CallableEntry),
		Aliases:    make(map[string]AliasEntry),
		Scripts:    make(map[string]ScriptEntry),
		Categories: make(map[string]CategoryEntry),
	}
	for _, r := range results {
		if !r.readable {
			out.Warnings++
		}
		switch r.kind {
		case kindCallable:
			out.Callables[r.entry.Name] = CallableEntry{Entry: r.entry}
		case kindAlias:
			out.Aliases[r.entry.Name] = AliasEntry{Entry: r.entry, AliasCount: r.aliasCount}
		case kindScript:
			out.Scripts[r.entry.Name] = ScriptEntry{Entry: r.entry, Executable: r.executable}
		}
	}
	deriveCategories(out)

	log.Info("scan complete",
		"callables", len(out.Callables),
		"aliases", len(out.Aliases),
		"scripts", len(out.Scripts),
		"categories", len(out.Categories),
		"warnings", out.Warnings)
	return out, nil
}

type corpusFile struct {
	kind       kind
	path       string
	rel        string
	executable bool
}

// listFiles collects every eligible file across the configured subtrees.
func listFiles(root string, layout Layout) []corpusFile {
	var files []corpusFile

	collect := func(sub string, k kind) {
		dir := filepath.Join(root, sub)
		if _, err := os.Stat(dir); err != nil {
			log.Debug("subtree missing, skipping", "dir", dir)
			return
		}
		log.Info("scanning", "dir", dir)
		walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn("walk error, skipping", "path", path, "err", err)
				return nil
			}
			if d.IsDir() {
				// Prune hidden directories (.git and friends) wholesale.
				if strings.HasPrefix(d.Name(), ".") && path != dir {
					return fs.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			if k != kindScript && !hasExt(d.Name(), layout.Extensions) {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil
			}
			f := corpusFile{kind: k, path: path, rel: rel}
			if k == kindScript {
				if info, err := d.Info(); err == nil {
					f.executable = info.Mode().Perm()&0o111 != 0
				}
			}
			files = append(files, f)
			return nil
		})
		if walkErr != nil {
			log.Warn("cannot walk subtree", "dir", dir, "err", walkErr)
		}
	}

	collect(layout.FunctionsDir, kindCallable)
	collect(layout.AliasesDir, kindAlias)
	for _, sub := range layout.ScriptDirs {
		collect(sub, kindScript)
	}
	return files
}

// deriveCategories counts callables per immediate parent directory.
func deriveCategories(c *Collections) {
	for _, e := range c.Callables {
		cat, ok := c.Categories[e.Category]
		if !ok {
			cat = CategoryEntry{Name: e.Category, Path: filepath.Dir(e.SourcePath)}
		}
		cat.CallableCount++
		c.Categories[e.Category] = cat
	}
}

func hasExt(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

func poolSize() int {
	n := runtime.NumCPU()
	if n > 8 {
		n = 8
	}
	if n < 1 {
		n = 1
	}
	return n
}
