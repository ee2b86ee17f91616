package query

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"shelf-cli/internal/config"
	"shelf-cli/internal/index"
	"shelf-cli/internal/scan"
)

// Match is one result row. Entry carries the shared metadata view of the
// underlying collection entry.
type Match struct {
	Kind  Kind
	Entry scan.Entry
}

// contentScopeLimit bounds content-scope matches inside a unified search.
const contentScopeLimit = 30

// Search returns every entry in scope whose name, description, category, or
// usage contains term, case-folded. Output is ordered by (kind, name) so
// repeated calls with an unchanged document are identical.
func Search(doc *index.Document, term string, scope Scope) []Match {
	t := fold(term)
	var out []Match

	if scope == ScopeAll || scope == ScopeCallables {
		for _, e := range doc.Callables {
			if entryMatches(e.Entry, t) {
				out = append(out, Match{Kind: KindCallable, Entry: e.Entry})
			}
		}
	}
	if scope == ScopeAll || scope == ScopeAliases {
		for _, e := range doc.Aliases {
			if entryMatches(e.Entry, t) {
				out = append(out, Match{Kind: KindAlias, Entry: e.Entry})
			}
		}
	}
	if scope == ScopeAll || scope == ScopeScripts {
		for _, e := range doc.Scripts {
			if entryMatches(e.Entry, t) {
				out = append(out, Match{Kind: KindScript, Entry: e.Entry})
			}
		}
	}

	sortMatches(out)
	return out
}

func entryMatches(e scan.Entry, foldedTerm string) bool {
	for _, field := range []string{e.Name, e.Description, e.Category, e.Usage} {
		if strings.Contains(fold(field), foldedTerm) {
			return true
		}
	}
	return false
}

// SearchFiles is the slow path used when no index document exists: it walks
// the scope's subtrees and matches folded basenames. No header metadata is
// available on this path.
func SearchFiles(cfg *config.Config, term string, scope Scope) []Match {
	t := fold(term)
	var out []Match

	for _, st := range scopeSubtrees(cfg, scope) {
		dir := filepath.Join(cfg.CorpusRoot, st.sub)
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if ok, werr := pruneWalk(d, path, dir); !ok {
				return werr
			}
			name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			if !strings.Contains(fold(name), t) {
				return nil
			}
			rel, rerr := filepath.Rel(cfg.CorpusRoot, path)
			if rerr != nil {
				rel = path
			}
			out = append(out, Match{Kind: st.kind, Entry: scanEntry(name, path, rel)})
			return nil
		})
	}

	sortMatches(out)
	return out
}

type subtree struct {
	sub  string
	kind Kind
}

// pruneWalk applies the shared hidden-entry policy of the corpus walks:
// hidden directories (.git and friends) are pruned wholesale, hidden files
// and directory entries are skipped. The boolean reports whether the entry
// is a candidate file.
func pruneWalk(d fs.DirEntry, path, walkRoot string) (bool, error) {
	if d.IsDir() {
		if strings.HasPrefix(d.Name(), ".") && path != walkRoot {
			return false, fs.SkipDir
		}
		return false, nil
	}
	if strings.HasPrefix(d.Name(), ".") {
		return false, nil
	}
	return true, nil
}

// scopeSubtrees maps a scope to the corpus subtrees it covers. Content scope
// spans all of them.
func scopeSubtrees(cfg *config.Config, scope Scope) []subtree {
	var out []subtree
	if scope == ScopeAll || scope == ScopeContent || scope == ScopeCallables {
		out = append(out, subtree{cfg.FunctionsDir, KindCallable})
	}
	if scope == ScopeAll || scope == ScopeContent || scope == ScopeAliases {
		out = append(out, subtree{cfg.AliasesDir, KindAlias})
	}
	if scope == ScopeAll || scope == ScopeContent || scope == ScopeScripts {
		for _, s := range cfg.ScriptDirs {
			out = append(out, subtree{s, KindScript})
		}
	}
	return out
}

// scanEntry builds the minimal filesystem-derived Entry used on paths that
// bypass the index document.
func scanEntry(name, fp, rel string) scan.Entry {
	return scan.Entry{
		Name:         name,
		Category:     filepath.Base(filepath.Dir(fp)),
		SourcePath:   fp,
		RelativePath: filepath.ToSlash(rel),
	}
}

func sortMatches(ms []Match) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].Kind != ms[j].Kind {
			return ms[i].Kind < ms[j].Kind
		}
		return ms[i].Entry.Name < ms[j].Entry.Name
	})
}
