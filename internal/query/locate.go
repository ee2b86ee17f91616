package query

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"shelf-cli/internal/config"
	"shelf-cli/internal/index"
)

// maxSuggestions bounds the "did you mean" list on a locate miss.
const maxSuggestions = 5

// LocateExact looks name up across the three collections, preferring
// callables over aliases over scripts. Suggestions are only populated on a
// miss, alongside ErrNoMatches. doc may be nil (no index), in which case the
// lookup goes straight to the filesystem.
func LocateExact(doc *index.Document, cfg *config.Config, name string) (*Match, []string, error) {
	if doc != nil {
		if e, ok := doc.Callables[name]; ok {
			return &Match{Kind: KindCallable, Entry: e.Entry}, nil, nil
		}
		if e, ok := doc.Aliases[name]; ok {
			return &Match{Kind: KindAlias, Entry: e.Entry}, nil, nil
		}
		if e, ok := doc.Scripts[name]; ok {
			return &Match{Kind: KindScript, Entry: e.Entry}, nil, nil
		}
	}

	// Filesystem fallback: exact basename first, then folded-contains for
	// suggestions.
	if m := locateFile(cfg, name); m != nil {
		return m, nil, nil
	}
	return nil, suggestNames(cfg, name), ErrNoMatches
}

func locateFile(cfg *config.Config, name string) *Match {
	var found *Match
	for _, st := range scopeSubtrees(cfg, ScopeAll) {
		if found != nil {
			break
		}
		dir := filepath.Join(cfg.CorpusRoot, st.sub)
		_ = filepath.WalkDir(dir, func(fp string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if ok, werr := pruneWalk(d, fp, dir); !ok {
				return werr
			}
			base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			if base != name && d.Name() != name {
				return nil
			}
			m := fileMatch(cfg, st.kind, fp)
			found = &m
			return fs.SkipAll
		})
	}
	return found
}

// suggestNames returns up to maxSuggestions corpus names containing name,
// case-folded, sorted for stable output.
func suggestNames(cfg *config.Config, name string) []string {
	t := fold(name)
	seen := make(map[string]struct{})
	var out []string

	for _, st := range scopeSubtrees(cfg, ScopeAll) {
		dir := filepath.Join(cfg.CorpusRoot, st.sub)
		_ = filepath.WalkDir(dir, func(fp string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if ok, werr := pruneWalk(d, fp, dir); !ok {
				return werr
			}
			base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			if !strings.Contains(fold(base), t) {
				return nil
			}
			if _, dup := seen[base]; !dup {
				seen[base] = struct{}{}
				out = append(out, base)
			}
			return nil
		})
	}

	sort.Strings(out)
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
