package query

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"shelf-cli/internal/config"
)

// FindByPattern matches corpus filenames in scope against a glob pattern
// (*, ?, [...]). It works directly on the filesystem and never consults the
// index document. Matching is case-insensitive on the folded basename.
func FindByPattern(cfg *config.Config, pattern string, scope Scope) ([]Match, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}
	p := fold(pattern)

	var out []Match
	for _, st := range scopeSubtrees(cfg, scope) {
		dir := filepath.Join(cfg.CorpusRoot, st.sub)
		_ = filepath.WalkDir(dir, func(fp string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if keep, werr := pruneWalk(d, fp, dir); !keep {
				return werr
			}
			ok, _ := path.Match(p, fold(d.Name()))
			if !ok {
				// Also try without the extension so "git*" finds git-utils.sh.
				base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
				if ok, _ = path.Match(p, fold(base)); !ok {
					return nil
				}
			}
			out = append(out, fileMatch(cfg, st.kind, fp))
			return nil
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Entry.RelativePath < out[j].Entry.RelativePath
	})
	return out, nil
}

// fileMatch builds a metadata-free Match for a corpus file.
func fileMatch(cfg *config.Config, k Kind, fp string) Match {
	rel, err := filepath.Rel(cfg.CorpusRoot, fp)
	if err != nil {
		rel = fp
	}
	name := strings.TrimSuffix(filepath.Base(fp), filepath.Ext(fp))
	return Match{Kind: k, Entry: scanEntry(name, fp, rel)}
}
