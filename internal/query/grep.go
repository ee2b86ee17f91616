package query

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"shelf-cli/internal/config"
)

// Per-collection output caps keep terminal output bounded.
var grepCaps = map[Kind]int{
	KindCallable: 50,
	KindAlias:    20,
	KindScript:   30,
}

// GrepMatch is one matched line with optional surrounding context.
type GrepMatch struct {
	Kind    Kind
	Path    string
	LineNum int // 1-based
	Line    string
	Before  []string
	After   []string
}

// Grep performs a line-oriented search across the scope's corpus files with
// contextLines of context per match. The pattern is compiled as a regular
// expression, falling back to a literal substring when it does not compile.
// Matching is case-insensitive either way. Output per collection is capped.
func Grep(cfg *config.Config, pattern string, scope Scope, contextLines int) []GrepMatch {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
	}

	counts := make(map[Kind]int)
	var out []GrepMatch

	for _, st := range scopeSubtrees(cfg, scope) {
		dir := filepath.Join(cfg.CorpusRoot, st.sub)
		var paths []string
		_ = filepath.WalkDir(dir, func(fp string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if ok, werr := pruneWalk(d, fp, dir); !ok {
				return werr
			}
			paths = append(paths, fp)
			return nil
		})
		sort.Strings(paths)

		for _, fp := range paths {
			if counts[st.kind] >= grepCaps[st.kind] {
				break
			}
			out = append(out, grepFile(fp, st.kind, re, contextLines, counts)...)
		}
	}
	return out
}

// SearchContent handles the content scope of a unified search: a plain
// substring line scan with no context, bounded to contentScopeLimit matches.
// It bypasses the index document entirely.
func SearchContent(cfg *config.Config, term string) []GrepMatch {
	out := Grep(cfg, regexp.QuoteMeta(term), ScopeContent, 0)
	if len(out) > contentScopeLimit {
		out = out[:contentScopeLimit]
	}
	return out
}

func grepFile(fp string, k Kind, re *regexp.Regexp, contextLines int, counts map[Kind]int) []GrepMatch {
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil
	}
	lines := strings.Split(string(data), "\n")

	var out []GrepMatch
	for i, line := range lines {
		if counts[k] >= grepCaps[k] {
			break
		}
		if !re.MatchString(line) {
			continue
		}
		m := GrepMatch{Kind: k, Path: fp, LineNum: i + 1, Line: line}
		for j := max(0, i-contextLines); j < i; j++ {
			m.Before = append(m.Before, lines[j])
		}
		for j := i + 1; j <= i+contextLines && j < len(lines); j++ {
			m.After = append(m.After, lines[j])
		}
		out = append(out, m)
		counts[k]++
	}
	return out
}
