package scan

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
)

// maxFieldLen bounds description/usage text so the index stays compact.
const maxFieldLen = 160

var headerMarkers = []string{"DESCRIPTION", "USAGE", "REQUIREMENTS", "VERSION", "AUTHOR"}

// unitRe matches a top-level shell function definition: an identifier at
// column 0 immediately followed by an empty parameter list and an opening
// brace, with an optional "function" keyword. Nested or conditionally
// defined functions are intentionally not matched.
var unitRe = regexp.MustCompile(`^(?:function\s+)?([A-Za-z_][A-Za-z0-9_.:-]*)\s*\(\s*\)\s*\{`)

// aliasRe matches one shorthand alias definition.
var aliasRe = regexp.MustCompile(`^\s*alias\s+[A-Za-z0-9_.:-]+=`)

// Extract parses one script file into an Entry. It never fails: a file that
// cannot be read or stat'ed yields an Entry with empty text fields and zero
// size, and the problem is logged as a warning on the status stream.
// The boolean reports whether the file was readable.
func Extract(path, relPath string) (Entry, bool) {
	e, _, ok := extractFile(path, relPath)
	return e, ok
}

// extractFile is Extract plus the raw file content, so collection-specific
// passes (alias counting) avoid a second read.
func extractFile(path, relPath string) (Entry, string, bool) {
	e := Entry{
		Name:         strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Category:     filepath.Base(filepath.Dir(path)),
		SourcePath:   path,
		RelativePath: filepath.ToSlash(relPath),
	}

	if info, err := os.Stat(path); err == nil {
		e.SizeBytes = info.Size()
		e.ModifiedAt = info.ModTime().Unix()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("cannot read file, indexing name only", "path", path, "err", err)
		e.SizeBytes = 0
		return e, "", false
	}

	content := string(data)
	e.LineCount = strings.Count(content, "\n")
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		e.LineCount++
	}

	fields := parseHeader(content)
	e.Description = truncate(fields["DESCRIPTION"], maxFieldLen)
	e.Usage = truncate(fields["USAGE"], maxFieldLen)
	e.Requirements = fields["REQUIREMENTS"]
	e.Version = fields["VERSION"]
	e.Author = fields["AUTHOR"]
	e.DeclaredUnits = declaredUnits(content)
	return e, content, true
}

// parseHeader scans the leading comment block for MARKER: fields. Each field
// captures text until the next marker or a blank comment line; the block ends
// at the first non-comment line (a shebang is skipped).
func parseHeader(content string) map[string]string {
	fields := make(map[string]string)
	current := ""

	for i, line := range strings.Split(content, "\n") {
		if i == 0 && strings.HasPrefix(line, "#!") {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			current = ""
			continue
		}
		if !strings.HasPrefix(trimmed, "#") {
			break
		}
		text := strings.TrimSpace(strings.TrimLeft(trimmed, "# "))
		if text == "" {
			current = ""
			continue
		}

		if marker, rest, ok := splitMarker(text); ok {
			fields[marker] = collapse(rest)
			current = marker
			continue
		}
		if current != "" {
			fields[current] = collapse(fields[current] + " " + text)
		}
	}
	return fields
}

func splitMarker(text string) (string, string, bool) {
	for _, m := range headerMarkers {
		if strings.HasPrefix(text, m+":") {
			return m, strings.TrimSpace(text[len(m)+1:]), true
		}
	}
	return "", "", false
}

// declaredUnits returns the names of top-level function definitions in
// insertion order, deduplicated.
func declaredUnits(content string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(content, "\n") {
		m := unitRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

// countAliases returns the number of alias definitions in the file body.
func countAliases(content string) int {
	n := 0
	for _, line := range strings.Split(content, "\n") {
		if aliasRe.MatchString(line) {
			n++
		}
	}
	return n
}

// collapse squeezes internal whitespace runs to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
