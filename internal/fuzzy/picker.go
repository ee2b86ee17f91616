// Package fuzzy wraps an external interactive fuzzy-filter utility behind a
// capability interface so callers degrade cleanly when none is installed.
package fuzzy

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrUnavailable reports that no fuzzy utility was found on PATH.
var ErrUnavailable = errors.New("fuzzy utility not available")

// Candidate is one pickable line: kind tag, name, short description.
type Candidate struct {
	Kind        string
	Name        string
	Description string
	Path        string
}

// Picker selects one candidate interactively. A nil selection with a nil
// error means the user cancelled.
type Picker interface {
	Available() bool
	Pick(candidates []Candidate, initial string) (*Candidate, error)
}

// ExecPicker pipes candidates to an external command (fzf by default), one
// line per candidate on stdin, and reads the selected line from stdout.
type ExecPicker struct {
	Command string
}

func NewExecPicker(command string) *ExecPicker {
	return &ExecPicker{Command: command}
}

func (p *ExecPicker) Available() bool {
	_, err := exec.LookPath(p.Command)
	return err == nil
}

func (p *ExecPicker) Pick(candidates []Candidate, initial string) (*Candidate, error) {
	if !p.Available() {
		return nil, ErrUnavailable
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	lines := make([]string, len(candidates))
	byLine := make(map[string]int, len(candidates))
	for i, c := range candidates {
		lines[i] = formatLine(c)
		byLine[lines[i]] = i
	}

	args := []string{}
	if initial != "" {
		args = append(args, "--query", initial)
	}
	cmd := exec.Command(p.Command, args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	cmd.Stderr = os.Stderr

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		// Non-zero exit means the user cancelled (fzf exits 1/130), not a
		// tool failure.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot run %s: %w", p.Command, err)
	}

	selected := strings.TrimRight(out.String(), "\n")
	if selected == "" {
		return nil, nil
	}
	if i, ok := byLine[selected]; ok {
		return &candidates[i], nil
	}
	return nil, nil
}

func formatLine(c Candidate) string {
	desc := c.Description
	if desc == "" {
		desc = "-"
	}
	return fmt.Sprintf("[%s] %s\t%s", c.Kind, c.Name, desc)
}

// NullPicker is the unavailable implementation: it always reports
// ErrUnavailable so callers fall back to non-interactive search.
type NullPicker struct{}

func (NullPicker) Available() bool { return false }

func (NullPicker) Pick([]Candidate, string) (*Candidate, error) {
	return nil, ErrUnavailable
}
