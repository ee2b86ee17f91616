package fuzzy

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func testCandidates() []Candidate {
	return []Candidate{
		{Kind: "callable", Name: "deploy_app", Description: "Deploys the application", Path: "/tmp/deploy_app.sh"},
		{Kind: "alias", Name: "gitshort", Path: "/tmp/git.sh"},
	}
}

// fakePicker writes a shell script that stands in for fzf.
func fakePicker(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake picker")
	}
	path := filepath.Join(t.TempDir(), "fakefzf")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecPicker_SelectsLine(t *testing.T) {
	p := NewExecPicker(fakePicker(t, "head -n 1"))

	got, err := p.Pick(testCandidates(), "")
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got == nil || got.Name != "deploy_app" {
		t.Fatalf("selection = %+v", got)
	}
}

func TestExecPicker_CancelIsNotAnError(t *testing.T) {
	p := NewExecPicker(fakePicker(t, "cat > /dev/null; exit 130"))

	got, err := p.Pick(testCandidates(), "")
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no selection, got %+v", got)
	}
}

func TestExecPicker_Unavailable(t *testing.T) {
	p := NewExecPicker("definitely-not-on-path-xyz")
	if p.Available() {
		t.Fatal("phantom command reported available")
	}
	if _, err := p.Pick(testCandidates(), ""); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestNullPicker(t *testing.T) {
	var p NullPicker
	if p.Available() {
		t.Fatal("NullPicker must report unavailable")
	}
	if _, err := p.Pick(nil, ""); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestExecPicker_EmptyCandidates(t *testing.T) {
	p := NewExecPicker(fakePicker(t, "head -n 1"))
	got, err := p.Pick(nil, "")
	if err != nil || got != nil {
		t.Fatalf("empty candidates: %+v %v", got, err)
	}
}
