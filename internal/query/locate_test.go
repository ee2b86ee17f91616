package query

import (
	"errors"
	"testing"

	"shelf-cli/internal/scan"
)

func TestLocateExact_Identity(t *testing.T) {
	doc := testDoc()
	cfg := fileConfig(t)

	for name := range doc.Callables {
		m, _, err := LocateExact(doc, cfg, name)
		if err != nil {
			t.Fatalf("LocateExact(%q): %v", name, err)
		}
		if m.Entry.Name != name || m.Kind != KindCallable {
			t.Fatalf("LocateExact(%q) = %+v", name, m)
		}
	}
}

func TestLocateExact_PrefersCallables(t *testing.T) {
	doc := testDoc()
	// The same name in all three collections resolves to the callable.
	doc.Callables["dup"] = callable("dup", "git", "callable flavor")
	doc.Aliases["dup"] = scan.AliasEntry{Entry: scan.Entry{Name: "dup"}}
	doc.Scripts["dup"] = scan.ScriptEntry{Entry: scan.Entry{Name: "dup"}}

	m, _, err := LocateExact(doc, fileConfig(t), "dup")
	if err != nil {
		t.Fatalf("LocateExact: %v", err)
	}
	if m.Kind != KindCallable {
		t.Fatalf("kind = %s, want callable", m.Kind)
	}
}

func TestLocateExact_FilesystemFallback(t *testing.T) {
	cfg := fileConfig(t)

	// nil document: no index available.
	m, _, err := LocateExact(nil, cfg, "deploy_app")
	if err != nil {
		t.Fatalf("LocateExact: %v", err)
	}
	if m.Entry.Name != "deploy_app" {
		t.Fatalf("entry = %+v", m.Entry)
	}
}

func TestLocateExact_MissSuggests(t *testing.T) {
	cfg := fileConfig(t)

	_, suggestions, err := LocateExact(testDoc(), cfg, "deploy")
	if !errors.Is(err, ErrNoMatches) {
		t.Fatalf("err = %v, want ErrNoMatches", err)
	}
	if len(suggestions) == 0 || len(suggestions) > 5 {
		t.Fatalf("suggestions = %v", suggestions)
	}
	if suggestions[0] != "deploy_app" {
		t.Fatalf("suggestions = %v", suggestions)
	}
}
