package query

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"shelf-cli/internal/config"
	"shelf-cli/internal/index"
	"shelf-cli/internal/scan"
)

func callable(name, category, description string) scan.CallableEntry {
	return scan.CallableEntry{Entry: scan.Entry{
		Name:         name,
		Category:     category,
		Description:  description,
		RelativePath: "functions/" + category + "/" + name + ".sh",
	}}
}

func testDoc() *index.Document {
	return &index.Document{
		SchemaVersion: index.SchemaVersion,
		Callables: map[string]scan.CallableEntry{
			"deploy_app": callable("deploy_app", "git", "Deploys the application"),
			"a_task":     callable("a_task", "misc", "First task"),
			"b_task":     callable("b_task", "misc", "Second task"),
		},
		Aliases: map[string]scan.AliasEntry{
			"gitshort": {Entry: scan.Entry{Name: "gitshort", Category: "aliases", Usage: "gs, gl shortcuts"}},
		},
		Scripts: map[string]scan.ScriptEntry{
			"backup": {Entry: scan.Entry{Name: "backup", Category: "scripts", Description: "Nightly deploy backup"}},
		},
		Categories: map[string]scan.CategoryEntry{},
	}
}

func names(ms []Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Entry.Name
	}
	return out
}

func TestSearch_ScopedSubstring(t *testing.T) {
	doc := testDoc()

	got := names(Search(doc, "deploy", ScopeCallables))
	if !reflect.DeepEqual(got, []string{"deploy_app"}) {
		t.Fatalf("callables scope = %v, want [deploy_app]", got)
	}

	// Scope all also picks up the script whose description mentions deploy.
	got = names(Search(doc, "deploy", ScopeAll))
	if !reflect.DeepEqual(got, []string{"deploy_app", "backup"}) {
		t.Fatalf("all scope = %v", got)
	}
}

func TestSearch_CaseFolded(t *testing.T) {
	doc := testDoc()
	if got := names(Search(doc, "DEPLOY", ScopeCallables)); !reflect.DeepEqual(got, []string{"deploy_app"}) {
		t.Fatalf("folded search = %v", got)
	}
}

func TestSearch_MatchesUsageField(t *testing.T) {
	doc := testDoc()
	if got := names(Search(doc, "shortcuts", ScopeAliases)); !reflect.DeepEqual(got, []string{"gitshort"}) {
		t.Fatalf("usage-field search = %v", got)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	doc := testDoc()
	first := names(Search(doc, "task", ScopeAll))
	for i := 0; i < 10; i++ {
		if got := names(Search(doc, "task", ScopeAll)); !reflect.DeepEqual(got, first) {
			t.Fatalf("order changed across calls: %v vs %v", got, first)
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	if got := Search(testDoc(), "zzz_nothing", ScopeAll); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", names(got))
	}
}

func fileConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	for rel, content := range map[string]string{
		"functions/git/deploy_app.sh": "deploy_app() {\n:\n}\n",
		"aliases/git.sh":              "alias gs='git status'\n",
		"scripts/backup.sh":           "echo backup\n",
	} {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return &config.Config{
		CorpusRoot:   root,
		FunctionsDir: "functions",
		AliasesDir:   "aliases",
		ScriptDirs:   []string{"scripts"},
		Extensions:   []string{".sh"},
	}
}

func TestSearchFiles_Fallback(t *testing.T) {
	cfg := fileConfig(t)

	got := SearchFiles(cfg, "deploy", ScopeAll)
	if len(got) != 1 || got[0].Entry.Name != "deploy_app" {
		t.Fatalf("fallback search = %v", names(got))
	}
	if got[0].Entry.Description != "" {
		t.Fatal("slow path should not carry header metadata")
	}
	if got[0].Kind != KindCallable {
		t.Fatalf("kind = %s", got[0].Kind)
	}
}

func TestSearchFiles_PrunesHiddenDirectories(t *testing.T) {
	cfg := fileConfig(t)
	path := filepath.Join(cfg.CorpusRoot, "functions", ".git", "deploy_hook.sh")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("deploy_hook() {\n:\n}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := SearchFiles(cfg, "deploy", ScopeAll)
	if len(got) != 1 || got[0].Entry.Name != "deploy_app" {
		t.Fatalf("hidden directory leaked into results: %v", names(got))
	}
}

func TestSearchContent_BoundedLineScan(t *testing.T) {
	cfg := fileConfig(t)

	got := SearchContent(cfg, "git status")
	if len(got) != 1 {
		t.Fatalf("content matches = %d, want 1", len(got))
	}
	if got[0].LineNum != 1 {
		t.Fatalf("line = %d, want 1", got[0].LineNum)
	}
}
