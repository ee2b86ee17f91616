package index

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"shelf-cli/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	tmp := t.TempDir()
	return &config.Config{
		CorpusRoot:   filepath.Join(tmp, "repo"),
		IndexPath:    filepath.Join(tmp, "index.json"),
		SessionsDir:  filepath.Join(tmp, "sessions"),
		FunctionsDir: "functions",
		AliasesDir:   "aliases",
		ScriptDirs:   []string{"scripts"},
		Extensions:   []string{".sh"},
	}
}

func writeCorpusFile(t *testing.T, cfg *config.Config, rel, content string) string {
	t.Helper()
	path := filepath.Join(cfg.CorpusRoot, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	// Backdate the file so a follow-up Refresh sees a quiet corpus.
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildThenLoad_RoundTrip(t *testing.T) {
	cfg := testConfig(t)
	writeCorpusFile(t, cfg, "functions/git/deploy_app.sh", "# DESCRIPTION: Deploys the application\ndeploy_app() {\n:\n}\n")
	writeCorpusFile(t, cfg, "aliases/git.sh", "alias gs='git status'\n")

	built, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	doc, err := Load(cfg.IndexPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.SchemaVersion != SchemaVersion {
		t.Fatalf("schema version = %d", doc.SchemaVersion)
	}
	if doc.LastUpdatedAt != built.LastUpdatedAt {
		t.Fatalf("timestamp mismatch: %q vs %q", doc.LastUpdatedAt, built.LastUpdatedAt)
	}

	st := doc.Statistics
	if st.TotalCallables != len(doc.Callables) ||
		st.TotalAliases != len(doc.Aliases) ||
		st.TotalScripts != len(doc.Scripts) ||
		st.TotalCategories != len(doc.Categories) {
		t.Fatalf("statistics out of sync with collections: %+v", st)
	}
	if st.TotalCallables != 1 || st.TotalAliases != 1 {
		t.Fatalf("unexpected totals: %+v", st)
	}
	if _, ok := doc.Callables["deploy_app"]; !ok {
		t.Fatal("deploy_app missing from loaded document")
	}
}

func TestBuild_EmptyAliasesSubtree(t *testing.T) {
	cfg := testConfig(t)
	writeCorpusFile(t, cfg, "functions/misc/one.sh", "one() {\n:\n}\n")

	doc, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if doc.Statistics.TotalAliases != 0 {
		t.Fatalf("total aliases = %d, want 0", doc.Statistics.TotalAliases)
	}
	if doc.Statistics.TotalCategories != 1 {
		t.Fatalf("total categories = %d, want 1", doc.Statistics.TotalCategories)
	}
}

func TestLoad_NotFound(t *testing.T) {
	cfg := testConfig(t)
	if _, err := Load(cfg.IndexPath); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRefresh_BuildsWhenAbsent(t *testing.T) {
	cfg := testConfig(t)
	writeCorpusFile(t, cfg, "functions/misc/one.sh", "one() {\n:\n}\n")

	doc, rebuilt, err := Refresh(cfg)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !rebuilt {
		t.Fatal("expected a build when no index exists")
	}
	if doc.Statistics.TotalCallables != 1 {
		t.Fatalf("unexpected totals: %+v", doc.Statistics)
	}
}

func TestRefresh_UpToDate(t *testing.T) {
	cfg := testConfig(t)
	writeCorpusFile(t, cfg, "functions/misc/one.sh", "one() {\n:\n}\n")
	if _, err := Build(cfg); err != nil {
		t.Fatalf("Build: %v", err)
	}

	_, rebuilt, err := Refresh(cfg)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rebuilt {
		t.Fatal("expected no rebuild for an unchanged corpus")
	}
}

func TestRefresh_RebuildsOnChange(t *testing.T) {
	cfg := testConfig(t)
	path := writeCorpusFile(t, cfg, "functions/misc/one.sh", "one() {\n:\n}\n")
	if _, err := Build(cfg); err != nil {
		t.Fatalf("Build: %v", err)
	}

	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	_, rebuilt, err := Refresh(cfg)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if !rebuilt {
		t.Fatal("expected a rebuild after a file modification")
	}
}

func TestBuildTimestamp_Monotonic(t *testing.T) {
	cfg := testConfig(t)
	future := time.Now().Add(time.Hour).UTC().Truncate(time.Second).Format(time.RFC3339)
	if err := write(cfg.IndexPath, &Document{SchemaVersion: SchemaVersion, LastUpdatedAt: future}); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := buildTimestamp(cfg.IndexPath, time.Now())
	if got != future {
		t.Fatalf("timestamp regressed: got %q, want %q", got, future)
	}
}
