package index

import "shelf-cli/internal/scan"

// SchemaVersion is bumped whenever the document layout changes incompatibly.
const SchemaVersion = 1

// Statistics summarizes one build of the index.
type Statistics struct {
	TotalCallables           int     `json:"total_callables"`
	TotalAliases             int     `json:"total_aliases"`
	TotalScripts             int     `json:"total_scripts"`
	TotalCategories          int     `json:"total_categories"`
	LastBuildDurationSeconds float64 `json:"last_build_duration_seconds"`
}

// Document is the persisted index: every scanned collection plus summary
// statistics and a build timestamp. It is rebuilt as a whole and installed
// atomically; readers only ever observe a complete document.
type Document struct {
	SchemaVersion int        `json:"schema_version"`
	LastUpdatedAt string     `json:"last_updated_at"`
	CorpusRoot    string     `json:"corpus_root"`
	Statistics    Statistics `json:"statistics"`

	Callables  map[string]scan.CallableEntry `json:"callables"`
	Aliases    map[string]scan.AliasEntry    `json:"aliases"`
	Scripts    map[string]scan.ScriptEntry   `json:"scripts"`
	Categories map[string]scan.CategoryEntry `json:"categories"`
}
