package scan

// Entry is the metadata extracted from one script file. Text fields parsed
// from the header comment block default to "" when absent.
type Entry struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	SourcePath    string   `json:"source_path"`
	RelativePath  string   `json:"relative_path"`
	Description   string   `json:"description,omitempty"`
	Usage         string   `json:"usage,omitempty"`
	Requirements  string   `json:"requirements,omitempty"`
	Version       string   `json:"version,omitempty"`
	Author        string   `json:"author,omitempty"`
	DeclaredUnits []string `json:"declared_units,omitempty"`
	SizeBytes     int64    `json:"size_bytes"`
	LineCount     int      `json:"line_count"`
	ModifiedAt    int64    `json:"modified_at"`
}

// CallableEntry is an Entry scanned from the functions subtree.
type CallableEntry struct {
	Entry
}

// AliasEntry is an Entry scanned from the aliases subtree.
type AliasEntry struct {
	Entry
	AliasCount int `json:"alias_count"`
}

// ScriptEntry is an Entry scanned from the executable-script subtrees.
type ScriptEntry struct {
	Entry
	Executable bool `json:"executable"`
}

// CategoryEntry aggregates callables sharing a parent directory.
type CategoryEntry struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	CallableCount int    `json:"callable_count"`
}

// Collections holds the partitioned output of one corpus scan.
type Collections struct {
	Callables  map[string]CallableEntry
	Aliases    map[string]AliasEntry
	Scripts    map[string]ScriptEntry
	Categories map[string]CategoryEntry

	// Warnings counts files that could not be read during the scan.
	// A non-zero count does not fail the scan.
	Warnings int
}
