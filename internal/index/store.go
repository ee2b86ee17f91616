package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Load reads the index document at path. Returns ErrNotFound when the file
// does not exist; corrupt JSON is a hard error.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cannot read index %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid index JSON %s: %w", path, err)
	}
	return &doc, nil
}

// write installs doc at path atomically: marshal to a temp file in the same
// directory, then rename over the canonical path under an exclusive lock.
// A failure at any step leaves the previous document untouched.
func write(path string, doc *Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create index dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal index: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".index-*.json")
	if err != nil {
		return fmt.Errorf("cannot create temp index file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cannot write temp index file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temp index file: %w", err)
	}

	// Serialize concurrent builds against the same canonical path. Readers
	// never take the lock: the rename below is what keeps Load consistent.
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("cannot lock index %s: %w", path, err)
	}
	defer lock.Unlock()

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("cannot install index %s: %w", path, err)
	}
	return nil
}
