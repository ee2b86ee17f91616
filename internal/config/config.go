package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the in-memory representation of ~/.shelf/shelf.yaml.
// Every field is optional; zero values are filled with defaults at load time.
type Config struct {
	CorpusRoot   string   `yaml:"corpus_root,omitempty"`
	IndexPath    string   `yaml:"index_path,omitempty"`
	SessionsDir  string   `yaml:"sessions_dir,omitempty"`
	FunctionsDir string   `yaml:"functions_dir,omitempty"`
	AliasesDir   string   `yaml:"aliases_dir,omitempty"`
	ScriptDirs   []string `yaml:"script_dirs,omitempty"`
	Extensions   []string `yaml:"extensions,omitempty"`
	FuzzyCommand string   `yaml:"fuzzy_command,omitempty"`
}

// ShelfDir returns the absolute path to ~/.shelf/.
func ShelfDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".shelf"), nil
}

// ConfigPath returns the absolute path to ~/.shelf/shelf.yaml.
func ConfigPath() (string, error) {
	dir, err := ShelfDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "shelf.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Load reads ~/.shelf/shelf.yaml (if present), applies ~/.shelf/.env and
// process-environment overrides, and fills in defaults. A missing config file
// is not an error: shelf works against a bare corpus with defaults only.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv loads ~/.shelf/.env into the process environment (already-set
// variables win) and applies SHELF_* overrides.
func (c *Config) applyEnv() error {
	dir, err := ShelfDir()
	if err != nil {
		return err
	}
	// godotenv never overwrites variables already set in the environment.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if v := os.Getenv("SHELF_ROOT"); v != "" {
		c.CorpusRoot = v
	}
	if v := os.Getenv("SHELF_INDEX"); v != "" {
		c.IndexPath = v
	}
	if v := os.Getenv("SHELF_FUZZY"); v != "" {
		c.FuzzyCommand = v
	}
	return nil
}

func (c *Config) applyDefaults() error {
	dir, err := ShelfDir()
	if err != nil {
		return err
	}
	if c.CorpusRoot == "" {
		c.CorpusRoot = filepath.Join(dir, "repo")
	}
	if c.IndexPath == "" {
		c.IndexPath = filepath.Join(dir, "index.json")
	}
	if c.SessionsDir == "" {
		c.SessionsDir = filepath.Join(dir, "sessions")
	}
	if c.FunctionsDir == "" {
		c.FunctionsDir = "functions"
	}
	if c.AliasesDir == "" {
		c.AliasesDir = "aliases"
	}
	if len(c.ScriptDirs) == 0 {
		c.ScriptDirs = []string{"scripts", "bin"}
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".sh", ".bash", ".zsh"}
	}
	if c.FuzzyCommand == "" {
		c.FuzzyCommand = "fzf"
	}

	for _, p := range []*string{&c.CorpusRoot, &c.IndexPath, &c.SessionsDir} {
		expanded, err := ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// Save marshals cfg and writes it to ~/.shelf/shelf.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
