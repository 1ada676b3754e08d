// Package config locates and parses the msgtrail configuration file.
//
// Configuration lives at ~/.config/msgtrail/config.yaml and is
// optional; every field has a default under the user's home directory.
// Unknown keys are rejected so typos fail loudly instead of silently
// falling back to defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls where the tracker persists its state and how the CLI
// renders output. Zero values mean "use the default".
type Config struct {
	// Snapshot is the path of the snapshot file.
	Snapshot string `yaml:"snapshot"`
	// CrumbDir is the directory holding crumb files between snapshots.
	CrumbDir string `yaml:"crumb_dir"`
	// Format is the default output format, overridable per invocation.
	Format string `yaml:"format"`
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "msgtrail", "config.yaml"), nil
}

// Load reads the configuration file at path. An empty path means the
// default location, where a missing file is not an error and the
// defaults apply unchanged. An explicitly given path must exist.
func Load(path string) (Config, error) {
	cfg, err := defaults()
	if err != nil {
		return Config{}, err
	}

	explicit := path != ""
	if !explicit {
		path, err = DefaultPath()
		if err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var loaded Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&loaded); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if loaded.Snapshot != "" {
		cfg.Snapshot = loaded.Snapshot
	}
	if loaded.CrumbDir != "" {
		cfg.CrumbDir = loaded.CrumbDir
	}
	if loaded.Format != "" {
		cfg.Format = loaded.Format
	}
	return cfg, nil
}

func defaults() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	share := filepath.Join(home, ".local", "share", "msgtrail")
	return Config{
		Snapshot: filepath.Join(share, "snapshot.json"),
		CrumbDir: filepath.Join(share, "crumbs"),
		Format:   "text",
	}, nil
}
