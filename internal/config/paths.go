// Package config manages ada configuration and filesystem paths.
//
// Configuration lives in ~/.ada/config.toml and can be overridden with
// ADA_* environment variables. The ~/.ada/ root also holds the log
// directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by ada.
type Paths struct {
	// Root is the base directory for all ada data (default: ~/.ada)
	Root string

	// Logs is the directory containing log files
	Logs string

	// Config is the path to the config file
	Config string
}

// DefaultPaths returns the default paths for ada.
// Paths can be overridden with environment variables:
// - ADA_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("ADA_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".ada")
	}

	return &Paths{
		Root:   root,
		Logs:   filepath.Join(root, "logs"),
		Config: filepath.Join(root, "config.toml"),
	}, nil
}

// LogFile returns the path of the main log file.
func (p *Paths) LogFile() string {
	return filepath.Join(p.Logs, "ada.log")
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Logs,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
