// Package scanner walks a project tree and summarizes what it finds.
//
// It skips version-control metadata and hidden directories so the results
// reflect project sources rather than build debris.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// FileInfo describes one entry found during a scan.
type FileInfo struct {
	// Path is relative to the scan root.
	Path  string
	Size  int64
	IsDir bool
	Ext   string
}

// Stats aggregates the results of a scan.
type Stats struct {
	Files       int
	Dirs        int
	TotalSize   int64
	ByExtension map[string]int
}

// Scanner walks a project rooted at a directory.
type Scanner struct {
	root string
}

// New creates a Scanner rooted at the given directory.
func New(root string) *Scanner {
	return &Scanner{root: root}
}

// skipDir reports whether a directory should be excluded from the scan.
func skipDir(name string) bool {
	if name == ".git" || name == "node_modules" || name == "target" {
		return true
	}
	return strings.HasPrefix(name, ".") && name != "."
}

// Scan walks the tree and returns every file and directory, relative to the
// root. Hidden directories and common dependency caches are skipped.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var results []FileInfo

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if skipDir(d.Name()) {
				return filepath.SkipDir
			}
			results = append(results, FileInfo{Path: rel, IsDir: true})
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		results = append(results, FileInfo{
			Path: rel,
			Size: info.Size(),
			Ext:  strings.TrimPrefix(filepath.Ext(d.Name()), "."),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.root, err)
	}

	return results, nil
}

// FindFiles returns the relative paths of files whose base name contains
// the given substring, case insensitive.
func (s *Scanner) FindFiles(substring string) ([]string, error) {
	entries, err := s.Scan()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(substring)
	var matches []string
	for _, entry := range entries {
		if entry.IsDir {
			continue
		}
		if strings.Contains(strings.ToLower(filepath.Base(entry.Path)), needle) {
			matches = append(matches, entry.Path)
		}
	}
	return matches, nil
}

// Summarize aggregates scan results into totals and a per-extension count.
func Summarize(entries []FileInfo) Stats {
	stats := Stats{ByExtension: make(map[string]int)}
	for _, entry := range entries {
		if entry.IsDir {
			stats.Dirs++
			continue
		}
		stats.Files++
		stats.TotalSize += entry.Size
		if entry.Ext != "" {
			stats.ByExtension[entry.Ext]++
		}
	}
	return stats
}
