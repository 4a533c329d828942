// Package scanner discovers callable commands in a workspace source tree.
//
// Two kinds of sources are inspected: source files (function declarations
// matched per language) and markdown command docs (*.commands.md, one
// command per level-2 heading).
package scanner

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mlanders/sextant/internal/paths"
	"github.com/mlanders/sextant/internal/registry"
)

// commandDocSuffix marks markdown files that declare commands directly.
const commandDocSuffix = ".commands.md"

// defaultSkipDirs are directory names never descended into.
var defaultSkipDirs = map[string]struct{}{
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"target":       {},
}

// WorkspaceScanner walks a workspace root and produces command entries.
type WorkspaceScanner struct {
	logger   *log.Logger
	excludes map[string]struct{}
}

// New creates a scanner. Extra directory names to skip may be passed via
// excludes; the metadata directory and dot-directories are always skipped.
func New(logger *log.Logger, excludes ...string) *WorkspaceScanner {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	skip := make(map[string]struct{}, len(defaultSkipDirs)+len(excludes))
	for name := range defaultSkipDirs {
		skip[name] = struct{}{}
	}
	for _, name := range excludes {
		name = strings.TrimSpace(name)
		if name != "" {
			skip[name] = struct{}{}
		}
	}

	return &WorkspaceScanner{logger: logger, excludes: skip}
}

// Scan inspects the workspace rooted at root and returns every discovered
// command entry in walk order.
//
// Unreadable individual files are logged and skipped; an unreadable root or
// a cancelled context fails the scan.
func (s *WorkspaceScanner) Scan(ctx context.Context, root string) ([]registry.Entry, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("scan workspace: %w", err)
	}

	var entries []registry.Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || name == paths.MetadataDir {
				return filepath.SkipDir
			}
			if _, skip := s.excludes[name]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		switch {
		case strings.HasSuffix(name, commandDocSuffix):
			found, docErr := s.scanCommandDoc(path, rel)
			if docErr != nil {
				s.logger.Warn("skipping unreadable command doc", "path", rel, "error", docErr)
				return nil
			}
			entries = append(entries, found...)
		case ruleForFile(name) != nil:
			found, srcErr := s.scanSourceFile(path, rel)
			if srcErr != nil {
				s.logger.Warn("skipping unreadable source file", "path", rel, "error", srcErr)
				return nil
			}
			entries = append(entries, found...)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan workspace: %w", err)
	}

	s.logger.Debug("scan complete", "root", root, "commands", len(entries))
	return entries, nil
}
