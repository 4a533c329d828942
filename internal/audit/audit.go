// Package audit provides an append-only audit log for registry and
// resolution operations.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mlanders/sextant/internal/paths"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp time.Time              `json:"ts"`
	Operation string                 `json:"op"` // regenerate, resolve, scaffold
	Intent    string                 `json:"intent,omitempty"`
	Input     string                 `json:"input,omitempty"`
	Commands  int                    `json:"commands,omitempty"` // registry size or match count
	Extra     map[string]interface{} `json:"extra,omitempty"`
}

// Logger handles writing to the audit log.
type Logger struct {
	path    string
	enabled bool
	mu      sync.Mutex
}

// New creates an audit logger for the given workspace.
// If enabled is false, the logger is a no-op.
func New(workspacePath string, enabled bool) *Logger {
	if !enabled {
		return &Logger{enabled: false}
	}
	return &Logger{
		path:    paths.Audit(workspacePath),
		enabled: true,
	}
}

// Log appends an entry to the audit log.
func (l *Logger) Log(entry Entry) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create audit directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(string(data) + "\n"); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}

	return nil
}

// LogRegenerate logs a registry regeneration with the new command count.
func (l *Logger) LogRegenerate(commands int) error {
	return l.Log(Entry{
		Operation: "regenerate",
		Commands:  commands,
	})
}

// LogResolve logs an intent resolution and its match count.
func (l *Logger) LogResolve(intent, input string, matches int) error {
	return l.Log(Entry{
		Operation: "resolve",
		Intent:    intent,
		Input:     input,
		Commands:  matches,
	})
}

// Read returns all entries in the audit log, oldest first.
// Malformed lines are skipped.
func (l *Logger) Read() ([]Entry, error) {
	if !l.enabled {
		return nil, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read audit log: %w", err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Enabled returns true if the audit logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
