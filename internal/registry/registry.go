// Package registry defines the command registry data model: the persisted,
// timestamped index of commands discovered in a workspace.
package registry

import "time"

// Entry represents one discoverable unit of workspace functionality.
//
// An Entry is immutable once placed in a registry generation; regeneration
// replaces entries wholesale, never in place.
type Entry struct {
	// Function is the identifier of the callable (e.g. "analyzeCodebase").
	Function string `json:"function"`

	// Description is optional free text used only for matching.
	Description string `json:"description,omitempty"`

	// Slug is a normalized display id derived from Function.
	// Opaque to ranking.
	Slug string `json:"slug,omitempty"`

	// File and Line locate the declaration in the workspace, when known.
	// Opaque to ranking.
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`
}

// Registry is one generation of the command index.
//
// A Registry is created only by a full rescan and replaced (never patched)
// when stale. Commands keep scan order; ranking uses that order as the
// stable secondary sort.
type Registry struct {
	GeneratedAt   time.Time `json:"generatedAt"`
	TotalCommands int       `json:"totalCommands"`
	Commands      []Entry   `json:"commands"`
}

// New constructs a registry generation from scanned entries.
// TotalCommands is denormalized at creation time and never re-derived.
func New(entries []Entry, now time.Time) *Registry {
	commands := make([]Entry, len(entries))
	copy(commands, entries)

	return &Registry{
		GeneratedAt:   now.UTC(),
		TotalCommands: len(commands),
		Commands:      commands,
	}
}
