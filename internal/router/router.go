// Package router orchestrates the command registry lifecycle (load, staleness
// check, regeneration, persistence) and resolves intents against the current
// generation with a deterministic keyword-scoring heuristic.
package router

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlanders/sextant/internal/registry"
)

// Scanner enumerates callable commands in a workspace source tree.
// Scan failures propagate out of Initialize; no partial registry is adopted.
type Scanner interface {
	Scan(ctx context.Context, root string) ([]registry.Entry, error)
}

// Store reads and writes the durable registry copy. Load reports absent
// (false) for missing or corrupt documents rather than failing.
type Store interface {
	Load() (*registry.Registry, bool)
	Save(reg *registry.Registry) error
}

// Router owns the in-memory registry for one workspace and is the only
// component that replaces it. The registry reference is swapped wholesale
// after a new generation is fully constructed, so concurrent resolutions
// observe either the old or the new generation, never a mix.
type Router struct {
	workspacePath string
	scanner       Scanner
	store         Store
	logger        *log.Logger

	mu  sync.RWMutex
	reg *registry.Registry
}

// New creates a router for the workspace rooted at workspacePath.
// logger may be nil.
func New(workspacePath string, scanner Scanner, store Store, logger *log.Logger) *Router {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Router{
		workspacePath: workspacePath,
		scanner:       scanner,
		store:         store,
		logger:        logger,
	}
}

// Initialize produces a trustworthy in-memory registry.
//
// It loads the persisted registry if none is held yet, and regenerates when
// the registry is absent or stale. Idempotent: calling it again re-checks
// staleness but never regresses to the uninitialized state.
func (r *Router) Initialize(ctx context.Context) error {
	r.mu.RLock()
	current := r.reg
	r.mu.RUnlock()

	if current == nil {
		if loaded, ok := r.store.Load(); ok {
			current = loaded
			r.logger.Debug("loaded persisted registry",
				"generatedAt", loaded.GeneratedAt, "commands", loaded.TotalCommands)
		}
	}

	if !registry.IsStale(current, time.Now()) {
		r.adopt(current)
		return nil
	}

	return r.Rebuild(ctx)
}

// Rebuild unconditionally regenerates the registry: scan, construct,
// persist, then swap. Scanner and store-write failures propagate and leave
// the previously adopted registry (if any) in place.
func (r *Router) Rebuild(ctx context.Context) error {
	entries, err := r.scanner.Scan(ctx, r.workspacePath)
	if err != nil {
		return fmt.Errorf("regenerate registry: %w", err)
	}

	reg := registry.New(entries, time.Now())

	if err := r.store.Save(reg); err != nil {
		// The fresh generation would be lost on restart; surface it.
		return fmt.Errorf("persist registry: %w", err)
	}

	r.adopt(reg)
	r.logger.Info("registry regenerated", "commands", reg.TotalCommands)
	return nil
}

// FindCommands resolves an intent (plus optional free-text context) to the
// registry entries that plausibly match, ordered best-first.
//
// Resolution is total: with no registry adopted it returns an empty list.
// Entries with a zero score are dropped; ties keep registry order.
func (r *Router) FindCommands(intent, inputText string) []registry.Entry {
	reg := r.Snapshot()
	if reg == nil {
		return nil
	}

	keywords := KeywordsFor(intent)

	type scoredEntry struct {
		entry registry.Entry
		score int
	}

	matches := make([]scoredEntry, 0, len(reg.Commands))
	for _, entry := range reg.Commands {
		if score := scoreEntry(entry, keywords, inputText); score > 0 {
			matches = append(matches, scoredEntry{entry: entry, score: score})
		}
	}

	// Stable sort: equal scores preserve registry (scan) order by contract.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]registry.Entry, len(matches))
	for i, m := range matches {
		out[i] = m.entry
	}
	return out
}

// Snapshot returns the currently adopted registry generation, or nil while
// uninitialized.
func (r *Router) Snapshot() *registry.Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reg
}

// Ready reports whether a registry generation has been adopted.
func (r *Router) Ready() bool {
	return r.Snapshot() != nil
}

func (r *Router) adopt(reg *registry.Registry) {
	r.mu.Lock()
	r.reg = reg
	r.mu.Unlock()
}
