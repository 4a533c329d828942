// Package paths centralizes the well-known file locations inside a
// workspace's metadata directory and the RL4 document tree, so the store,
// history, audit, and CLI layers stay consistent.
package paths

import "path/filepath"

// MetadataDir is the workspace metadata directory, relative to the
// workspace root.
const MetadataDir = ".sextant"

// RL4Dir is the directory holding the RL4 project-state documents,
// relative to the workspace root.
const RL4Dir = "rl4"

// Metadata returns the absolute metadata directory for a workspace.
func Metadata(workspacePath string) string {
	return filepath.Join(workspacePath, MetadataDir)
}

// Registry returns the path of the persisted command registry document.
func Registry(workspacePath string) string {
	return filepath.Join(workspacePath, MetadataDir, "registry.json")
}

// RegistryLock returns the path of the lock file guarding registry writes.
func RegistryLock(workspacePath string) string {
	return filepath.Join(workspacePath, MetadataDir, "registry.lock")
}

// History returns the path of the resolution history database.
func History(workspacePath string) string {
	return filepath.Join(workspacePath, MetadataDir, "history.db")
}

// Audit returns the path of the append-only audit log.
func Audit(workspacePath string) string {
	return filepath.Join(workspacePath, MetadataDir, "audit.log")
}

// RL4 returns the directory holding RL4 documents for a workspace.
func RL4(workspacePath string) string {
	return filepath.Join(workspacePath, RL4Dir)
}
