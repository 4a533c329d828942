// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Workspace errors
	ErrWorkspaceNotFound = "WORKSPACE_NOT_FOUND"
	ErrConfigInvalid     = "CONFIG_INVALID"

	// Registry errors
	ErrIndexFailed     = "INDEX_FAILED"
	ErrCommandNotFound = "COMMAND_NOT_FOUND"

	// File errors
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Database errors
	ErrDatabaseError = "DATABASE_ERROR"

	// Validation errors
	ErrValidationFailed = "VALIDATION_FAILED"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
