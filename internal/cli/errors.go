// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Vault errors
	ErrVaultNotFound     = "VAULT_NOT_FOUND"
	ErrVaultNotSpecified = "VAULT_NOT_SPECIFIED"
	ErrConfigInvalid     = "CONFIG_INVALID"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Selection errors
	ErrEmptySelection = "EMPTY_SELECTION"

	// Validation errors
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrInvalidValue     = "INVALID_VALUE"
	ErrReservedKey      = "RESERVED_KEY"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// Database errors
	ErrDatabaseError = "DATABASE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
