package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a document format briefly cannot read.
	// Callers should convert such files to text before handing them over.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrLLMUnavailable indicates no LLM provider is configured.
	// Brief generation requires a provider; run `briefly settings llm`.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrStoreUnavailable indicates the brief store is not configured.
	// Generated briefs cannot be persisted or listed without it.
	ErrStoreUnavailable = errors.New("brief store unavailable")
)
