package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuestion indicates a question was empty or whitespace-only.
	// Rejected before any retrieval or completion work happens.
	ErrEmptyQuestion = errors.New("question must not be empty")

	// ErrUnsupportedType indicates an unknown normaliser type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrCompletionUnavailable indicates no completion service is
	// configured. Answering is impossible without one.
	ErrCompletionUnavailable = errors.New("completion service unavailable")

	// ErrCompletionFailed indicates the remote completion call failed.
	// The pipeline does not retry; the caller sees this directly.
	ErrCompletionFailed = errors.New("completion request failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
