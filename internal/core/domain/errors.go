package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyQuery indicates a request arrived with no query text.
	// The request is rejected before any processing occurs.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrEmptyQuestion indicates a follow-up dispatch with no question.
	ErrEmptyQuestion = errors.New("question must not be empty")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrRetrievalUnavailable indicates the discussion retriever is not
	// configured. The live path degrades to the no-match card.
	ErrRetrievalUnavailable = errors.New("discussion retrieval unavailable")
)
