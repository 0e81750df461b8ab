package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogUnavailable indicates the catalog source could not be
	// reached and no fallback applied. Callers normally never see this:
	// the catalog service degrades to the embedded default catalog.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrStorageUnavailable indicates the key-value store cannot be
	// opened. Search still works; recent/analytics features degrade to
	// empty reads and dropped writes.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
