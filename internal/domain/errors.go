package domain

import "errors"

// Sentinel errors shared by the index engine and its callers
var (
	// ErrNotFound means a query matched nothing, matched more than one entry,
	// or could not be parsed as a JD number
	ErrNotFound = errors.New("not found")

	// ErrCategoryFull means every ID slot 01-99 of a category is taken
	ErrCategoryFull = errors.New("category full")

	// ErrAreaFull means every allocatable category of an area is taken
	ErrAreaFull = errors.New("area full")

	// ErrNoSuchCategory means the category is not part of the index
	ErrNoSuchCategory = errors.New("no such category")

	// ErrNoSuchArea means the area is not part of the index
	ErrNoSuchArea = errors.New("no such area")

	// ErrCorruptIndex means the persisted index could not be parsed
	ErrCorruptIndex = errors.New("corrupt index")

	// ErrIndexMissing means there is no index file at the root
	ErrIndexMissing = errors.New("index missing")

	// ErrIoFailure wraps failures of the underlying filesystem
	ErrIoFailure = errors.New("io failure")

	ErrInvalidLabel = errors.New("invalid label")
)
