package entry

import "errors"

var (
	// ErrNotFound is returned when no entry exists for a slug.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidInput marks user-correctable validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSlugConflict is returned when a custom slug is already taken.
	ErrSlugConflict = errors.New("slug already in use")

	// ErrGenerationExhausted is returned after ten random slugs in a row
	// collided with existing entries.
	ErrGenerationExhausted = errors.New("could not generate a unique slug")

	// ErrStorageExhausted is returned when the store is out of capacity and
	// a single evict-and-retry cycle did not free enough space.
	ErrStorageExhausted = errors.New("storage exhausted")
)
