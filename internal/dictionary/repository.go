package dictionary

import "context"

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary

// Repository persists the whole entry collection as a single unit.
type Repository interface {
	// Load reads the persisted collection. An absent slot yields an empty
	// collection, not an error.
	Load(ctx context.Context) ([]Entry, error)
	// Save replaces the persisted collection with the given entries.
	Save(ctx context.Context, entries []Entry) error
}
