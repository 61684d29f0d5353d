package dictionary

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ChangeOp identifies the kind of mutation a ChangeEvent describes.
type ChangeOp string

const (
	ChangeOpAdd    ChangeOp = "add"
	ChangeOpUpdate ChangeOp = "update"
	ChangeOpDelete ChangeOp = "delete"
	ChangeOpImport ChangeOp = "import"
)

// ChangeEvent describes a successful mutation of the collection.
type ChangeEvent struct {
	Op      ChangeOp
	Entries []Entry
}

// UpdateFields carries replacement values for an entry. A nil field keeps
// the entry's current value.
type UpdateFields struct {
	Word        *string
	Definition  *string
	SynonymsRaw *string
}

// Store owns the in-memory entry collection, keeps insertion order, and
// writes the whole collection through its Repository after every mutation.
// All mutations run under a single lock so a load-modify-persist sequence
// never interleaves with another.
type Store struct {
	mu       sync.Mutex
	repo     Repository
	entries  []Entry
	onChange func(ChangeEvent)
	now      func() time.Time
	newID    func() string
}

// StoreOption configures optional Store behavior.
type StoreOption func(*Store)

// WithOnChange registers a callback invoked after every successful mutation
// with a snapshot of the collection. It decouples state-change notification
// from any particular presentation.
func WithOnChange(fn func(ChangeEvent)) StoreOption {
	return func(s *Store) {
		s.onChange = fn
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides the entry id source.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore creates a Store backed by the given repository.
func NewStore(repo Repository, opts ...StoreOption) *Store {
	s := &Store{
		repo:    repo,
		entries: []Entry{},
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted collection into memory. A malformed persisted
// payload fails with an error wrapping ErrCorruptState instead of silently
// resetting the collection.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("repo.Load > %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	s.entries = entries
	return nil
}

// Add validates and appends a new entry, persists the collection, and
// returns the created entry. The word must be unique among existing entries
// under case-insensitive comparison.
func (s *Store) Add(ctx context.Context, word, definition, synonymsRaw string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	word = strings.TrimSpace(word)
	definition = strings.TrimSpace(definition)
	if word == "" {
		return Entry{}, &ValidationError{Field: "word"}
	}
	if definition == "" {
		return Entry{}, &ValidationError{Field: "definition"}
	}
	if s.indexOfWord(word, "") >= 0 {
		return Entry{}, &DuplicateError{Word: word}
	}

	entry := Entry{
		ID:         s.newID(),
		Word:       word,
		Definition: definition,
		Synonyms:   ParseSynonyms(synonymsRaw),
		CreatedAt:  NewEpochMillis(s.now()),
	}
	next := append(s.snapshot(), entry)
	if err := s.repo.Save(ctx, next); err != nil {
		return Entry{}, fmt.Errorf("repo.Save > %w", err)
	}
	s.entries = next
	s.notify(ChangeOpAdd)
	return entry, nil
}

// Update replaces the fields of an existing entry in place, keeping its id,
// creation time, and position. It fails with NotFoundError when the id is
// absent and re-checks word uniqueness against the other entries.
func (s *Store) Update(ctx context.Context, id string, fields UpdateFields) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfID(id)
	if index < 0 {
		return Entry{}, &NotFoundError{ID: id}
	}

	entry := s.entries[index]
	if fields.Word != nil {
		entry.Word = strings.TrimSpace(*fields.Word)
	}
	if fields.Definition != nil {
		entry.Definition = strings.TrimSpace(*fields.Definition)
	}
	if fields.SynonymsRaw != nil {
		entry.Synonyms = ParseSynonyms(*fields.SynonymsRaw)
	}
	if entry.Word == "" {
		return Entry{}, &ValidationError{Field: "word"}
	}
	if entry.Definition == "" {
		return Entry{}, &ValidationError{Field: "definition"}
	}
	if s.indexOfWord(entry.Word, id) >= 0 {
		return Entry{}, &DuplicateError{Word: entry.Word}
	}

	next := s.snapshot()
	next[index] = entry
	if err := s.repo.Save(ctx, next); err != nil {
		return Entry{}, fmt.Errorf("repo.Save > %w", err)
	}
	s.entries = next
	s.notify(ChangeOpUpdate)
	return entry, nil
}

// Delete removes the entry with the given id and returns it. A missing id
// is a no-op that still persists the unchanged collection and returns nil.
func (s *Store) Delete(ctx context.Context, id string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfID(id)
	if index < 0 {
		if err := s.repo.Save(ctx, s.snapshot()); err != nil {
			return nil, fmt.Errorf("repo.Save > %w", err)
		}
		return nil, nil
	}

	removed := s.entries[index]
	next := append(s.snapshot()[:index], s.entries[index+1:]...)
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("repo.Save > %w", err)
	}
	s.entries = next
	s.notify(ChangeOpDelete)
	return &removed, nil
}

// Search returns a restartable sequence of entries whose word, definition,
// or any synonym contains the query, case-insensitively. An empty query
// yields the whole collection in insertion order. Search never mutates
// state.
func (s *Store) Search(query string) iter.Seq[Entry] {
	s.mu.Lock()
	snapshot := s.snapshot()
	s.mu.Unlock()

	lowerQuery := strings.ToLower(query)
	return func(yield func(Entry) bool) {
		for _, entry := range snapshot {
			if lowerQuery != "" && !entry.matches(lowerQuery) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// Entries returns a copy of the collection in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Len returns the number of entries in the collection.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// indexOfID returns the position of the entry with the given id, or -1.
// Callers must hold s.mu.
func (s *Store) indexOfID(id string) int {
	for i, entry := range s.entries {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// indexOfWord returns the position of the entry whose word equals the given
// word case-insensitively, ignoring the entry with excludeID. Callers must
// hold s.mu.
func (s *Store) indexOfWord(word, excludeID string) int {
	for i, entry := range s.entries {
		if entry.ID != excludeID && strings.EqualFold(entry.Word, word) {
			return i
		}
	}
	return -1
}

// snapshot copies the collection. Callers must hold s.mu.
func (s *Store) snapshot() []Entry {
	return append([]Entry{}, s.entries...)
}

// notify fires the change callback with a fresh snapshot. Callers must hold
// s.mu.
func (s *Store) notify(op ChangeOp) {
	if s.onChange == nil {
		return
	}
	s.onChange(ChangeEvent{Op: op, Entries: s.snapshot()})
}
