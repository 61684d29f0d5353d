package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DBRepository implements Repository using MySQL. The collection is still
// persisted as one unit: Save replaces the whole table inside a transaction
// so the slot semantics match the file backend.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

type entryRow struct {
	ID         string `db:"id"`
	Word       string `db:"word"`
	Definition string `db:"definition"`
	Synonyms   string `db:"synonyms"`
	CreatedAt  int64  `db:"created_at"`
	Position   int    `db:"position"`
}

// Load returns all entries in their stored collection order.
func (r *DBRepository) Load(ctx context.Context) ([]Entry, error) {
	var rows []entryRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM word_entries ORDER BY position"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(word_entries) > %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		var synonyms []string
		if err := json.Unmarshal([]byte(row.Synonyms), &synonyms); err != nil {
			return nil, fmt.Errorf("%w: json.Unmarshal(synonyms of %s) > %v", ErrCorruptState, row.ID, err)
		}
		if synonyms == nil {
			synonyms = []string{}
		}
		entries = append(entries, Entry{
			ID:         row.ID,
			Word:       row.Word,
			Definition: row.Definition,
			Synonyms:   synonyms,
			CreatedAt:  EpochMillis(time.UnixMilli(row.CreatedAt).UTC()),
		})
	}
	return entries, nil
}

// Save replaces the whole table with the given entries in a transaction.
func (r *DBRepository) Save(ctx context.Context, entries []Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM word_entries"); err != nil {
		return fmt.Errorf("tx.ExecContext(delete word_entries) > %w", err)
	}

	for i, entry := range entries {
		synonyms := entry.Synonyms
		if synonyms == nil {
			synonyms = []string{}
		}
		encoded, err := json.Marshal(synonyms)
		if err != nil {
			return fmt.Errorf("json.Marshal(synonyms of %s) > %w", entry.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO word_entries (id, word, definition, synonyms, created_at, position) VALUES (?, ?, ?, ?, ?, ?)",
			entry.ID, entry.Word, entry.Definition, string(encoded), entry.CreatedAt.Time().UnixMilli(), i); err != nil {
			return fmt.Errorf("tx.ExecContext(insert word_entry) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

var _ Repository = (*DBRepository)(nil)
