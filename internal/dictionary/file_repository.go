package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileRepository stores the collection as a single pretty-printed JSON file.
// The file is the persistent slot: every Save rewrites it whole.
type FileRepository struct {
	path string
}

// NewFileRepository creates a FileRepository writing to the given file path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the location of the backing file.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the persisted collection. A missing file yields an empty
// collection; an undecodable one fails with an error wrapping
// ErrCorruptState.
func (r *FileRepository) Load(_ context.Context) ([]Entry, error) {
	contents, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", r.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(contents, &entries); err != nil {
		return nil, fmt.Errorf("%w: json.Unmarshal(%s) > %v", ErrCorruptState, r.path, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Save writes the whole collection, creating the parent directory when
// needed.
func (r *FileRepository) Save(_ context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	contents, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if err := os.WriteFile(r.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", r.path, err)
	}
	return nil
}

var _ Repository = (*FileRepository)(nil)
