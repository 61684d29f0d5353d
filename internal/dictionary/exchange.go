package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportFilename returns the suggested name for an export file taken at t,
// for example "dictionary_2026-08-25.json".
func ExportFilename(t time.Time, extension string) string {
	return fmt.Sprintf("dictionary_%s.%s", t.Format("2006-01-02"), extension)
}

// ExportAll serializes the whole collection as a pretty-printed JSON array.
// The output uses the persisted field names verbatim and round-trips through
// ImportAll unchanged. ExportAll never mutates state.
func (s *Store) ExportAll() ([]byte, error) {
	contents, err := json.MarshalIndent(s.Entries(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json.MarshalIndent > %w", err)
	}
	return contents, nil
}

// ExportAllYAML serializes the whole collection as a YAML sequence with the
// same field values as the JSON export.
func (s *Store) ExportAllYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	if err := encoder.Encode(s.Entries()); err != nil {
		return nil, fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("yaml encoder.Close() > %w", err)
	}
	return buf.Bytes(), nil
}

// ImportAll replaces the whole collection with the entries decoded from
// payload, which must be a JSON array. Entries are trusted verbatim, so
// duplicate words or unusual ids survive an import. On failure the
// collection is left untouched.
func (s *Store) ImportAll(ctx context.Context, payload []byte) (int, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, &ImportFormatError{Err: errors.New("top-level value is not an array")}
	}

	var entries []Entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return 0, &ImportFormatError{Err: err}
	}
	if entries == nil {
		entries = []Entry{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(ctx, entries); err != nil {
		return 0, fmt.Errorf("repo.Save > %w", err)
	}
	s.entries = entries
	s.notify(ChangeOpImport)
	return len(entries), nil
}
