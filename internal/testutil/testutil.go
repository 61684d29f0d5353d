// Package testutil provides shared test helpers for creating config files
// and dictionary fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kmizuta/wordbook/internal/dictionary"
)

// SetupTestConfig creates a minimal config file and the directories it
// points at under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"exports", "lookups"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  backend: file
  file:
    path: %s
exports:
  directory: %s
lookup:
  cache_directory: %s
`,
		filepath.Join(tmpDir, "dictionary.json"),
		filepath.Join(tmpDir, "exports"),
		filepath.Join(tmpDir, "lookups"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// EntryOption configures optional fields when creating an entry fixture.
type EntryOption func(*dictionary.Entry)

// WithID sets the fixture entry's id.
func WithID(id string) EntryOption {
	return func(e *dictionary.Entry) {
		e.ID = id
	}
}

// WithSynonyms sets the fixture entry's synonyms.
func WithSynonyms(synonyms ...string) EntryOption {
	return func(e *dictionary.Entry) {
		e.Synonyms = synonyms
	}
}

// NewEntry creates an entry fixture with stable defaults.
func NewEntry(word, definition string, opts ...EntryOption) dictionary.Entry {
	entry := dictionary.Entry{
		ID:         "id-" + word,
		Word:       word,
		Definition: definition,
		Synonyms:   []string{},
		CreatedAt:  dictionary.NewEpochMillis(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	for _, opt := range opts {
		opt(&entry)
	}
	return entry
}

// SeedDictionaryFile writes entries to path as the persisted JSON slot.
func SeedDictionaryFile(t *testing.T, path string, entries []dictionary.Entry) {
	t.Helper()

	contents, err := json.MarshalIndent(entries, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, contents, 0644))
}
