package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmizuta/wordbook/internal/dictionary"
)

func readDictionarySlot(t *testing.T, tmpDir string) []dictionary.Entry {
	t.Helper()

	contents, err := os.ReadFile(filepath.Join(tmpDir, "dictionary.json"))
	require.NoError(t, err)
	var entries []dictionary.Entry
	require.NoError(t, json.Unmarshal(contents, &entries))
	return entries
}

func TestNewAddCommand(t *testing.T) {
	cmd := newAddCommand()

	assert.Equal(t, "add <word>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("definition"))
	assert.NotNil(t, cmd.Flags().Lookup("synonyms"))
}

func TestAddCommand(t *testing.T) {
	tmpDir := setupCommandTest(t)

	output := mustExecute(t, newAddCommand(), "Serendipity", "-d", "A pleasant surprise", "-s", "luck, chance")
	assert.Contains(t, output, "Serendipity: A pleasant surprise")
	assert.Contains(t, output, "synonyms: luck, chance")

	entries := readDictionarySlot(t, tmpDir)
	require.Len(t, entries, 1)
	assert.Equal(t, "Serendipity", entries[0].Word)
	assert.Equal(t, []string{"luck", "chance"}, entries[0].Synonyms)
	assert.NotEmpty(t, entries[0].ID)
}

func TestAddCommand_rejectsDuplicateWord(t *testing.T) {
	tmpDir := setupCommandTest(t)

	mustExecute(t, newAddCommand(), "Serendipity", "-d", "A pleasant surprise")

	_, err := executeCommand(t, newAddCommand(), "serendipity", "-d", "Another definition")
	require.Error(t, err)
	var duplicateErr *dictionary.DuplicateError
	assert.ErrorAs(t, err, &duplicateErr)

	assert.Len(t, readDictionarySlot(t, tmpDir), 1)
}

func TestAddCommand_rejectsBlankDefinition(t *testing.T) {
	setupCommandTest(t)

	_, err := executeCommand(t, newAddCommand(), "Serendipity", "-d", "   ")
	require.Error(t, err)
	var validationErr *dictionary.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNewUpdateCommand(t *testing.T) {
	cmd := newUpdateCommand()

	assert.Equal(t, "update <id>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("word"))
	assert.NotNil(t, cmd.Flags().Lookup("definition"))
	assert.NotNil(t, cmd.Flags().Lookup("synonyms"))
}

func TestUpdateCommand(t *testing.T) {
	tmpDir := setupCommandTest(t)

	mustExecute(t, newAddCommand(), "Serendipity", "-d", "A pleasant surprise")
	id := readDictionarySlot(t, tmpDir)[0].ID

	output := mustExecute(t, newUpdateCommand(), id, "--definition", "An unexpected fortunate discovery")
	assert.Contains(t, output, "Serendipity: An unexpected fortunate discovery")

	entries := readDictionarySlot(t, tmpDir)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID)
	assert.Equal(t, "An unexpected fortunate discovery", entries[0].Definition)
}

func TestUpdateCommand_unknownID(t *testing.T) {
	setupCommandTest(t)

	_, err := executeCommand(t, newUpdateCommand(), "no-such-id", "--definition", "x")
	require.Error(t, err)
	var notFoundErr *dictionary.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestDeleteCommand(t *testing.T) {
	tmpDir := setupCommandTest(t)

	mustExecute(t, newAddCommand(), "Serendipity", "-d", "A pleasant surprise")
	id := readDictionarySlot(t, tmpDir)[0].ID

	output := mustExecute(t, newDeleteCommand(), id)
	assert.Contains(t, output, `Deleted "Serendipity".`)
	assert.Empty(t, readDictionarySlot(t, tmpDir))
}

func TestDeleteCommand_unknownID(t *testing.T) {
	setupCommandTest(t)

	output := mustExecute(t, newDeleteCommand(), "no-such-id")
	assert.Contains(t, output, `No entry with id "no-such-id".`)
}
