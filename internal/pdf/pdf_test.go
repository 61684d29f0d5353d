package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmizuta/wordbook/internal/dictionary"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		entries []dictionary.Entry
		want    string
	}{
		{
			name:    "empty collection",
			entries: nil,
			want:    "# Personal Dictionary\n",
		},
		{
			name: "one section per entry in order",
			entries: []dictionary.Entry{
				{Word: "Serendipity", Definition: "A pleasant surprise", Synonyms: []string{"luck", "chance"}},
				{Word: "Ephemeral", Definition: "Lasting a very short time", Synonyms: []string{}},
			},
			want: "# Personal Dictionary\n" +
				"\n## Serendipity\n\n" +
				"A pleasant surprise\n" +
				"\nSynonyms: luck, chance\n" +
				"\n## Ephemeral\n\n" +
				"Lasting a very short time\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMarkdown(tt.entries))
		})
	}
}

func TestWriteCollectionPDF(t *testing.T) {
	entries := []dictionary.Entry{
		{Word: "Serendipity", Definition: "A pleasant surprise", Synonyms: []string{"luck"}},
	}
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "dictionary.pdf")

	got, err := WriteCollectionPDF(entries, pdfPath)
	require.NoError(t, err)

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// The intermediate markdown file is cleaned up.
	_, err = os.Stat(filepath.Join(dir, "dictionary.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertMarkdownToPDF(t *testing.T) {
	t.Run("rejects non-markdown input", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF(filepath.Join(t.TempDir(), "notes.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must have .md extension")
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := ConvertMarkdownToPDF(filepath.Join(t.TempDir(), "missing.md"))
		require.Error(t, err)
	})

	t.Run("converts a markdown file", func(t *testing.T) {
		dir := t.TempDir()
		markdownPath := filepath.Join(dir, "dictionary.md")
		require.NoError(t, os.WriteFile(markdownPath, []byte("# Personal Dictionary\n"), 0644))

		got, err := ConvertMarkdownToPDF(markdownPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "dictionary.pdf"), got)

		info, err := os.Stat(got)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})
}
