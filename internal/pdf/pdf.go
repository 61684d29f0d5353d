// Package pdf renders the dictionary collection to a printable PDF by way
// of an intermediate markdown document.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/kmizuta/wordbook/internal/dictionary"
)

// RenderMarkdown builds a markdown document for the whole collection, one
// section per entry in insertion order.
func RenderMarkdown(entries []dictionary.Entry) string {
	var builder strings.Builder
	builder.WriteString("# Personal Dictionary\n")
	for _, entry := range entries {
		builder.WriteString(fmt.Sprintf("\n## %s\n\n", entry.Word))
		builder.WriteString(entry.Definition)
		builder.WriteString("\n")
		if len(entry.Synonyms) > 0 {
			builder.WriteString(fmt.Sprintf("\nSynonyms: %s\n", strings.Join(entry.Synonyms, ", ")))
		}
	}
	return builder.String()
}

// WriteCollectionPDF renders the entries to markdown and converts the result
// to a PDF at pdfPath. The intermediate markdown file is written next to the
// PDF and removed afterwards.
func WriteCollectionPDF(entries []dictionary.Entry, pdfPath string) (string, error) {
	markdownPath := strings.TrimSuffix(pdfPath, ".pdf") + ".md"
	if err := os.WriteFile(markdownPath, []byte(RenderMarkdown(entries)), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	defer func() {
		_ = os.Remove(markdownPath)
	}()

	return ConvertMarkdownToPDF(markdownPath)
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package
// The PDF file will be created in the same directory as the markdown file
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
