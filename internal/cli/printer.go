// Package cli renders dictionary state for the terminal and gathers user
// confirmations. It is the presentation boundary: every store error is
// surfaced here as a readable message, never a panic.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kmizuta/wordbook/internal/dictionary"
	"github.com/kmizuta/wordbook/internal/lookup"
)

// Printer writes formatted dictionary output to a writer.
type Printer struct {
	out     io.Writer
	bold    *color.Color
	matched *color.Color
	faint   *color.Color
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		bold:    color.New(color.Bold),
		matched: color.New(color.FgYellow, color.Bold),
		faint:   color.New(color.Faint),
	}
}

// PrintEntry renders a single entry with its id and synonyms.
func (p *Printer) PrintEntry(entry dictionary.Entry) {
	fmt.Fprintf(p.out, "%s: %s\n", p.bold.Sprint(entry.Word), entry.Definition)
	if len(entry.Synonyms) > 0 {
		fmt.Fprintf(p.out, "  synonyms: %s\n", strings.Join(entry.Synonyms, ", "))
	}
	fmt.Fprintf(p.out, "  %s\n", p.faint.Sprintf("id: %s, added: %s", entry.ID, entry.CreatedAt.Time().Format("2006-01-02")))
}

// PrintEntries renders the whole collection in order.
func (p *Printer) PrintEntries(entries []dictionary.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.out, "The dictionary is empty.")
		return
	}
	for _, entry := range entries {
		p.PrintEntry(entry)
	}
}

// PrintMatch renders one search result, colorizing every occurrence of the
// query inside the word, the definition, and the synonyms.
func (p *Printer) PrintMatch(entry dictionary.Entry, query string) {
	word := p.highlighted(entry.Word, query, p.bold)
	definition := p.highlighted(entry.Definition, query, nil)
	fmt.Fprintf(p.out, "%s: %s\n", word, definition)
	if len(entry.Synonyms) > 0 {
		highlightedSynonyms := make([]string, 0, len(entry.Synonyms))
		for _, synonym := range entry.Synonyms {
			highlightedSynonyms = append(highlightedSynonyms, p.highlighted(synonym, query, nil))
		}
		fmt.Fprintf(p.out, "  synonyms: %s\n", strings.Join(highlightedSynonyms, ", "))
	}
	fmt.Fprintf(p.out, "  %s\n", p.faint.Sprintf("id: %s", entry.ID))
}

// PrintSuggestion renders an online lookup result.
func (p *Printer) PrintSuggestion(suggestion lookup.Suggestion) {
	fmt.Fprintf(p.out, "%s: %s\n", p.bold.Sprint(suggestion.Word), suggestion.Definition)
	if len(suggestion.Synonyms) > 0 {
		fmt.Fprintf(p.out, "  synonyms: %s\n", strings.Join(suggestion.Synonyms, ", "))
	}
}

// highlighted rebuilds text with matched segments colorized. The base color
// is applied to plain segments when given.
func (p *Printer) highlighted(text, query string, base *color.Color) string {
	var builder strings.Builder
	for _, segment := range dictionary.Highlight(text, query) {
		switch segment.Kind {
		case dictionary.SegmentMatched:
			builder.WriteString(p.matched.Sprint(segment.Text))
		default:
			if base != nil {
				builder.WriteString(base.Sprint(segment.Text))
			} else {
				builder.WriteString(segment.Text)
			}
		}
	}
	return builder.String()
}
