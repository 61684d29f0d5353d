package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []Segment
	}{
		{
			name:  "empty query returns the text as one plain segment",
			text:  "Serendipity",
			query: "",
			want:  []Segment{{Text: "Serendipity", Kind: SegmentPlain}},
		},
		{
			name:  "empty text",
			text:  "",
			query: "luck",
			want:  nil,
		},
		{
			name:  "single case-insensitive match keeps original casing",
			text:  "A pleasant surprise",
			query: "PLEASANT",
			want: []Segment{
				{Text: "A ", Kind: SegmentPlain},
				{Text: "pleasant", Kind: SegmentMatched},
				{Text: " surprise", Kind: SegmentPlain},
			},
		},
		{
			name:  "multiple matches",
			text:  "luck and more luck",
			query: "luck",
			want: []Segment{
				{Text: "luck", Kind: SegmentMatched},
				{Text: " and more ", Kind: SegmentPlain},
				{Text: "luck", Kind: SegmentMatched},
			},
		},
		{
			name:  "adjacent matches",
			text:  "aaaa",
			query: "aa",
			want: []Segment{
				{Text: "aa", Kind: SegmentMatched},
				{Text: "aa", Kind: SegmentMatched},
			},
		},
		{
			name:  "whole text matches",
			text:  "luck",
			query: "Luck",
			want:  []Segment{{Text: "luck", Kind: SegmentMatched}},
		},
		{
			name:  "no match",
			text:  "Ephemeral",
			query: "luck",
			want:  []Segment{{Text: "Ephemeral", Kind: SegmentPlain}},
		},
		{
			name:  "dot is a literal character, not a wildcard",
			text:  "a.b axb",
			query: "a.b",
			want: []Segment{
				{Text: "a.b", Kind: SegmentMatched},
				{Text: " axb", Kind: SegmentPlain},
			},
		},
		{
			name:  "star is a literal character",
			text:  "2*3 equals 6",
			query: "2*3",
			want: []Segment{
				{Text: "2*3", Kind: SegmentMatched},
				{Text: " equals 6", Kind: SegmentPlain},
			},
		},
		{
			name:  "lowercasing that grows a rune keeps offsets aligned",
			text:  "Ⱥab",
			query: "ab",
			want: []Segment{
				{Text: "Ⱥ", Kind: SegmentPlain},
				{Text: "ab", Kind: SegmentMatched},
			},
		},
		{
			name:  "lowercasing that shrinks a rune keeps offsets aligned",
			text:  "İstanbul visit",
			query: "istanbul",
			want: []Segment{
				{Text: "İstanbul", Kind: SegmentMatched},
				{Text: " visit", Kind: SegmentPlain},
			},
		},
		{
			name:  "kelvin sign matches latin k",
			text:  "Kelvin scale",
			query: "kelvin",
			want: []Segment{
				{Text: "Kelvin", Kind: SegmentMatched},
				{Text: " scale", Kind: SegmentPlain},
			},
		},
		{
			name:  "parentheses are literal characters",
			text:  "call f(x) twice",
			query: "(x)",
			want: []Segment{
				{Text: "call f", Kind: SegmentPlain},
				{Text: "(x)", Kind: SegmentMatched},
				{Text: " twice", Kind: SegmentPlain},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.text, tt.query)
			assert.Equal(t, tt.want, got)

			// Segments always reassemble into the original text.
			var rebuilt strings.Builder
			for _, segment := range got {
				rebuilt.WriteString(segment.Text)
			}
			assert.Equal(t, tt.text, rebuilt.String())
		})
	}
}
