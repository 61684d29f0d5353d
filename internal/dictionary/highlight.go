package dictionary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SegmentKind tags a highlight segment as matched or plain text.
type SegmentKind int

const (
	SegmentPlain SegmentKind = iota
	SegmentMatched
)

// Segment is one run of text produced by Highlight.
type Segment struct {
	Text string
	Kind SegmentKind
}

// Highlight splits text on every case-insensitive occurrence of query and
// tags the pieces in order. The query is treated as a literal substring, so
// characters that are special in regular expressions carry no meaning. An
// empty query returns the whole text as a single plain segment.
func Highlight(text, query string) []Segment {
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: text, Kind: SegmentPlain}}
	}

	lowerQuery := strings.ToLower(query)

	// Lowercasing can change a rune's UTF-8 length (Ⱥ is two bytes, ⱥ is
	// three), so byte offsets found in the lowered text do not line up with
	// the original. Build the lowered text rune by rune and record the
	// original offset every lowered byte came from.
	var lowered strings.Builder
	lowered.Grow(len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		lower := unicode.ToLower(r)
		for range utf8.RuneLen(lower) {
			offsets = append(offsets, i)
		}
		lowered.WriteRune(lower)
	}
	offsets = append(offsets, len(text))
	lowerText := lowered.String()

	var segments []Segment
	start := 0
	for {
		offset := strings.Index(lowerText[start:], lowerQuery)
		if offset < 0 {
			break
		}
		match := start + offset
		if offsets[match] > offsets[start] {
			segments = append(segments, Segment{Text: text[offsets[start]:offsets[match]], Kind: SegmentPlain})
		}
		end := match + len(lowerQuery)
		segments = append(segments, Segment{Text: text[offsets[match]:offsets[end]], Kind: SegmentMatched})
		start = end
	}
	if offsets[start] < len(text) {
		segments = append(segments, Segment{Text: text[offsets[start]:], Kind: SegmentPlain})
	}
	return segments
}
