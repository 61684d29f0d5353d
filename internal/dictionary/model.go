// Package dictionary provides the word entry domain model and the store
// that keeps the in-memory collection synchronized with its repository.
package dictionary

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entry represents a single word in the personal dictionary.
type Entry struct {
	ID         string      `json:"id" yaml:"id"`
	Word       string      `json:"word" yaml:"word"`
	Definition string      `json:"definition" yaml:"definition"`
	Synonyms   []string    `json:"synonyms" yaml:"synonyms"`
	CreatedAt  EpochMillis `json:"createdAt" yaml:"created_at"`
}

// matches reports whether the entry's word, definition, or any synonym
// contains the already-lowercased query.
func (e Entry) matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(e.Word), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Definition), lowerQuery) {
		return true
	}
	for _, synonym := range e.Synonyms {
		if strings.Contains(strings.ToLower(synonym), lowerQuery) {
			return true
		}
	}
	return false
}

// EpochMillis is a timestamp serialized as epoch milliseconds.
type EpochMillis time.Time

// NewEpochMillis truncates t to millisecond precision so a value survives a
// serialization round trip unchanged.
func NewEpochMillis(t time.Time) EpochMillis {
	return EpochMillis(time.UnixMilli(t.UnixMilli()).UTC())
}

// Time returns the underlying time.Time.
func (m EpochMillis) Time() time.Time {
	return time.Time(m)
}

// MarshalJSON serializes the timestamp as a JSON number of epoch milliseconds.
func (m EpochMillis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(time.Time(m).UnixMilli(), 10)), nil
}

// UnmarshalJSON accepts a JSON number of epoch milliseconds. Integer values
// are parsed exactly; a fractional number is truncated to the millisecond.
func (m *EpochMillis) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		value, floatErr := strconv.ParseFloat(raw, 64)
		if floatErr != nil {
			return fmt.Errorf("strconv.ParseInt(%s) > %w", raw, err)
		}
		millis = int64(value)
	}
	*m = EpochMillis(time.UnixMilli(millis).UTC())
	return nil
}

// MarshalYAML serializes the timestamp as epoch milliseconds, matching the
// JSON representation.
func (m EpochMillis) MarshalYAML() (interface{}, error) {
	return time.Time(m).UnixMilli(), nil
}

// ParseSynonyms splits a comma-separated synonym list, trimming whitespace
// around each token and discarding empty ones. Order is preserved and
// duplicate tokens are kept as given.
func ParseSynonyms(raw string) []string {
	tokens := strings.Split(raw, ",")
	synonyms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		synonyms = append(synonyms, token)
	}
	return synonyms
}
