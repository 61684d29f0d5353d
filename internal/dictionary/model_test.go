package dictionary

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSynonyms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma separated list with whitespace",
			raw:  " luck , chance ",
			want: []string{"luck", "chance"},
		},
		{
			name: "empty tokens are discarded",
			raw:  "luck,,, chance,",
			want: []string{"luck", "chance"},
		},
		{
			name: "duplicates are kept in order",
			raw:  "luck, luck, chance",
			want: []string{"luck", "luck", "chance"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "only separators and whitespace",
			raw:  " , ,  ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSynonyms(tt.raw))
		})
	}
}

func TestEpochMillis_JSON(t *testing.T) {
	created := NewEpochMillis(time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC))

	data, err := json.Marshal(created)
	require.NoError(t, err)
	assert.Equal(t, "1741944413589", string(data))

	var decoded EpochMillis
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, created.Time(), decoded.Time())
}

func TestEpochMillis_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantMillis int64
		wantErr    bool
	}{
		{
			name:       "integer milliseconds",
			data:       `1741944413589`,
			wantMillis: 1741944413589,
		},
		{
			name: "integers above float64 precision are exact",
			// 1<<53 + 1 is not representable as a float64.
			data:       `9007199254740993`,
			wantMillis: 9007199254740993,
		},
		{
			name:       "fractional milliseconds are truncated",
			data:       `1741944413589.7`,
			wantMillis: 1741944413589,
		},
		{
			name:    "non-numeric value",
			data:    `"not-a-number"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decoded EpochMillis
			err := json.Unmarshal([]byte(tt.data), &decoded)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMillis, decoded.Time().UnixMilli())
		})
	}
}

func TestEntry_JSONFieldNames(t *testing.T) {
	entry := Entry{
		ID:         "1",
		Word:       "x",
		Definition: "y",
		Synonyms:   []string{},
		CreatedAt:  EpochMillis(time.UnixMilli(0).UTC()),
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","word":"x","definition":"y","synonyms":[],"createdAt":0}`, string(data))
}
