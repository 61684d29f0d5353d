// Package lookup fetches definition and synonym suggestions for a word from
// the WordsAPI, with a local file cache in front of the network.
package lookup

// https://rapidapi.com/dpventures/api/wordsapi

// Response is the WordsAPI answer for one word.
type Response struct {
	Word    string   `json:"word"`
	Results []Result `json:"results"`
}

// Result is one sense of the looked-up word.
type Result struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Examples     []string `json:"examples"`
}

// Suggestion is the condensed form of a response used to prefill a new
// dictionary entry: the first definition plus the synonyms of all senses in
// order, without deduplication across senses.
type Suggestion struct {
	Word       string
	Definition string
	Synonyms   []string
}

// ToSuggestion condenses the response. It returns false when the response
// carries no results to suggest from.
func (r Response) ToSuggestion() (Suggestion, bool) {
	if len(r.Results) == 0 {
		return Suggestion{}, false
	}
	suggestion := Suggestion{
		Word:       r.Word,
		Definition: r.Results[0].Definition,
	}
	for _, result := range r.Results {
		suggestion.Synonyms = append(suggestion.Synonyms, result.Synonyms...)
	}
	return suggestion, true
}
