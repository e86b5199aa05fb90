// https://rapidapi.com/dpventures/api/wordsapi
package rapidapi

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

type Response struct {
	Word          string        `json:"word"`
	Syllables     Syllable      `json:"syllables"`
	Frequency     float64       `json:"frequency"`
	Pronunciation Pronunciation `json:"pronunciation"`
	Results       []Result      `json:"results"`
}

type Syllable struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

type Pronunciation struct {
	All string `json:"all"`
}

func (p *Pronunciation) UnmarshalJSON(data []byte) error {
	// pronunciation can be either a struct or a simple string
	if len(data) > 0 && data[0] == '{' {
		var all struct {
			All string `json:"all"`
		}
		if err := json.Unmarshal(data, &all); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		p.All = all.All
		return nil
	}

	var all string
	if err := json.Unmarshal(data, &all); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	p.All = all
	return nil
}

type Result struct {
	Definition   string   `json:"definition"`
	Derivation   []string `json:"derivation,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms,omitempty"`
	SimilarTo    []string `json:"similarTo,omitempty"`
	TypeOf       []string `json:"typeOf,omitempty"`
	Examples     []string `json:"examples"`
}

// ToWordInput converts the response into a save request.
// The first result with a definition gives the definition and part of speech;
// examples, synonyms and antonyms of every result are merged.
func (r Response) ToWordInput() vocab.WordInput {
	input := vocab.WordInput{
		Word:     r.Word,
		Phonetic: r.Pronunciation.All,
	}
	for _, result := range r.Results {
		if input.Definition == "" && result.Definition != "" {
			input.Definition = result.Definition
			input.PartOfSpeech = result.PartOfSpeech
		}
		input.Examples = append(input.Examples, result.Examples...)
		input.Synonyms = append(input.Synonyms, result.Synonyms...)
		input.Antonyms = append(input.Antonyms, result.Antonyms...)
	}
	input.Examples = lo.Uniq(input.Examples)
	input.Synonyms = lo.Uniq(input.Synonyms)
	input.Antonyms = lo.Uniq(input.Antonyms)
	return input
}
