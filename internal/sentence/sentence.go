// Package sentence extracts and classifies words in free text.
package sentence

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

// InputType is the length class of a free-text input.
type InputType string

const (
	InputTypeWord     InputType = "word"
	InputTypePhrase   InputType = "phrase"
	InputTypeSentence InputType = "sentence"
)

const maxPhraseTokens = 5

var (
	wordPattern        = regexp.MustCompile(`[a-zA-Z']+`)
	terminatorsPattern = regexp.MustCompile(`[.!?]`)
)

// ExtractWords returns the unique lower-cased words of text in order of first appearance.
// Surrounding apostrophes are stripped and words shorter than two letters are dropped,
// so the result is stable when extracted again.
func ExtractWords(text string) []string {
	seen := make(map[string]struct{})
	words := make([]string, 0)
	for _, match := range wordPattern.FindAllString(text, -1) {
		word := strings.Trim(strings.ToLower(match), "'")
		if len(word) <= 1 {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}

// ClassifyInput decides whether text is a word, a phrase or a sentence.
// Length is checked first, then sentence punctuation.
func ClassifyInput(text string) InputType {
	text = strings.TrimSpace(text)
	tokens := strings.Fields(text)

	switch {
	case len(tokens) == 1:
		return InputTypeWord
	case len(tokens) >= 2 && len(tokens) <= maxPhraseTokens && !terminatorsPattern.MatchString(text):
		return InputTypePhrase
	default:
		return InputTypeSentence
	}
}

// WordLookup finds a stored word. It returns vocab.ErrNotFound for unknown words.
type WordLookup func(ctx context.Context, word string) (*vocab.WordRecord, error)

// ParseResult splits the words of a sentence into known and unknown ones.
type ParseResult struct {
	Sentence   string   `json:"sentence"`
	Words      []string `json:"words"`
	Known      []string `json:"known"`
	Unknown    []string `json:"unknown"`
	WordCount  int      `json:"word_count"`
	KnownRatio float64  `json:"known_ratio"`
}

// Parse extracts the words of text and checks each against lookup.
func Parse(ctx context.Context, text string, lookup WordLookup) (ParseResult, error) {
	words := ExtractWords(text)
	result := ParseResult{
		Sentence:  text,
		Words:     words,
		Known:     make([]string, 0),
		Unknown:   make([]string, 0),
		WordCount: len(words),
	}
	for _, word := range words {
		_, err := lookup(ctx, word)
		if errors.Is(err, vocab.ErrNotFound) {
			result.Unknown = append(result.Unknown, word)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("lookup(%s) > %w", word, err)
		}
		result.Known = append(result.Known, word)
	}
	if len(words) > 0 {
		result.KnownRatio = float64(len(result.Known)) / float64(len(words))
	}
	return result, nil
}

// BatchCheckResult holds the stored records of known words and the unknown words.
type BatchCheckResult struct {
	Known   map[string]*vocab.WordRecord `json:"known"`
	Unknown []string                     `json:"unknown"`
}

// BatchCheck looks every word up as given.
func BatchCheck(ctx context.Context, words []string, lookup WordLookup) (BatchCheckResult, error) {
	result := BatchCheckResult{
		Known:   make(map[string]*vocab.WordRecord),
		Unknown: make([]string, 0),
	}
	for _, word := range words {
		record, err := lookup(ctx, word)
		if errors.Is(err, vocab.ErrNotFound) {
			result.Unknown = append(result.Unknown, word)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("lookup(%s) > %w", word, err)
		}
		result.Known[word] = record
	}
	return result, nil
}
