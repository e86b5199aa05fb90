package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

func TestYAMLSink_WriteAll(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	lookedUp := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		words       []*vocab.WordRecord
		phrases     []*vocab.PhraseRecord
		wantWords   []exportWord
		wantPhrases []exportPhrase
	}{
		{
			name: "writes both files",
			words: []*vocab.WordRecord{
				{
					Word:         "serendipity",
					PartOfSpeech: "noun",
					Synonyms:     []string{"luck"},
					Antonyms:     []string{},
					Entry: vocab.Entry{
						Definition:   "a fortunate accident",
						Examples:     []string{"It was pure serendipity."},
						CreatedAt:    created,
						UpdatedAt:    created,
						LastLookupAt: &lookedUp,
						LookupCount:  3,
						Mastery:      40,
					},
				},
			},
			phrases: []*vocab.PhraseRecord{
				{
					Phrase:  "break the ice",
					Literal: "romper el hielo",
					Entry: vocab.Entry{
						Definition: "to start a conversation",
						CreatedAt:  created,
						UpdatedAt:  created,
					},
				},
			},
			wantWords: []exportWord{
				{
					Word:         "serendipity",
					PartOfSpeech: "noun",
					Synonyms:     []string{"luck"},
					exportEntry: exportEntry{
						Definition:  "a fortunate accident",
						Examples:    []string{"It was pure serendipity."},
						CreatedAt:   "2025-01-02T03:04:05Z",
						UpdatedAt:   "2025-01-02T03:04:05Z",
						LastLookup:  "2025-02-01T00:00:00Z",
						LookupCount: 3,
						Mastery:     40,
					},
				},
			},
			wantPhrases: []exportPhrase{
				{
					Phrase:  "break the ice",
					Literal: "romper el hielo",
					exportEntry: exportEntry{
						Definition: "to start a conversation",
						CreatedAt:  "2025-01-02T03:04:05Z",
						UpdatedAt:  "2025-01-02T03:04:05Z",
					},
				},
			},
		},
		{
			name:        "empty store writes empty lists",
			wantWords:   []exportWord{},
			wantPhrases: []exportPhrase{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputDir := filepath.Join(t.TempDir(), "export")
			got, err := NewYAMLSink(outputDir).WriteAll(tt.words, tt.phrases)
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantWords), got.Words)
			assert.Equal(t, len(tt.wantPhrases), got.Phrases)

			content, err := os.ReadFile(got.WordsFile)
			require.NoError(t, err)
			gotWords := []exportWord{}
			require.NoError(t, yaml.Unmarshal(content, &gotWords))
			assert.Equal(t, tt.wantWords, gotWords)

			content, err = os.ReadFile(got.PhrasesFile)
			require.NoError(t, err)
			gotPhrases := []exportPhrase{}
			require.NoError(t, yaml.Unmarshal(content, &gotPhrases))
			assert.Equal(t, tt.wantPhrases, gotPhrases)
		})
	}
}
