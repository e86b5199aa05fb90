package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/wordbook/internal/testutil"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

func TestSummarize(t *testing.T) {
	words := []*vocab.WordRecord{
		testutil.NewWord("apple", "a fruit", testutil.WithMastery(90), testutil.WithLookupCount(2)),
		testutil.NewWord("bank", "a financial institution", testutil.WithMastery(30), testutil.WithLookupCount(1),
			testutil.WithCreatedAt(testutil.FixtureTime.Add(time.Hour))),
		testutil.NewWord("cat", "an animal", testutil.WithMastery(29)),
	}
	phrases := []*vocab.PhraseRecord{
		testutil.NewPhrase("break the ice", "to start a conversation", testutil.WithMastery(80), testutil.WithLookupCount(4),
			testutil.WithCreatedAt(testutil.FixtureTime.Add(2*time.Hour))),
	}

	got := Summarize(words, phrases)

	assert.Equal(t, KindSummary{Total: 3, Mastered: 1, Learning: 1, New: 1, TotalLookups: 3}, got.Words)
	assert.Equal(t, KindSummary{Total: 1, Mastered: 1, TotalLookups: 4}, got.Phrases)

	keys := make([]string, len(got.RecentAdditions))
	for i, record := range got.RecentAdditions {
		keys[i] = record.Key()
	}
	assert.Equal(t, []string{"break the ice", "bank", "apple", "cat"}, keys)
}

func TestSummarize_RecentAdditionsLimit(t *testing.T) {
	words := make([]*vocab.WordRecord, 0, 12)
	for i := range 12 {
		words = append(words, testutil.NewWord(string(rune('a'+i))+"x", "definition",
			testutil.WithCreatedAt(testutil.FixtureTime.Add(time.Duration(i)*time.Minute))))
	}

	got := Summarize(words, nil)
	assert.Len(t, got.RecentAdditions, 10)
	assert.Equal(t, "lx", got.RecentAdditions[0].Key())
	assert.Equal(t, KindSummary{Total: 12, New: 12}, got.Words)
	assert.Equal(t, KindSummary{}, got.Phrases)
}

func TestCalculateStats(t *testing.T) {
	tests := []struct {
		name    string
		words   []*vocab.WordRecord
		phrases []*vocab.PhraseRecord
		want    Stats
	}{
		{
			name: "empty",
			want: Stats{},
		},
		{
			name: "phrase lookups are not counted",
			words: []*vocab.WordRecord{
				testutil.NewWord("apple", "a fruit", testutil.WithMastery(80), testutil.WithLookupCount(3)),
				testutil.NewWord("bank", "a financial institution", testutil.WithMastery(40)),
				testutil.NewWord("cat", "an animal"),
			},
			phrases: []*vocab.PhraseRecord{
				testutil.NewPhrase("break the ice", "to start a conversation", testutil.WithLookupCount(7)),
			},
			want: Stats{
				TotalWords:    3,
				TotalPhrases:  1,
				TotalLookups:  3,
				MasteredWords: 1,
				LearningWords: 1,
				NewWords:      1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateStats(tt.words, tt.phrases))
		})
	}
}
