package quiz

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/wordbook/internal/testutil"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

func itemIDs(items []Item) []string {
	return lo.Map(items, func(item Item, _ int) string {
		return item.ID
	})
}

func TestGenerate(t *testing.T) {
	day := 24 * time.Hour
	records := []vocab.Record{
		testutil.NewWord("apple", "a fruit",
			testutil.WithMastery(60), testutil.WithLookupCount(1), testutil.WithCreatedAt(testutil.FixtureTime)),
		testutil.NewWord("bank", "a financial institution",
			testutil.WithMastery(20), testutil.WithLookupCount(5), testutil.WithCreatedAt(testutil.FixtureTime.Add(2*day))),
		testutil.NewWord("cat", "an animal",
			testutil.WithMastery(20), testutil.WithCreatedAt(testutil.FixtureTime.Add(day))),
		testutil.NewPhrase("break the ice", "to start a conversation",
			testutil.WithMastery(0), testutil.WithLookupCount(2), testutil.WithCreatedAt(testutil.FixtureTime.Add(3*day))),
	}

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "low mastery first",
			opts: Options{Count: 10, Kind: vocab.KindFilterAll, Focus: FocusLowMastery},
			want: []string{"break the ice", "bank", "cat", "apple"},
		},
		{
			name: "high lookup first",
			opts: Options{Count: 10, Kind: vocab.KindFilterAll, Focus: FocusHighLookup},
			want: []string{"bank", "break the ice", "apple", "cat"},
		},
		{
			name: "newest first",
			opts: Options{Count: 10, Kind: vocab.KindFilterAll, Focus: FocusNew},
			want: []string{"break the ice", "bank", "cat", "apple"},
		},
		{
			name: "words only",
			opts: Options{Count: 10, Kind: vocab.KindFilterWord, Focus: FocusLowMastery},
			want: []string{"bank", "cat", "apple"},
		},
		{
			name: "phrases only",
			opts: Options{Count: 10, Kind: vocab.KindFilterPhrase, Focus: FocusLowMastery},
			want: []string{"break the ice"},
		},
		{
			name: "empty kind means all",
			opts: Options{Count: 2, Focus: FocusHighLookup},
			want: []string{"bank", "break the ice"},
		},
		{
			name: "count limits the items",
			opts: Options{Count: 1, Kind: vocab.KindFilterWord, Focus: FocusLowMastery},
			want: []string{"bank"},
		},
		{
			name: "zero count",
			opts: Options{Count: 0, Kind: vocab.KindFilterAll, Focus: FocusLowMastery},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itemIDs(Generate(records, tt.opts)))
		})
	}

	t.Run("does not reorder the input", func(t *testing.T) {
		Generate(records, Options{Count: 10, Focus: FocusNew})
		assert.Equal(t, "apple", records[0].Key())
	})

	t.Run("no records", func(t *testing.T) {
		assert.Equal(t, []Item{}, Generate(nil, Options{Count: 10, Focus: FocusRandom}))
	})
}

func TestGenerate_Random(t *testing.T) {
	records := make([]vocab.Record, 0, 20)
	for i := range 20 {
		records = append(records, testutil.NewWord(string(rune('a'+i))+"x", "definition"))
	}
	all := lo.Map(records, func(record vocab.Record, _ int) string {
		return record.Key()
	})

	for _, focus := range []Focus{FocusRandom, Focus("unknown")} {
		t.Run(string(focus), func(t *testing.T) {
			first := Generate(records, Options{Count: 20, Focus: focus, Rand: rand.New(rand.NewPCG(1, 2))})
			second := Generate(records, Options{Count: 20, Focus: focus, Rand: rand.New(rand.NewPCG(1, 2))})

			assert.Equal(t, itemIDs(first), itemIDs(second))
			assert.ElementsMatch(t, all, itemIDs(first))

			limited := Generate(records, Options{Count: 5, Focus: focus})
			assert.Len(t, limited, 5)
			assert.Len(t, lo.Uniq(itemIDs(limited)), 5)
		})
	}
}

func TestNewItem(t *testing.T) {
	word := testutil.NewWord("apple", "a fruit", testutil.WithMastery(30), testutil.WithLookupCount(2), testutil.WithExamples("An apple a day."))
	word.Phonetic = "ˈæp.əl"

	assert.Equal(t, Item{
		ID:          "apple",
		Type:        vocab.KindWord,
		Question:    "apple",
		Answer:      "a fruit",
		Phonetic:    "ˈæp.əl",
		Examples:    []string{"An apple a day."},
		Mastery:     30,
		LookupCount: 2,
	}, NewItem(word))

	phrase := &vocab.PhraseRecord{Phrase: "break a leg", Entry: vocab.Entry{Definition: "good luck"}}
	assert.Equal(t, []string{}, NewItem(phrase).Examples)
}
