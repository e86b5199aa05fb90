package quiz

import (
	"math/rand/v2"
	"sort"

	"github.com/samber/lo"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

const DefaultCount = 10

// Focus is the ordering used to pick quiz items.
type Focus string

const (
	FocusLowMastery Focus = "low_mastery"
	FocusHighLookup Focus = "high_lookup"
	FocusNew        Focus = "new"
	FocusRandom     Focus = "random"
)

// Options configures Generate.
type Options struct {
	Count int
	Kind  vocab.KindFilter
	Focus Focus
	// Rand shuffles items for FocusRandom and unknown focuses. A nil Rand uses the global source.
	Rand *rand.Rand
}

// Item is a single quiz question.
type Item struct {
	ID          string     `json:"id"`
	Type        vocab.Kind `json:"type"`
	Question    string     `json:"question"`
	Answer      string     `json:"answer"`
	Phonetic    string     `json:"phonetic"`
	Examples    []string   `json:"examples"`
	Mastery     int        `json:"mastery"`
	LookupCount int        `json:"lookup_count"`
}

// Generate orders the records of the requested kind by focus and returns the first Count as quiz items.
// It returns an empty list when there is nothing to ask.
func Generate(records []vocab.Record, opts Options) []Item {
	kind := opts.Kind
	if kind == "" {
		kind = vocab.KindFilterAll
	}
	candidates := lo.Filter(records, func(record vocab.Record, _ int) bool {
		return kind.Includes(record.Kind())
	})
	if len(candidates) == 0 || opts.Count <= 0 {
		return []Item{}
	}

	order(candidates, opts.Focus, opts.Rand)

	selected := candidates[:min(opts.Count, len(candidates))]
	return lo.Map(selected, func(record vocab.Record, _ int) Item {
		return NewItem(record)
	})
}

// order sorts records in place. Unknown focuses shuffle like FocusRandom.
func order(records []vocab.Record, focus Focus, rng *rand.Rand) {
	switch focus {
	case FocusLowMastery:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].GetEntry().Mastery < records[j].GetEntry().Mastery
		})
	case FocusHighLookup:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].GetEntry().LookupCount > records[j].GetEntry().LookupCount
		})
	case FocusNew:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].GetEntry().CreatedAt.After(records[j].GetEntry().CreatedAt)
		})
	default:
		swap := func(i, j int) {
			records[i], records[j] = records[j], records[i]
		}
		if rng != nil {
			rng.Shuffle(len(records), swap)
			return
		}
		rand.Shuffle(len(records), swap)
	}
}

// NewItem projects a record into a quiz item.
func NewItem(record vocab.Record) Item {
	entry := record.GetEntry()
	examples := entry.Examples
	if examples == nil {
		examples = []string{}
	}
	return Item{
		ID:          record.Key(),
		Type:        record.Kind(),
		Question:    record.Key(),
		Answer:      entry.Definition,
		Phonetic:    entry.Phonetic,
		Examples:    examples,
		Mastery:     entry.Mastery,
		LookupCount: entry.LookupCount,
	}
}
