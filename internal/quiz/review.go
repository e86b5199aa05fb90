// Package quiz ranks stored records for review and selects quiz items from them.
package quiz

import (
	"sort"

	"github.com/samber/lo"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

const (
	DefaultReviewLimit = 20

	// lookupWeight is how many mastery points a single lookup is worth.
	lookupWeight = 5
)

// Candidate is a record ranked for review.
type Candidate struct {
	Item        string     `json:"item"`
	Type        vocab.Kind `json:"type"`
	Mastery     int        `json:"mastery"`
	LookupCount int        `json:"lookup_count"`
	Definition  string     `json:"definition"`
	Score       int        `json:"score"`
}

// Score rates how much a record needs review.
// Both low mastery and frequent lookups raise the score.
func Score(entry vocab.Entry) int {
	return (vocab.MaxMastery - entry.Mastery) + entry.LookupCount*lookupWeight
}

// ReviewCandidates returns the limit records with the highest scores, highest first.
// Records with equal scores keep their order in records.
func ReviewCandidates(records []vocab.Record, limit int) []Candidate {
	if limit <= 0 {
		return []Candidate{}
	}

	candidates := lo.Map(records, func(record vocab.Record, _ int) Candidate {
		entry := record.GetEntry()
		return Candidate{
			Item:        record.Key(),
			Type:        record.Kind(),
			Mastery:     entry.Mastery,
			LookupCount: entry.LookupCount,
			Definition:  entry.Definition,
			Score:       Score(entry),
		}
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates[:min(limit, len(candidates))]
}
