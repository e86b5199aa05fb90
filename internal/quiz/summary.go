package quiz

import (
	"sort"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

const recentAdditionsLimit = 10

// KindSummary counts the records of one kind by tier.
type KindSummary struct {
	Total        int `json:"total"`
	Mastered     int `json:"mastered"`
	Learning     int `json:"learning"`
	New          int `json:"new"`
	TotalLookups int `json:"total_lookups"`
}

// Summary is the learning progress over all records.
type Summary struct {
	Words           KindSummary    `json:"words"`
	Phrases         KindSummary    `json:"phrases"`
	RecentAdditions []vocab.Record `json:"recent_additions"`
}

// Stats is the compact progress report of the vocab stats command.
type Stats struct {
	TotalWords    int `json:"total_words"`
	TotalPhrases  int `json:"total_phrases"`
	TotalLookups  int `json:"total_lookups"`
	MasteredWords int `json:"mastered_words"`
	LearningWords int `json:"learning_words"`
	NewWords      int `json:"new_words"`
}

func summarizeKind[T vocab.Record](records []T) KindSummary {
	summary := KindSummary{Total: len(records)}
	for _, record := range records {
		entry := record.GetEntry()
		summary.TotalLookups += entry.LookupCount
		switch vocab.TierOf(entry.Mastery) {
		case vocab.TierMastered:
			summary.Mastered++
		case vocab.TierLearning:
			summary.Learning++
		default:
			summary.New++
		}
	}
	return summary
}

// Summarize buckets words and phrases by tier and lists the most recently created records.
func Summarize(words []*vocab.WordRecord, phrases []*vocab.PhraseRecord) Summary {
	recent := make([]vocab.Record, 0, len(words)+len(phrases))
	for _, w := range words {
		recent = append(recent, w)
	}
	for _, p := range phrases {
		recent = append(recent, p)
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].GetEntry().CreatedAt.After(recent[j].GetEntry().CreatedAt)
	})

	return Summary{
		Words:           summarizeKind(words),
		Phrases:         summarizeKind(phrases),
		RecentAdditions: recent[:min(recentAdditionsLimit, len(recent))],
	}
}

// CalculateStats reports totals, word lookups and word tiers.
func CalculateStats(words []*vocab.WordRecord, phrases []*vocab.PhraseRecord) Stats {
	wordSummary := summarizeKind(words)
	return Stats{
		TotalWords:    wordSummary.Total,
		TotalPhrases:  len(phrases),
		TotalLookups:  wordSummary.TotalLookups,
		MasteredWords: wordSummary.Mastered,
		LearningWords: wordSummary.Learning,
		NewWords:      wordSummary.New,
	}
}
