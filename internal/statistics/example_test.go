package statistics_test

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/wordbook/internal/statistics"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

func ExampleCalculateStatistics() {
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	histories := map[string][]vocab.HistoryEntry{
		"2025-03-14": {
			{Query: "serendipity", Type: "word", Timestamp: at},
			{Query: "Serendipity", Type: "word", Timestamp: at},
			{Query: "break the ice", Type: "phrase", Timestamp: at},
		},
	}

	result := statistics.CalculateStatistics(histories, 2025, 3)
	for _, period := range result.Periods {
		fmt.Printf("%s: %d queries, %d unique\n", period.Period, period.QueriesCount, period.UniqueQueries)
	}
	// Output:
	// 2025-03: 3 queries, 2 unique
}
