package statistics

import (
	"fmt"
	"sort"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

// QueryStatistics holds query counts for a month.
type QueryStatistics struct {
	Period        string         `json:"period"` // "2025-01"
	QueriesCount  int            `json:"queries_count"`
	UniqueQueries int            `json:"unique_queries"`
	CountsByType  map[string]int `json:"counts_by_type"`
}

// AggregateStatistics holds totals across all periods with global unique counts
type AggregateStatistics struct {
	QueriesCount  int            `json:"queries_count"`
	UniqueQueries int            `json:"unique_queries"` // deduplicated across periods
	CountsByType  map[string]int `json:"counts_by_type"`
}

// StatisticsResult holds both per-period and aggregate statistics
type StatisticsResult struct {
	Periods   []QueryStatistics   `json:"periods"`
	Aggregate AggregateStatistics `json:"aggregate"`
}

type periodData struct {
	total   int
	unique  map[string]struct{}
	byTypes map[string]int
}

// CalculateStatistics aggregates logged queries by month.
// It accepts optional year and month filters (0 means no filter).
// Queries are compared case-insensitively when counting unique ones.
func CalculateStatistics(histories map[string][]vocab.HistoryEntry, year, month int) StatisticsResult {
	stats := make(map[string]*periodData)
	globalUnique := make(map[string]struct{})
	aggregate := AggregateStatistics{
		CountsByType: make(map[string]int),
	}

	for _, entries := range histories {
		for _, entry := range entries {
			if entry.Timestamp.IsZero() {
				continue
			}
			logYear := entry.Timestamp.Year()
			logMonth := int(entry.Timestamp.Month())
			if !matchesFilter(logYear, logMonth, year, month) {
				continue
			}

			period := fmt.Sprintf("%d-%02d", logYear, logMonth)
			ensurePeriodExists(stats, period)

			query := vocab.NormalizeKey(entry.Query)
			stats[period].total++
			stats[period].unique[query] = struct{}{}
			stats[period].byTypes[entry.Type]++

			globalUnique[query] = struct{}{}
			aggregate.QueriesCount++
			aggregate.CountsByType[entry.Type]++
		}
	}
	aggregate.UniqueQueries = len(globalUnique)

	return StatisticsResult{
		Periods:   buildPeriods(stats),
		Aggregate: aggregate,
	}
}

func ensurePeriodExists(stats map[string]*periodData, period string) {
	if stats[period] == nil {
		stats[period] = &periodData{
			unique:  make(map[string]struct{}),
			byTypes: make(map[string]int),
		}
	}
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildPeriods(stats map[string]*periodData) []QueryStatistics {
	periods := make([]QueryStatistics, 0, len(stats))
	for period, data := range stats {
		periods = append(periods, QueryStatistics{
			Period:        period,
			QueriesCount:  data.total,
			UniqueQueries: len(data.unique),
			CountsByType:  data.byTypes,
		})
	}

	// Sort by period descending (newest first)
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})
	return periods
}
