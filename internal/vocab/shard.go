package vocab

import (
	"strings"
	"time"
)

const (
	phraseFallbackShard = "misc"
	historyDateLayout   = "2006-01-02"
)

// NormalizeKey returns the identity of a word or phrase.
func NormalizeKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// WordShard returns the shard holding word: its first two letters,
// or the single letter followed by "_" for one-letter words.
func WordShard(word string) string {
	runes := []rune(NormalizeKey(word))
	if len(runes) >= 2 {
		return string(runes[:2])
	}
	return string(runes) + "_"
}

// PhraseShard returns the shard holding phrase: its first word.
func PhraseShard(phrase string) string {
	fields := strings.Fields(NormalizeKey(phrase))
	if len(fields) == 0 {
		return phraseFallbackShard
	}
	return fields[0]
}

// HistoryShard returns the shard of the day t belongs to.
func HistoryShard(t time.Time) string {
	return t.Format(historyDateLayout)
}
