// Package vocab provides the word and phrase records and the operations that read and update them.
package vocab

import (
	"fmt"
	"time"
)

// Kind tags a record as a word or a phrase.
type Kind string

const (
	KindWord   Kind = "word"
	KindPhrase Kind = "phrase"
)

// KindFilter selects which kinds of records to collect.
type KindFilter string

const (
	KindFilterWord   KindFilter = "word"
	KindFilterPhrase KindFilter = "phrase"
	KindFilterAll    KindFilter = "all"
)

// ParseKindFilter validates a kind filter given on the command line.
func ParseKindFilter(value string) (KindFilter, error) {
	switch f := KindFilter(value); f {
	case KindFilterWord, KindFilterPhrase, KindFilterAll:
		return f, nil
	}
	return "", fmt.Errorf("invalid item type: %s", value)
}

// Includes reports whether records of kind pass the filter.
func (f KindFilter) Includes(kind Kind) bool {
	return f == KindFilterAll || string(f) == string(kind)
}

// Entry holds the fields shared by words and phrases.
type Entry struct {
	Definition   string     `json:"definition"`
	Phonetic     string     `json:"phonetic"`
	Examples     []string   `json:"examples"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLookupAt *time.Time `json:"last_lookup,omitempty"`
	LookupCount  int        `json:"lookup_count"`
	Mastery      int        `json:"mastery"`
}

// Record is the common projection of WordRecord and PhraseRecord.
type Record interface {
	Key() string
	Kind() Kind
	GetEntry() Entry
}

type WordRecord struct {
	Word         string   `json:"word"`
	PartOfSpeech string   `json:"pos"`
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms"`
	Entry
}

func (w *WordRecord) Key() string     { return w.Word }
func (w *WordRecord) Kind() Kind      { return KindWord }
func (w *WordRecord) GetEntry() Entry { return w.Entry }

type PhraseRecord struct {
	Phrase  string `json:"phrase"`
	Literal string `json:"literal"`
	Entry
}

func (p *PhraseRecord) Key() string     { return p.Phrase }
func (p *PhraseRecord) Kind() Kind      { return KindPhrase }
func (p *PhraseRecord) GetEntry() Entry { return p.Entry }

var (
	_ Record = (*WordRecord)(nil)
	_ Record = (*PhraseRecord)(nil)
)

// HistoryEntry is a single logged query.
type HistoryEntry struct {
	Query     string    `json:"query"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}
