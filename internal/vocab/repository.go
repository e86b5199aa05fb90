package vocab

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/at-ishikawa/wordbook/internal/storage"
)

const historyQueriesKey = "queries"

// Repository reads and writes word, phrase and history records through a storage.Store.
// Each mutation is a read-modify-write of a single shard.
type Repository struct {
	store storage.Store
	now   func() time.Time
}

// RepositoryOption configures optional fields of a Repository.
type RepositoryOption func(*Repository)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) RepositoryOption {
	return func(r *Repository) {
		r.now = now
	}
}

func NewRepository(store storage.Store, opts ...RepositoryOption) *Repository {
	r := &Repository{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository) GetWord(ctx context.Context, word string) (*WordRecord, error) {
	key := NormalizeKey(word)
	return getRecord[WordRecord](ctx, r.store, storage.NamespaceWords, WordShard(key), key)
}

func (r *Repository) GetPhrase(ctx context.Context, phrase string) (*PhraseRecord, error) {
	key := NormalizeKey(phrase)
	return getRecord[PhraseRecord](ctx, r.store, storage.NamespacePhrases, PhraseShard(key), key)
}

// SaveWord creates or updates a word and returns the stored record.
func (r *Repository) SaveWord(ctx context.Context, input WordInput) (*WordRecord, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	key := NormalizeKey(input.Word)
	shard := WordShard(key)
	records, err := loadRecords[WordRecord](ctx, r.store, storage.NamespaceWords, shard)
	if err != nil {
		return nil, err
	}

	now := r.now()
	existing, ok := records[key]
	if !ok {
		existing = &WordRecord{Entry: Entry{CreatedAt: now}}
	}
	record := &WordRecord{
		Word:         key,
		PartOfSpeech: preferString(input.PartOfSpeech, existing.PartOfSpeech),
		Synonyms:     preferList(input.Synonyms, existing.Synonyms),
		Antonyms:     preferList(input.Antonyms, existing.Antonyms),
		Entry:        mergeEntry(existing.Entry, input.Definition, input.Phonetic, input.Examples, now),
	}
	records[key] = record

	if err := saveRecords(ctx, r.store, storage.NamespaceWords, shard, records); err != nil {
		return nil, err
	}
	slog.Default().Debug("saved word", slog.String("word", key), slog.Bool("created", !ok))
	return record, nil
}

// SavePhrase creates or updates a phrase and returns the stored record.
func (r *Repository) SavePhrase(ctx context.Context, input PhraseInput) (*PhraseRecord, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	key := NormalizeKey(input.Phrase)
	shard := PhraseShard(key)
	records, err := loadRecords[PhraseRecord](ctx, r.store, storage.NamespacePhrases, shard)
	if err != nil {
		return nil, err
	}

	now := r.now()
	existing, ok := records[key]
	if !ok {
		existing = &PhraseRecord{Entry: Entry{CreatedAt: now}}
	}
	record := &PhraseRecord{
		Phrase:  key,
		Literal: preferString(input.Literal, existing.Literal),
		Entry:   mergeEntry(existing.Entry, input.Definition, input.Phonetic, input.Examples, now),
	}
	records[key] = record

	if err := saveRecords(ctx, r.store, storage.NamespacePhrases, shard, records); err != nil {
		return nil, err
	}
	slog.Default().Debug("saved phrase", slog.String("phrase", key), slog.Bool("created", !ok))
	return record, nil
}

// mergeEntry keeps created_at, counters and mastery, and only overwrites
// optional fields with non-empty values.
func mergeEntry(prev Entry, definition, phonetic string, examples []string, now time.Time) Entry {
	return Entry{
		Definition:   definition,
		Phonetic:     preferString(phonetic, prev.Phonetic),
		Examples:     preferList(examples, prev.Examples),
		CreatedAt:    prev.CreatedAt,
		UpdatedAt:    now,
		LastLookupAt: prev.LastLookupAt,
		LookupCount:  prev.LookupCount,
		Mastery:      prev.Mastery,
	}
}

// IncrementLookup counts a lookup of the record and returns the updated record.
func (r *Repository) IncrementLookup(ctx context.Context, kind Kind, key string) (Record, error) {
	now := r.now()
	return r.updateEntry(ctx, kind, key, func(e *Entry) {
		e.LookupCount++
		e.LastLookupAt = &now
	})
}

// UpdateMastery applies a quiz result to the record and returns the new mastery.
// ErrNotFound is returned when the record doesn't exist.
func (r *Repository) UpdateMastery(ctx context.Context, kind Kind, key string, correct bool) (int, error) {
	var mastery int
	if _, err := r.updateEntry(ctx, kind, key, func(e *Entry) {
		e.Mastery = NextMastery(e.Mastery, correct)
		mastery = e.Mastery
	}); err != nil {
		return 0, err
	}
	return mastery, nil
}

func (r *Repository) updateEntry(ctx context.Context, kind Kind, key string, fn func(*Entry)) (Record, error) {
	key = NormalizeKey(key)
	switch kind {
	case KindWord:
		record, err := updateRecord(ctx, r.store, storage.NamespaceWords, WordShard(key), key, func(w *WordRecord) {
			fn(&w.Entry)
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	case KindPhrase:
		record, err := updateRecord(ctx, r.store, storage.NamespacePhrases, PhraseShard(key), key, func(p *PhraseRecord) {
			fn(&p.Entry)
		})
		if err != nil {
			return nil, err
		}
		return record, nil
	}
	return nil, fmt.Errorf("unknown record kind: %s", kind)
}

// Words returns every word ordered by shard name, then key.
func (r *Repository) Words(ctx context.Context) ([]*WordRecord, error) {
	return scanRecords[WordRecord](ctx, r.store, storage.NamespaceWords)
}

// Phrases returns every phrase ordered by shard name, then key.
func (r *Repository) Phrases(ctx context.Context) ([]*PhraseRecord, error) {
	return scanRecords[PhraseRecord](ctx, r.store, storage.NamespacePhrases)
}

// Records returns the records passing filter, words first.
func (r *Repository) Records(ctx context.Context, filter KindFilter) ([]Record, error) {
	var records []Record
	if filter.Includes(KindWord) {
		words, err := r.Words(ctx)
		if err != nil {
			return nil, err
		}
		for _, w := range words {
			records = append(records, w)
		}
	}
	if filter.Includes(KindPhrase) {
		phrases, err := r.Phrases(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range phrases {
			records = append(records, p)
		}
	}
	return records, nil
}

// LogQuery appends a query to the history of the current day.
func (r *Repository) LogQuery(ctx context.Context, query, queryType string) error {
	now := r.now()
	shard := HistoryShard(now)
	data, err := r.store.Load(ctx, storage.NamespaceHistory, shard)
	if err != nil {
		return fmt.Errorf("load history %s > %w", shard, err)
	}

	entries, err := decodeHistory(data)
	if err != nil {
		return fmt.Errorf("history %s > %w", shard, err)
	}
	entries = append(entries, HistoryEntry{
		Query:     query,
		Type:      queryType,
		Timestamp: now,
	})

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	data[historyQueriesKey] = raw
	if err := r.store.Save(ctx, storage.NamespaceHistory, shard, data); err != nil {
		return fmt.Errorf("save history %s > %w", shard, err)
	}
	return nil
}

// History returns logged queries keyed by day.
func (r *Repository) History(ctx context.Context) (map[string][]HistoryEntry, error) {
	shards, err := r.store.Shards(ctx, storage.NamespaceHistory)
	if err != nil {
		return nil, fmt.Errorf("list history > %w", err)
	}
	histories := make(map[string][]HistoryEntry, len(shards))
	for _, shard := range shards {
		data, err := r.store.Load(ctx, storage.NamespaceHistory, shard)
		if err != nil {
			return nil, fmt.Errorf("load history %s > %w", shard, err)
		}
		entries, err := decodeHistory(data)
		if err != nil {
			return nil, fmt.Errorf("history %s > %w", shard, err)
		}
		histories[shard] = entries
	}
	return histories, nil
}

func decodeHistory(data storage.Shard) ([]HistoryEntry, error) {
	raw, ok := data[historyQueriesKey]
	if !ok {
		return nil, nil
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return entries, nil
}

func loadRecords[T any](ctx context.Context, store storage.Store, namespace storage.Namespace, shard string) (map[string]*T, error) {
	data, err := store.Load(ctx, namespace, shard)
	if err != nil {
		return nil, fmt.Errorf("load %s/%s > %w", namespace, shard, err)
	}
	records := make(map[string]*T, len(data))
	for key, raw := range data {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("decode %s/%s[%s] > %w", namespace, shard, key, err)
		}
		records[key] = &record
	}
	return records, nil
}

func saveRecords[T any](ctx context.Context, store storage.Store, namespace storage.Namespace, shard string, records map[string]*T) error {
	data := make(storage.Shard, len(records))
	for key, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("encode %s/%s[%s] > %w", namespace, shard, key, err)
		}
		data[key] = raw
	}
	if err := store.Save(ctx, namespace, shard, data); err != nil {
		return fmt.Errorf("save %s/%s > %w", namespace, shard, err)
	}
	return nil
}

func getRecord[T any](ctx context.Context, store storage.Store, namespace storage.Namespace, shard, key string) (*T, error) {
	records, err := loadRecords[T](ctx, store, namespace, shard)
	if err != nil {
		return nil, err
	}
	record, ok := records[key]
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", namespace, key, ErrNotFound)
	}
	return record, nil
}

func updateRecord[T any](ctx context.Context, store storage.Store, namespace storage.Namespace, shard, key string, fn func(*T)) (*T, error) {
	records, err := loadRecords[T](ctx, store, namespace, shard)
	if err != nil {
		return nil, err
	}
	record, ok := records[key]
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", namespace, key, ErrNotFound)
	}
	fn(record)
	if err := saveRecords(ctx, store, namespace, shard, records); err != nil {
		return nil, err
	}
	return record, nil
}

func scanRecords[T any](ctx context.Context, store storage.Store, namespace storage.Namespace) ([]*T, error) {
	shards, err := store.Shards(ctx, namespace)
	if err != nil {
		return nil, fmt.Errorf("list %s > %w", namespace, err)
	}

	var result []*T
	for _, shard := range shards {
		records, err := loadRecords[T](ctx, store, namespace, shard)
		if err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(records))
		for key := range records {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			result = append(result, records[key])
		}
	}
	return result, nil
}
