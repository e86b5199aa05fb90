// Package testutil provides shared test helpers for creating config files and record fixtures.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordbook/internal/storage"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

// FixtureTime is the creation time of fixtures unless overridden.
var FixtureTime = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

// ConfigOption configures the config file written by SetupTestConfig.
type ConfigOption func(*testConfig)

type testConfig struct {
	storageDriver     string
	dictionaryBaseURL string
}

// WithDatabaseStorage stores records in a SQLite database under the temp directory.
func WithDatabaseStorage() ConfigOption {
	return func(cfg *testConfig) {
		cfg.storageDriver = "database"
	}
}

// WithDictionaryBaseURL points the dictionary client at a test server.
func WithDictionaryBaseURL(baseURL string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.dictionaryBaseURL = baseURL
	}
}

// SetupTestConfig creates a config file and the data directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{storageDriver: "file"}
	for _, opt := range opts {
		opt(&cfg)
	}

	for _, d := range []string{"data", "dictionaries"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  driver: %s
  directory: %s
database:
  driver: sqlite3
  path: %s
dictionaries:
  rapidapi:
    cache_directory: %s
    base_url: "%s"
`,
		cfg.storageDriver,
		filepath.Join(tmpDir, "data"),
		filepath.Join(tmpDir, "wordbook.db"),
		filepath.Join(tmpDir, "dictionaries"),
		cfg.dictionaryBaseURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// RecordOption overrides entry fields of a fixture.
type RecordOption func(*vocab.Entry)

func WithMastery(mastery int) RecordOption {
	return func(e *vocab.Entry) {
		e.Mastery = mastery
	}
}

func WithLookupCount(count int) RecordOption {
	return func(e *vocab.Entry) {
		e.LookupCount = count
	}
}

func WithCreatedAt(createdAt time.Time) RecordOption {
	return func(e *vocab.Entry) {
		e.CreatedAt = createdAt
		e.UpdatedAt = createdAt
	}
}

func WithExamples(examples ...string) RecordOption {
	return func(e *vocab.Entry) {
		e.Examples = examples
	}
}

func newEntry(definition string, opts []RecordOption) vocab.Entry {
	entry := vocab.Entry{
		Definition: definition,
		Examples:   []string{},
		CreatedAt:  FixtureTime,
		UpdatedAt:  FixtureTime,
	}
	for _, opt := range opts {
		opt(&entry)
	}
	return entry
}

// NewWord returns a word fixture with mastery 0 and no lookups by default.
func NewWord(word, definition string, opts ...RecordOption) *vocab.WordRecord {
	return &vocab.WordRecord{
		Word:     word,
		Synonyms: []string{},
		Antonyms: []string{},
		Entry:    newEntry(definition, opts),
	}
}

// NewPhrase returns a phrase fixture with mastery 0 and no lookups by default.
func NewPhrase(phrase, definition string, opts ...RecordOption) *vocab.PhraseRecord {
	return &vocab.PhraseRecord{
		Phrase: phrase,
		Entry:  newEntry(definition, opts),
	}
}

// SeedRecords writes records straight into their shards, bypassing the repository.
func SeedRecords(t *testing.T, store storage.Store, records ...vocab.Record) {
	t.Helper()
	ctx := context.Background()

	for _, record := range records {
		namespace, shard := storage.NamespaceWords, vocab.WordShard(record.Key())
		if record.Kind() == vocab.KindPhrase {
			namespace, shard = storage.NamespacePhrases, vocab.PhraseShard(record.Key())
		}

		data, err := store.Load(ctx, namespace, shard)
		require.NoError(t, err)
		payload, err := json.Marshal(record)
		require.NoError(t, err)
		data[record.Key()] = payload
		require.NoError(t, store.Save(ctx, namespace, shard, data))
	}
}
