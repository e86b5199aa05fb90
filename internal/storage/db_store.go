package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordbook/internal/database"
)

const entriesTable = "vocab_entries"

type entryRow struct {
	RecordKey string `db:"record_key"`
	Payload   string `db:"payload"`
}

// DBStore keeps one row per record in the vocab_entries table.
type DBStore struct {
	db *sqlx.DB
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Load returns all records of a shard.
func (s *DBStore) Load(ctx context.Context, namespace Namespace, shard string) (Shard, error) {
	var rows []entryRow
	if err := s.db.SelectContext(ctx, &rows,
		"SELECT record_key, payload FROM vocab_entries WHERE namespace = ? AND shard = ?",
		string(namespace), shard); err != nil {
		return nil, fmt.Errorf("load shard %s/%s: %w", namespace, shard, err)
	}

	data := make(Shard, len(rows))
	for _, row := range rows {
		data[row.RecordKey] = json.RawMessage(row.Payload)
	}
	return data, nil
}

// Save replaces every record of a shard in a single transaction.
func (s *DBStore) Save(ctx context.Context, namespace Namespace, shard string, data Shard) error {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM vocab_entries WHERE namespace = ? AND shard = ?",
			string(namespace), shard); err != nil {
			return fmt.Errorf("delete shard %s/%s: %w", namespace, shard, err)
		}
		if len(keys) == 0 {
			return nil
		}

		columns := []string{"namespace", "shard", "record_key", "payload"}
		query := database.BuildMultiRowInsert(entriesTable, columns, len(keys))

		args := make([]interface{}, 0, len(keys)*len(columns))
		for _, key := range keys {
			args = append(args, string(namespace), shard, key, string(data[key]))
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert shard %s/%s: %w", namespace, shard, err)
		}
		return nil
	})
}

// Shards returns the distinct shard names of a namespace.
func (s *DBStore) Shards(ctx context.Context, namespace Namespace) ([]string, error) {
	var shards []string
	if err := s.db.SelectContext(ctx, &shards,
		"SELECT DISTINCT shard FROM vocab_entries WHERE namespace = ? ORDER BY shard",
		string(namespace)); err != nil {
		return nil, fmt.Errorf("list shards of %s: %w", namespace, err)
	}
	return shards, nil
}
