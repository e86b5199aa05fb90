// Package storage provides the sharded key-value stores that hold vocabulary records.
package storage

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=store.go -destination=../mocks/storage/mock_store.go -package=mock_storage

// Namespace groups shards of the same record type.
type Namespace string

const (
	NamespaceWords   Namespace = "words"
	NamespacePhrases Namespace = "phrases"
	NamespaceHistory Namespace = "history"
)

// Shard is the content of a single shard keyed by normalized record key.
// Values are kept as raw JSON so the store stays agnostic of record types.
type Shard map[string]json.RawMessage

// Store loads and saves whole shards.
type Store interface {
	// Load returns the shard contents, or an empty shard if it doesn't exist.
	Load(ctx context.Context, namespace Namespace, shard string) (Shard, error)
	// Save overwrites the shard with data.
	Save(ctx context.Context, namespace Namespace, shard string, data Shard) error
	// Shards lists the shard names of a namespace in ascending order.
	Shards(ctx context.Context, namespace Namespace) ([]string, error)
}
