package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const shardExtension = ".json"

// FileStore keeps every shard in its own JSON file under rootDir/<namespace>/<shard>.json.
// Shard names are path-escaped, so a shard never names a directory or leaves rootDir.
type FileStore struct {
	rootDir string
}

func NewFileStore(rootDir string) *FileStore {
	return &FileStore{
		rootDir: rootDir,
	}
}

func (s *FileStore) filePath(namespace Namespace, shard string) string {
	return filepath.Join(s.rootDir, string(namespace), shardFileName(shard))
}

func shardFileName(shard string) string {
	return url.PathEscape(shard) + shardExtension
}

func (s *FileStore) Load(ctx context.Context, namespace Namespace, shard string) (Shard, error) {
	path := s.filePath(namespace, shard)
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Shard{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll(%s) > %w", path, err)
	}

	data := Shard{}
	if err := json.Unmarshal(contents, &data); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
	}
	slog.Default().Debug("loaded shard",
		slog.String("path", path),
		slog.Int("records", len(data)),
	)
	return data, nil
}

func (s *FileStore) Save(ctx context.Context, namespace Namespace, shard string, data Shard) error {
	path := s.filePath(namespace, shard)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	if data == nil {
		data = Shard{}
	}

	contents, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	if err := writeAndClose(file, append(contents, '\n')); err != nil {
		return fmt.Errorf("write %s > %w", path, err)
	}
	slog.Default().Debug("saved shard",
		slog.String("path", path),
		slog.Int("records", len(data)),
	)
	return nil
}

// writeAndClose writes contents and returns the Close error as well.
func writeAndClose(file io.WriteCloser, contents []byte) (err error) {
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("file.Close > %w", closeErr))
		}
	}()
	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	return nil
}

func (s *FileStore) Shards(ctx context.Context, namespace Namespace) ([]string, error) {
	dir := filepath.Join(s.rootDir, string(namespace))
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", dir, err)
	}

	shards := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != shardExtension {
			continue
		}
		shard, err := url.PathUnescape(strings.TrimSuffix(entry.Name(), shardExtension))
		if err != nil {
			return nil, fmt.Errorf("url.PathUnescape(%s) > %w", entry.Name(), err)
		}
		shards = append(shards, shard)
	}
	sort.Strings(shards)
	return shards, nil
}
