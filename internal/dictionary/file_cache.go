package dictionary

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// FileCache keeps raw API responses as <rootDir>/<word>.json.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(word string) string {
	return filepath.Join(f.rootDir, word+".json")
}

// cache returns the cached response for word, or calls fetch and stores its result.
// A failed fetch is never cached.
func (cache *FileCache) cache(word string, fetch func() ([]byte, error)) ([]byte, error) {
	contents, err := cache.read(word)
	if err == nil {
		slog.Default().Debug("dictionary cache hit", slog.String("word", word))
		return contents, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cache.read > %w", err)
	}

	contents, err = fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch(%s) > %w", word, err)
	}

	if err := os.MkdirAll(cache.rootDir, 0o755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(cache.filePath(word), contents, 0o644); err != nil {
		return contents, fmt.Errorf("os.WriteFile > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(word string) ([]byte, error) {
	file, err := os.Open(cache.filePath(word))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
