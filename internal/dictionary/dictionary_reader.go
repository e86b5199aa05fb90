// Package dictionary looks words up in WordsAPI on RapidAPI.
package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/wordbook/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 500 * time.Millisecond
)

type Config struct {
	RapidAPIHost string
	RapidAPIKey  string
	// BaseURL overrides https://<RapidAPIHost>.
	BaseURL     string
	MaxAttempts uint
	RetryDelay  time.Duration
}

type Reader struct {
	config    Config
	fileCache *FileCache
	client    *resty.Client
}

func NewReader(cacheDirectory string, config Config) *Reader {
	if config.MaxAttempts == 0 {
		config.MaxAttempts = DefaultMaxAttempts
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	return &Reader{
		config:    config,
		fileCache: NewFileCache(cacheDirectory),
		client:    resty.New(),
	}
}

// statusError is a non-200 response of the API.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status code: %d, body: %s", e.code, e.body)
}

func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (r *Reader) endpoint(word string) string {
	baseURL := r.config.BaseURL
	if baseURL == "" {
		baseURL = "https://" + r.config.RapidAPIHost
	}
	return strings.TrimSuffix(baseURL, "/") + "/words/" + url.PathEscape(word)
}

func (r *Reader) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	config := r.config

	var body []byte
	err := retry.Do(
		func() error {
			res, err := r.client.R().
				SetContext(ctx).
				SetHeader("x-rapidapi-host", config.RapidAPIHost).
				SetHeader("x-rapidapi-key", config.RapidAPIKey).
				Get(r.endpoint(word))
			if err != nil {
				return fmt.Errorf("client.R.Get > %w", err)
			}
			if res.StatusCode() != http.StatusOK {
				return &statusError{code: res.StatusCode(), body: string(res.Body())}
			}
			body = res.Body()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(config.MaxAttempts),
		retry.Delay(config.RetryDelay),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying dictionary API call",
				"attempt", n+1,
				"word", word,
				"lastError", err)
		}),
	)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil, fmt.Errorf("word %q: %w", word, vocab.ErrNotFound)
		}
		return nil, err
	}
	return body, nil
}

// Lookup returns the dictionary entry of word, from the cache when possible.
func (r *Reader) Lookup(ctx context.Context, word string) (rapidapi.Response, error) {
	var resp rapidapi.Response
	word = vocab.NormalizeKey(word)
	contents, err := r.fileCache.cache(word, func() ([]byte, error) {
		body, err := r.lookupAPI(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("r.lookupAPI > %w", err)
		}
		return body, nil
	})
	if err != nil {
		return resp, fmt.Errorf("r.fileCache.cache > %w", err)
	}
	if err := json.Unmarshal(contents, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}
