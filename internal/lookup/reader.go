package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

// Config carries the WordsAPI credentials.
type Config struct {
	Host string
	Key  string
}

// Reader looks up words against the WordsAPI through a local file cache.
type Reader struct {
	config    Config
	fileCache *FileCache
	baseURL   string
	attempts  uint
}

// ReaderOption configures optional Reader behavior.
type ReaderOption func(*Reader)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) ReaderOption {
	return func(r *Reader) {
		r.baseURL = baseURL
	}
}

// WithAttempts overrides how many times a failed request is tried.
func WithAttempts(attempts uint) ReaderOption {
	return func(r *Reader) {
		r.attempts = attempts
	}
}

// NewReader creates a Reader caching responses under cacheDirectory.
func NewReader(cacheDirectory string, config Config, opts ...ReaderOption) *Reader {
	r := &Reader{
		config:    config,
		fileCache: NewFileCache(cacheDirectory),
		baseURL:   fmt.Sprintf("https://%s", config.Host),
		attempts:  3,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// isRetryableError reports whether a lookup failure is worth another attempt.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "status code: 5") || strings.Contains(errStr, "status code: 429") {
		return true
	}
	return false
}

func (r *Reader) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	client := resty.New()
	res, err := client.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", r.config.Host).
		SetHeader("x-rapidapi-key", r.config.Key).
		Get(fmt.Sprintf("%s/words/%s", r.baseURL, word))
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// Lookup returns the API response for word, serving it from the cache when a
// previous lookup already stored it. Network failures are retried with
// backoff unless the error is not retryable.
func (r *Reader) Lookup(ctx context.Context, word string) (Response, error) {
	var resp Response
	contents, err := r.fileCache.cache(word, func() ([]byte, error) {
		var body []byte
		if err := retry.Do(
			func() error {
				fetched, err := r.lookupAPI(ctx, word)
				if err != nil {
					if !isRetryableError(err) {
						return retry.Unrecoverable(err)
					}
					return err
				}
				body = fetched
				return nil
			},
			retry.Context(ctx),
			retry.Attempts(r.attempts),
			retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
				return retry.BackOffDelay(n, err, config)
			}),
		); err != nil {
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
