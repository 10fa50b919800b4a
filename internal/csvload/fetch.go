// Package csvload fetches and parses the draw-frequency CSV datasets.
package csvload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a single HTTP fetch.
const DefaultTimeout = 60 * time.Second

// Fetcher retrieves the raw text of a named resource.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (string, error)
}

// HTTPFetcher fetches resources over HTTP(S).
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher with the given client timeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}}
}

// Fetch performs a GET request and returns the body. Non-2xx responses are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// FileFetcher reads resources from the local filesystem.
type FileFetcher struct{}

// Fetch reads a plain path or a file:// URL.
func (FileFetcher) Fetch(_ context.Context, source string) (string, error) {
	path := strings.TrimPrefix(source, "file://")
	if path == "" {
		return "", fmt.Errorf("source path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// SourceFetcher dispatches on the source scheme.
type SourceFetcher struct {
	HTTP Fetcher
	File Fetcher
}

// NewSourceFetcher wires the HTTP and file fetchers.
func NewSourceFetcher(timeout time.Duration) *SourceFetcher {
	return &SourceFetcher{
		HTTP: NewHTTPFetcher(timeout),
		File: FileFetcher{},
	}
}

// Fetch routes http(s) sources to HTTP and everything else to the filesystem.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (string, error) {
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return f.HTTP.Fetch(ctx, source)
	}
	return f.File.Fetch(ctx, source)
}
