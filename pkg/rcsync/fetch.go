package rcsync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arthur-debert/zshboot/pkg/errors"
)

// DefaultTimeout applies when the configured timeout is zero
const DefaultTimeout = 10 * time.Second

// maxBodySize caps the remote rc file
const maxBodySize = 4 << 20

// Fetcher retrieves the canonical rc text
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPFetcher fetches with a plain unauthenticated GET
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

// NewHTTPFetcher creates a fetcher for url with the given request timeout
func NewHTTPFetcher(url string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{URL: url, Client: &http.Client{Timeout: timeout}}
}

// Fetch implements Fetcher. Any non-2xx status is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetch, "invalid remote url %q", f.URL)
	}
	req.Header.Set("User-Agent", "zshboot")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetch, "failed to fetch %s", f.URL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Newf(errors.ErrFetch, "failed to fetch %s: %s", f.URL, resp.Status).
			WithDetail("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetch, "failed to read response from %s", f.URL)
	}
	if len(body) > maxBodySize {
		return nil, errors.New(errors.ErrFetch, fmt.Sprintf("remote rc file exceeds %d bytes", maxBodySize))
	}
	return body, nil
}

var _ Fetcher = (*HTTPFetcher)(nil)
