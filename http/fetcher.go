// Package http provides the HTTP transport for wotd: a streaming Fetcher for
// outbound requests and a Server exposing a wotd.WordService.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/wotd"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies outbound requests.
const DefaultUserAgent = "wotd/1.0 (+https://github.com/fwojciec/wotd)"

// Ensure Fetcher implements wotd.Fetcher at compile time.
var _ wotd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents with plain HTTP GET requests and hands the
// response body to the caller without buffering it.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests, including reading the body.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header of outbound requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues a GET for url. Any 2xx response is a success; other statuses
// and transport failures are returned as EUPSTREAM errors. A body declared in
// another charset is decoded to UTF-8; undeclared bodies are passed through.
func (f *Fetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, wotd.WrapError(wotd.EINVALID, err, "invalid request for %s", url)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, wotd.WrapError(wotd.EUPSTREAM, err, "request to %s failed", url)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, wotd.Errorf(wotd.EUPSTREAM, "HTTP %d for %s", resp.StatusCode, url)
	}

	label := declaredCharset(resp.Header.Get("Content-Type"))
	if label == "" || strings.EqualFold(label, "utf-8") {
		return resp.Body, nil
	}
	r, err := charset.NewReaderLabel(label, resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, wotd.WrapError(wotd.EUPSTREAM, err, "unsupported charset for %s", url)
	}
	return &body{Reader: r, Closer: resp.Body}, nil
}

// body pairs a decoding reader with the response body it reads from.
type body struct {
	io.Reader
	io.Closer
}

func declaredCharset(contentType string) string {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
