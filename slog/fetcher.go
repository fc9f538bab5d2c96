// Package slog provides logging decorators for wotd services using log/slog.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wotd"
)

// Ensure LoggingFetcher implements wotd.Fetcher.
var _ wotd.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. The response is logged when
// the request completes and the body again when it is closed, since only
// then is its size known.
type LoggingFetcher struct {
	next   wotd.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wotd.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body io.ReadCloser, err error) {
	begin := time.Now()
	defer func() {
		f.logger.Info("fetch",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}()

	body, err = f.next.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return &loggingBody{ReadCloser: body, url: url, begin: begin, logger: f.logger}, nil
}

type loggingBody struct {
	io.ReadCloser
	url    string
	begin  time.Time
	logger *slog.Logger
	n      int64
}

func (b *loggingBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.n += int64(n)
	return n, err
}

func (b *loggingBody) Close() error {
	err := b.ReadCloser.Close()
	b.logger.Debug("fetch body closed",
		"url", b.url,
		"bytes", b.n,
		"duration", time.Since(b.begin),
	)
	return err
}
