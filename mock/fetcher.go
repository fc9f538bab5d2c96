package mock

import (
	"context"
	"io"

	"github.com/fwojciec/wotd"
)

var _ wotd.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wotd.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (io.ReadCloser, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	return f.FetchFn(ctx, url)
}
