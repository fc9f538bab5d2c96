package wotd

import (
	"context"
	"io"
)

// Fetcher retrieves documents over the network as a stream.
type Fetcher interface {
	// Fetch issues a GET for url and returns the response body.
	// A non-2xx status is reported as an EUPSTREAM error.
	// The caller must close the returned body.
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}
