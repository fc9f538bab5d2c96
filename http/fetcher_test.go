package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/wotd"
	wotdhttp "github.com/fwojciec/wotd/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("streams body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hallo Welt</body></html>"))
		}))
		defer server.Close()

		body, err := wotdhttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		defer body.Close()

		b, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hallo Welt</body></html>", string(b))
	})

	t.Run("decodes declared charset to UTF-8", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("<p>Stra\xdfe</p>"))
		}))
		defer server.Close()

		body, err := wotdhttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		defer body.Close()

		b, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "<p>Straße</p>", string(b))
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		var ua string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		body, err := wotdhttp.NewFetcher(wotdhttp.WithUserAgent("test-agent")).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		body.Close()

		assert.Equal(t, "test-agent", ua)
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte("cached"))
		}))
		defer server.Close()

		body, err := wotdhttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		body.Close()
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := wotdhttp.NewFetcher(wotdhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, wotd.EUPSTREAM, wotd.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := wotdhttp.NewFetcher().Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := wotdhttp.NewFetcher(wotdhttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, wotd.EUPSTREAM, wotd.ErrorCode(err))
	})

	t.Run("returns error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		_, err := wotdhttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, wotd.EUPSTREAM, wotd.ErrorCode(err))
		assert.Contains(t, wotd.ErrorMessage(err), "404")
	})
}
