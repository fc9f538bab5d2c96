// Package pipeline orchestrates the word of the day lookup: landing page
// fetch, link resolution, detail page fetch, field extraction and
// normalization, strictly in that order.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wotd"
)

// DefaultBaseURL is the dictionary site queried when Service.BaseURL is empty.
const DefaultBaseURL = "https://www.duden.de"

// LandingPath is the path of the word of the day landing page.
const LandingPath = "/wort-des-tages"

// Ensure Service implements wotd.WordService at compile time.
var _ wotd.WordService = (*Service)(nil)

// Service looks up the word of the day. Every call is independent; the
// Service holds no per-request state.
type Service struct {
	Fetcher   wotd.Fetcher
	Resolver  wotd.LinkResolver
	Extractor wotd.FieldExtractor

	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// Sentinel replaces fields that could not be extracted.
	// Defaults to wotd.DefaultSentinel.
	Sentinel string

	// DebugInfo attaches wotd.DebugInfo to every record.
	DebugInfo bool

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// WordOfTheDay implements wotd.WordService.
func (s *Service) WordOfTheDay(ctx context.Context) (*wotd.WordRecord, error) {
	begin := s.now()

	wordPath, err := s.resolveLink(ctx, s.baseURL()+LandingPath)
	if err != nil {
		return nil, err
	}

	wordURL, err := s.wordURL(wordPath)
	if err != nil {
		return nil, wotd.WrapError(wotd.ENOTFOUND, err, wotd.MsgLinkNotFound)
	}

	raw, hash, err := s.extractFields(ctx, wordURL)
	if err != nil {
		return nil, err
	}

	record := wotd.Normalize(raw, s.Sentinel)
	if s.DebugInfo {
		record.Debug = &wotd.DebugInfo{
			WordPath:    wordPath,
			WordURL:     wordURL,
			FetchedAt:   begin.UTC(),
			Elapsed:     wotd.FormatElapsed(s.now().Sub(begin)),
			ContentHash: hash,
		}
	}
	return record, nil
}

func (s *Service) resolveLink(ctx context.Context, landingURL string) (string, error) {
	body, err := s.Fetcher.Fetch(ctx, landingURL)
	if err != nil {
		return "", wotd.WrapError(wotd.EUPSTREAM, err, wotd.MsgLandingFetchFailed)
	}
	defer body.Close()

	wordPath, err := s.Resolver.ResolveLink(body)
	if err != nil {
		if wotd.ErrorCode(err) == wotd.ENOTFOUND {
			return "", wotd.WrapError(wotd.ENOTFOUND, err, wotd.MsgLinkNotFound)
		}
		return "", wotd.WrapError(wotd.EUPSTREAM, err, wotd.MsgLandingFetchFailed)
	}
	return wordPath, nil
}

// extractFields fetches the detail page and extracts its fields. The body is
// hashed as it streams through the extractor.
func (s *Service) extractFields(ctx context.Context, wordURL string) (*wotd.RawRecord, string, error) {
	body, err := s.Fetcher.Fetch(ctx, wordURL)
	if err != nil {
		return nil, "", wotd.WrapError(wotd.EUPSTREAM, err, wotd.MsgWordFetchFailed)
	}
	defer body.Close()

	digest := xxhash.New()
	raw, err := s.Extractor.ExtractFields(io.TeeReader(body, digest))
	if err != nil {
		return nil, "", wotd.WrapError(wotd.EUPSTREAM, err, wotd.MsgWordFetchFailed)
	}
	return raw, fmt.Sprintf("%016x", digest.Sum64()), nil
}

// baseURL returns the configured base URL without a trailing slash.
func (s *Service) baseURL() string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// wordURL appends the path of a word link to the base URL. Links carrying a
// scheme or host are rejected so the lookup never leaves the configured site.
func (s *Service) wordURL(href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse link %q: %w", href, err)
	}
	if ref.Scheme != "" || ref.Host != "" {
		return "", wotd.Errorf(wotd.ENOTFOUND, "link %q points outside %s", href, s.baseURL())
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return s.baseURL() + href, nil
}
