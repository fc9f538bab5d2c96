package mock

import (
	"context"

	"github.com/fwojciec/wotd"
)

var _ wotd.WordService = (*WordService)(nil)

// WordService is a mock implementation of wotd.WordService.
type WordService struct {
	WordOfTheDayFn func(ctx context.Context) (*wotd.WordRecord, error)
}

func (s *WordService) WordOfTheDay(ctx context.Context) (*wotd.WordRecord, error) {
	return s.WordOfTheDayFn(ctx)
}
