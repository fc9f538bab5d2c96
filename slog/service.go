package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wotd"
)

// Ensure LoggingWordService implements wotd.WordService.
var _ wotd.WordService = (*LoggingWordService)(nil)

// LoggingWordService wraps a WordService with logging.
type LoggingWordService struct {
	next   wotd.WordService
	logger *slog.Logger
}

// NewLoggingWordService creates a new LoggingWordService.
func NewLoggingWordService(next wotd.WordService, logger *slog.Logger) *LoggingWordService {
	return &LoggingWordService{next: next, logger: logger}
}

// WordOfTheDay delegates to the wrapped service and logs the result.
func (s *LoggingWordService) WordOfTheDay(ctx context.Context) (record *wotd.WordRecord, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin)}
		if record != nil {
			attrs = append(attrs, "word", record.Word)
		}
		if err != nil {
			attrs = append(attrs, "code", wotd.ErrorCode(err), "err", err)
		}
		s.logger.Info("word of the day", attrs...)
	}(time.Now())
	return s.next.WordOfTheDay(ctx)
}
