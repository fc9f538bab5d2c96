package wotd

import "context"

// Client facing messages for each failing stage of the lookup.
const (
	MsgLandingFetchFailed = "Failed to fetch Duden Wort des Tages"
	MsgLinkNotFound       = "Failed to find word of the day link"
	MsgWordFetchFailed    = "Failed to fetch Duden Wort"
)

// WordService looks up the current word of the day.
type WordService interface {
	// WordOfTheDay fetches the landing page, follows the word link and
	// returns the normalized record. Failures carry one of the Msg*
	// messages, retrievable with ErrorMessage.
	WordOfTheDay(ctx context.Context) (*WordRecord, error)
}
