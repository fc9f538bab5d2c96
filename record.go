package wotd

import (
	"strconv"
	"strings"
	"time"
)

// Sentinel values substituted for fields that could not be extracted.
const (
	DefaultSentinel = "N/A"
	GermanSentinel  = "nicht verfügbar"
)

// Frequency bar glyphs.
const (
	FullFrequencyGlyph  = "▮"
	EmptyFrequencyGlyph = "▯"
)

// RawRecord holds field values as they are accumulated during a single scan
// of a detail page. The frequency counters are nil until a non-empty glyph
// span has been seen.
type RawRecord struct {
	Word     string
	Spelling string
	Meaning  string
	Origin   string
	Type     string
	Usage    string

	FullFrequencyCount  *int
	EmptyFrequencyCount *int
}

// WordRecord is the finalized dictionary entry for the word of the day.
// Every field is either a cleaned, non-empty value or the sentinel.
type WordRecord struct {
	Word      string     `json:"word" yaml:"word"`
	Frequency string     `json:"frequency" yaml:"frequency"`
	Spelling  string     `json:"spelling" yaml:"spelling"`
	Meaning   string     `json:"meaning" yaml:"meaning"`
	Origin    string     `json:"origin" yaml:"origin"`
	Type      string     `json:"type" yaml:"type"`
	Usage     string     `json:"usage" yaml:"usage"`
	Debug     *DebugInfo `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// DebugInfo describes how a WordRecord was produced.
type DebugInfo struct {
	WordPath    string    `json:"wordPath" yaml:"wordPath"`
	WordURL     string    `json:"wordUrl" yaml:"wordUrl"`
	FetchedAt   time.Time `json:"fetchedAt" yaml:"fetchedAt"`
	Elapsed     string    `json:"elapsed" yaml:"elapsed"`
	ContentHash string    `json:"contentHash,omitempty" yaml:"contentHash,omitempty"`
}

// FormatElapsed renders a duration as whole milliseconds with an "ms" suffix.
func FormatElapsed(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

// Normalize turns a RawRecord into a WordRecord. The frequency counters are
// converted into a glyph bar, every field is trimmed, and empty fields are
// replaced with sentinel. An empty sentinel falls back to DefaultSentinel.
func Normalize(raw *RawRecord, sentinel string) *WordRecord {
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	if raw == nil {
		raw = &RawRecord{}
	}

	frequency := sentinel
	if raw.FullFrequencyCount != nil && raw.EmptyFrequencyCount != nil {
		frequency = FrequencyBar(*raw.FullFrequencyCount, *raw.EmptyFrequencyCount, sentinel)
	}

	return &WordRecord{
		Word:      orSentinel(raw.Word, sentinel),
		Frequency: frequency,
		Spelling:  orSentinel(raw.Spelling, sentinel),
		Meaning:   orSentinel(raw.Meaning, sentinel),
		Origin:    orSentinel(raw.Origin, sentinel),
		Type:      orSentinel(raw.Type, sentinel),
		Usage:     orSentinel(raw.Usage, sentinel),
	}
}

// FrequencyBar renders full filled glyphs followed by empty hollow glyphs.
// Negative counts are treated as zero. When the bar would be empty the
// sentinel is returned instead.
func FrequencyBar(full, empty int, sentinel string) string {
	full = max(full, 0)
	empty = max(empty, 0)
	if full+empty == 0 {
		return sentinel
	}
	return strings.Repeat(FullFrequencyGlyph, full) + strings.Repeat(EmptyFrequencyGlyph, empty)
}

func orSentinel(s, sentinel string) string {
	if s = strings.TrimSpace(s); s == "" {
		return sentinel
	}
	return s
}
