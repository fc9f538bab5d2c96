// Package duden implements link resolution and field extraction for the
// markup of duden.de.
package duden

import (
	"fmt"
	"io"

	"github.com/fwojciec/wotd"
	"github.com/fwojciec/wotd/cascadia"
)

// Selectors for the duden.de markup.
const (
	SelectorWordLink        = "a.scene__title-link"
	SelectorWord            = "span.lemma__main"
	SelectorFrequencyFull   = "span.shaft__full"
	SelectorFrequencyEmpty  = "span.shaft__empty"
	SelectorSpelling        = "#rechtschreibung dd"
	SelectorMeaning         = "#bedeutung p"
	SelectorMeaningItem     = "#bedeutungen ol.enumeration li"
	SelectorMeaningItemText = "#bedeutungen ol.enumeration li div"
	SelectorOrigin          = "#herkunft p"
	SelectorType            = "dl.tuple:nth-child(4) > dd:nth-child(2)"
	SelectorUsage           = "dl.tuple:nth-child(5) > dd:nth-child(2)"
)

var (
	matchWord            = cascadia.MustCompile(SelectorWord)
	matchFrequencyFull   = cascadia.MustCompile(SelectorFrequencyFull)
	matchFrequencyEmpty  = cascadia.MustCompile(SelectorFrequencyEmpty)
	matchSpelling        = cascadia.MustCompile(SelectorSpelling)
	matchMeaning         = cascadia.MustCompile(SelectorMeaning)
	matchMeaningItem     = cascadia.MustCompile(SelectorMeaningItem)
	matchMeaningItemText = cascadia.MustCompile(SelectorMeaningItemText)
	matchOrigin          = cascadia.MustCompile(SelectorOrigin)
	matchType            = cascadia.MustCompile(SelectorType)
	matchUsage           = cascadia.MustCompile(SelectorUsage)
)

// Ensure Extractor implements wotd.FieldExtractor at compile time.
var _ wotd.FieldExtractor = (*Extractor)(nil)

// Extractor extracts the fields of a word detail page in one streaming pass.
// It is safe for concurrent use; every call starts a fresh session.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFields scans r and returns the accumulated raw fields.
func (e *Extractor) ExtractFields(r io.Reader) (*wotd.RawRecord, error) {
	s := newSession()
	if err := s.scanner().Scan(r); err != nil {
		return nil, fmt.Errorf("extract fields: %w", err)
	}
	return &s.raw, nil
}

// session owns the record of one extraction and the rules filling it.
type session struct {
	raw wotd.RawRecord

	word     Concat
	full     Counter
	empty    Counter
	spelling FirstMatch
	meaning  Meaning
	origin   Origin
	typ      LastMatch
	usage    LastMatch
}

func newSession() *session {
	s := &session{}
	s.word = Concat{Dst: &s.raw.Word, Clean: stripSoftHyphens}
	s.full = Counter{Dst: &s.raw.FullFrequencyCount}
	s.empty = Counter{Dst: &s.raw.EmptyFrequencyCount}
	s.spelling = FirstMatch{Dst: &s.raw.Spelling}
	s.meaning = Meaning{Dst: &s.raw.Meaning}
	s.origin = Origin{Dst: &s.raw.Origin}
	s.typ = LastMatch{Dst: &s.raw.Type}
	s.usage = LastMatch{Dst: &s.raw.Usage}
	return s
}

// scanner returns a Scanner dispatching to the session's rules.
func (s *session) scanner() *cascadia.Scanner {
	return cascadia.NewScanner().
		On(matchWord, cascadia.Handlers{Text: s.word.OnText}).
		On(matchFrequencyFull, cascadia.Handlers{Text: s.full.OnText}).
		On(matchFrequencyEmpty, cascadia.Handlers{Text: s.empty.OnText}).
		On(matchSpelling, cascadia.Handlers{Text: s.spelling.OnText}).
		On(matchMeaning, cascadia.Handlers{Text: s.meaning.OnDefinitionText}).
		On(matchMeaningItem, cascadia.Handlers{Element: s.meaning.OnItemOpen}).
		On(matchMeaningItemText, cascadia.Handlers{Text: s.meaning.OnItemText}).
		On(matchOrigin, cascadia.Handlers{Text: s.origin.OnText}).
		On(matchType, cascadia.Handlers{Text: s.typ.OnText}).
		On(matchUsage, cascadia.Handlers{Text: s.usage.OnText})
}
