package mock

import (
	"io"

	"github.com/fwojciec/wotd"
)

var _ wotd.LinkResolver = (*LinkResolver)(nil)

// LinkResolver is a mock implementation of wotd.LinkResolver.
type LinkResolver struct {
	ResolveLinkFn func(r io.Reader) (string, error)
}

func (l *LinkResolver) ResolveLink(r io.Reader) (string, error) {
	return l.ResolveLinkFn(r)
}

var _ wotd.FieldExtractor = (*FieldExtractor)(nil)

// FieldExtractor is a mock implementation of wotd.FieldExtractor.
type FieldExtractor struct {
	ExtractFieldsFn func(r io.Reader) (*wotd.RawRecord, error)
}

func (e *FieldExtractor) ExtractFields(r io.Reader) (*wotd.RawRecord, error) {
	return e.ExtractFieldsFn(r)
}
