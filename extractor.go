package wotd

import "io"

// LinkResolver finds the detail page link on the word of the day landing page.
type LinkResolver interface {
	// ResolveLink reads r to completion and returns the href of the first
	// word of the day anchor. Returns ENOTFOUND if no anchor carries an href.
	ResolveLink(r io.Reader) (string, error)
}

// FieldExtractor extracts raw field values from a word detail page.
type FieldExtractor interface {
	// ExtractFields reads r to completion in a single pass.
	// Missing sections leave their fields empty; only read failures are errors.
	ExtractFields(r io.Reader) (*RawRecord, error)
}
