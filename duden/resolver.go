package duden

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/wotd"
	"github.com/fwojciec/wotd/cascadia"
)

var matchWordLink = cascadia.MustCompile(SelectorWordLink)

// Ensure Resolver implements wotd.LinkResolver at compile time.
var _ wotd.LinkResolver = (*Resolver)(nil)

// Resolver finds the word of the day link on the landing page.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveLink returns the href of the first word link carrying a non-empty
// href. The rest of the page is still read so the body is fully drained.
func (r *Resolver) ResolveLink(rd io.Reader) (string, error) {
	var href string
	s := cascadia.NewScanner().On(matchWordLink, cascadia.Handlers{
		Element: func(el *cascadia.Element) {
			if href != "" {
				return
			}
			if v, ok := el.Attr("href"); ok {
				href = strings.TrimSpace(v)
			}
		},
	})

	if err := s.Scan(rd); err != nil {
		return "", fmt.Errorf("resolve link: %w", err)
	}
	if href == "" {
		return "", wotd.Errorf(wotd.ENOTFOUND, "word of the day link not found")
	}
	return href, nil
}
