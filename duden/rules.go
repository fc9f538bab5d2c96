package duden

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/wotd/cascadia"
)

// Each rule accumulates one field of a RawRecord from the text fragments of
// the elements its selector matches. Rules hold a pointer to their target
// field so one extraction session can own both the record and the rules.

// Concat appends every cleaned fragment to Dst.
type Concat struct {
	Dst   *string
	Clean func(text string) string
}

// OnText implements the text callback.
func (r *Concat) OnText(frag cascadia.TextFragment) {
	text := frag.Text
	if r.Clean != nil {
		text = r.Clean(text)
	}
	*r.Dst += text
}

// FirstMatch keeps the first fragment that is non-empty after trimming and
// ignores everything after it.
type FirstMatch struct {
	Dst   *string
	found bool
}

// OnText implements the text callback.
func (r *FirstMatch) OnText(frag cascadia.TextFragment) {
	if r.found {
		return
	}
	if text := strings.TrimSpace(frag.Text); text != "" {
		*r.Dst = text
		r.found = true
	}
}

// LastMatch overwrites Dst with every fragment that is non-empty after
// trimming.
type LastMatch struct {
	Dst *string
}

// OnText implements the text callback.
func (r *LastMatch) OnText(frag cascadia.TextFragment) {
	if text := strings.TrimSpace(frag.Text); text != "" {
		*r.Dst = text
	}
}

// Counter records the glyph count of the last non-empty fragment.
type Counter struct {
	Dst **int
}

// OnText implements the text callback.
func (r *Counter) OnText(frag cascadia.TextFragment) {
	if n := utf8.RuneCountInString(frag.Text); n > 0 {
		*r.Dst = &n
	}
}

// Meaning accumulates the definition of a word. A page carries either a
// single definition paragraph or an enumerated list of definitions.
//
// For the single form only the first non-empty fragment is kept. For the
// list form every fragment is kept: fragments of one item are joined with a
// space, items are separated by a line break. Fragments that do not end
// their text node are skipped in both forms.
type Meaning struct {
	Dst *string

	found     bool
	breakLine bool
}

// OnDefinitionText handles text of the single definition paragraph.
func (r *Meaning) OnDefinitionText(frag cascadia.TextFragment) {
	if r.found || !frag.LastInTextNode {
		return
	}
	if text := cleanDefinition(frag.Text); text != "" {
		*r.Dst = text
		r.found = true
	}
}

// OnItemOpen handles the opening of a list item.
func (r *Meaning) OnItemOpen(*cascadia.Element) {
	r.breakLine = true
}

// OnItemText handles text inside a list item.
func (r *Meaning) OnItemText(frag cascadia.TextFragment) {
	if !frag.LastInTextNode {
		return
	}
	text := cleanDefinition(frag.Text)
	if text == "" {
		return
	}
	switch {
	case *r.Dst == "":
		*r.Dst = text
	case r.breakLine:
		*r.Dst += "\n" + text
	default:
		*r.Dst += " " + text
	}
	r.breakLine = false
	r.found = true
}

const softHyphen = "\u00ad"

var footnoteMarker = regexp.MustCompile(`\s*\(\d\)$`)

// stripSoftHyphens removes soft hyphens used as hyphenation hints.
func stripSoftHyphens(text string) string {
	return strings.ReplaceAll(text, softHyphen, "")
}

// cleanDefinition trims text and drops a trailing footnote marker like "(1)".
func cleanDefinition(text string) string {
	text = strings.TrimSpace(text)
	return strings.TrimSpace(footnoteMarker.ReplaceAllString(text, ""))
}

var nbspReplacer = strings.NewReplacer("&nbsp;", " ", "\u00a0", " ")

var originFootnote = regexp.MustCompile(`\s*\(\d\)`)

// Origin accumulates the etymology text. Non-breaking spaces become plain
// spaces, footnote markers like "(1)" are dropped and every whitespace run,
// including one spanning fragments, collapses to a single space. The result
// has no leading or trailing whitespace.
type Origin struct {
	Dst *string

	space bool
}

// OnText implements the text callback.
func (r *Origin) OnText(frag cascadia.TextFragment) {
	text := nbspReplacer.Replace(frag.Text)
	text = originFootnote.ReplaceAllString(text, "")

	var b strings.Builder
	b.WriteString(*r.Dst)
	for _, c := range text {
		if unicode.IsSpace(c) {
			r.space = b.Len() > 0
			continue
		}
		if r.space {
			b.WriteByte(' ')
			r.space = false
		}
		b.WriteRune(c)
	}
	*r.Dst = b.String()
}
