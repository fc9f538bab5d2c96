// Package cascadia provides a streaming HTML scanner that invokes callbacks
// for elements matching CSS selectors, without building a full parse tree.
package cascadia

import (
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a start tag seen by the scanner.
type Element struct {
	node *html.Node
}

// TagName returns the lower-cased tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// TextFragment is a piece of text delivered to a text handler.
// Text is entity-decoded. LastInTextNode reports whether the fragment ends
// its text node; the scanner delivers whole text nodes, so it is always true
// for fragments produced by Scan.
type TextFragment struct {
	Text           string
	LastInTextNode bool
}

// Handlers are the callbacks bound to one selector. Either may be nil.
type Handlers struct {
	// Element is called when a matching element is opened.
	Element func(el *Element)

	// Text is called for every text fragment inside a matching element,
	// including text of nested elements.
	Text func(frag TextFragment)
}

type rule struct {
	matcher  Matcher
	handlers Handlers
}

// Scanner dispatches streamed HTML to selector-bound handlers.
// Rules run in registration order; one element or fragment can trigger
// several rules.
//
// Matching happens when a start tag is read, against the elements seen so
// far. Selectors that depend on later content (:last-child, :has, :contains)
// see only that prefix of the document.
type Scanner struct {
	rules []rule
}

// NewScanner returns a Scanner with no rules.
func NewScanner() *Scanner {
	return &Scanner{}
}

// On registers handlers for elements matched by m.
func (s *Scanner) On(m Matcher, h Handlers) *Scanner {
	s.rules = append(s.rules, rule{matcher: m, handlers: h})
	return s
}

// OnSelector parses a selector group and registers handlers for it.
func (s *Scanner) OnSelector(selector string, h Handlers) error {
	m, err := cascadia.ParseGroup(selector)
	if err != nil {
		return fmt.Errorf("parse selector %q: %w", selector, err)
	}
	s.On(m, h)
	return nil
}

// Scan reads r to EOF, invoking handlers in document order.
func (s *Scanner) Scan(r io.Reader) error {
	st := &scanState{
		rules:  s.rules,
		root:   &html.Node{Type: html.DocumentNode},
		active: make([]int, len(s.rules)),
	}

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return fmt.Errorf("scan html: %w", err)
			}
			return nil
		case html.StartTagToken:
			tok := z.Token()
			st.open(tok)
			if voidElements[tok.DataAtom] {
				st.closeTop()
			}
		case html.SelfClosingTagToken:
			st.open(z.Token())
			st.closeTop()
		case html.EndTagToken:
			tok := z.Token()
			st.close(tok.Data)
		case html.TextToken:
			st.text(string(z.Text()))
		}
	}
}

type openElement struct {
	node    *html.Node
	matched []int
}

type scanState struct {
	rules  []rule
	root   *html.Node
	stack  []openElement
	active []int
}

func (st *scanState) parent() *html.Node {
	if len(st.stack) == 0 {
		return st.root
	}
	return st.stack[len(st.stack)-1].node
}

func (st *scanState) open(tok html.Token) {
	st.closeImplied(tok.DataAtom)

	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: tok.DataAtom,
		Data:     tok.Data,
		Attr:     tok.Attr,
	}
	st.parent().AppendChild(n)

	el := openElement{node: n}
	var wrapped *Element
	for i, r := range st.rules {
		if !r.matcher.Match(n) {
			continue
		}
		el.matched = append(el.matched, i)
		st.active[i]++
		if r.handlers.Element != nil {
			if wrapped == nil {
				wrapped = &Element{node: n}
			}
			r.handlers.Element(wrapped)
		}
	}
	st.stack = append(st.stack, el)
}

// closeImplied pops elements whose end tag is implied by the opening of a.
func (st *scanState) closeImplied(a atom.Atom) {
	closes, ok := impliedEndTags[a]
	if !ok && blockElements[a] {
		closes, ok = []atom.Atom{atom.P}, true
	}
	if !ok {
		return
	}
	for len(st.stack) > 0 {
		top := st.stack[len(st.stack)-1].node.DataAtom
		if !containsAtom(closes, top) {
			return
		}
		st.closeTop()
	}
}

// close pops up to and including the innermost open element named tag.
// Stray end tags are ignored.
func (st *scanState) close(tag string) {
	for i := len(st.stack) - 1; i >= 0; i-- {
		if st.stack[i].node.Data != tag {
			continue
		}
		for len(st.stack) > i {
			st.closeTop()
		}
		return
	}
}

func (st *scanState) closeTop() {
	el := st.stack[len(st.stack)-1]
	st.stack = st.stack[:len(st.stack)-1]
	for _, i := range el.matched {
		st.active[i]--
	}
	// Only preceding siblings are needed for matching; the subtree is done.
	el.node.FirstChild, el.node.LastChild = nil, nil
}

func (st *scanState) text(s string) {
	if s == "" {
		return
	}
	frag := TextFragment{Text: s, LastInTextNode: true}
	for i, r := range st.rules {
		if st.active[i] > 0 && r.handlers.Text != nil {
			r.handlers.Text(frag)
		}
	}
}

func containsAtom(list []atom.Atom, a atom.Atom) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

var impliedEndTags = map[atom.Atom][]atom.Atom{
	atom.P:      {atom.P},
	atom.Li:     {atom.Li, atom.P},
	atom.Dt:     {atom.Dt, atom.Dd, atom.P},
	atom.Dd:     {atom.Dt, atom.Dd, atom.P},
	atom.Option: {atom.Option},
	atom.Tr:     {atom.Tr, atom.Td, atom.Th},
	atom.Td:     {atom.Td, atom.Th},
	atom.Th:     {atom.Td, atom.Th},
}

// blockElements close an open paragraph.
var blockElements = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Blockquote: true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Footer:     true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Header:     true,
	atom.Hr:         true,
	atom.Main:       true,
	atom.Nav:        true,
	atom.Ol:         true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Ul:         true,
}

// Matcher reports whether an element matches a selector.
type Matcher = cascadia.Matcher

// MustCompile parses a selector group and panics if it is invalid.
// It is intended for selectors known at compile time.
func MustCompile(selector string) Matcher {
	m, err := cascadia.ParseGroup(selector)
	if err != nil {
		panic(fmt.Sprintf("parse selector %q: %v", selector, err))
	}
	return m
}
