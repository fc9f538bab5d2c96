package duden_test

import (
	"testing"

	"github.com/fwojciec/wotd/cascadia"
	"github.com/fwojciec/wotd/duden"
	"github.com/stretchr/testify/assert"
)

func last(text string) cascadia.TextFragment {
	return cascadia.TextFragment{Text: text, LastInTextNode: true}
}

func partial(text string) cascadia.TextFragment {
	return cascadia.TextFragment{Text: text}
}

func TestMeaning(t *testing.T) {
	t.Parallel()

	t.Run("single definition drops footnote marker", func(t *testing.T) {
		t.Parallel()

		var dst string
		m := &duden.Meaning{Dst: &dst}

		m.OnDefinitionText(last(" Ein Beispieltext (1) "))

		assert.Equal(t, "Ein Beispieltext", dst)
	})

	t.Run("single definition keeps the first non-empty fragment", func(t *testing.T) {
		t.Parallel()

		var dst string
		m := &duden.Meaning{Dst: &dst}

		m.OnDefinitionText(last("  "))
		m.OnDefinitionText(last("Erste"))
		m.OnDefinitionText(last("Zweite"))

		assert.Equal(t, "Erste", dst)
	})

	t.Run("skips fragments that do not end their text node", func(t *testing.T) {
		t.Parallel()

		var dst string
		m := &duden.Meaning{Dst: &dst}

		m.OnDefinitionText(partial("Anfang"))
		m.OnDefinitionText(last("Ende"))

		assert.Equal(t, "Ende", dst)
	})

	t.Run("list items are separated by line breaks", func(t *testing.T) {
		t.Parallel()

		var dst string
		m := &duden.Meaning{Dst: &dst}

		m.OnItemOpen(nil)
		m.OnItemText(last("Erste Bedeutung"))
		m.OnItemOpen(nil)
		m.OnItemText(last("Zweite Bedeutung"))

		assert.Equal(t, "Erste Bedeutung\nZweite Bedeutung", dst)
	})

	t.Run("fragments within one item are joined by a space", func(t *testing.T) {
		t.Parallel()

		var dst string
		m := &duden.Meaning{Dst: &dst}

		m.OnItemOpen(nil)
		m.OnItemText(last("Teil"))
		m.OnItemText(partial("ignoriert"))
		m.OnItemText(last("eins (3)"))
		m.OnItemText(last(" "))
		m.OnItemOpen(nil)
		m.OnItemOpen(nil)
		m.OnItemText(last("Teil zwei"))

		assert.Equal(t, "Teil eins\nTeil zwei", dst)
	})

	t.Run("list text stops a later single definition", func(t *testing.T) {
		t.Parallel()

		var dst string
		m := &duden.Meaning{Dst: &dst}

		m.OnItemOpen(nil)
		m.OnItemText(last("Liste"))
		m.OnDefinitionText(last("Absatz"))

		assert.Equal(t, "Liste", dst)
	})
}

func TestFirstMatch(t *testing.T) {
	t.Parallel()

	var dst string
	r := &duden.FirstMatch{Dst: &dst}

	r.OnText(last("\n\t"))
	r.OnText(last("  Haus "))
	r.OnText(last("Häuser"))

	assert.Equal(t, "Haus", dst)
}

func TestLastMatch(t *testing.T) {
	t.Parallel()

	var dst string
	r := &duden.LastMatch{Dst: &dst}

	r.OnText(last("Substantiv"))
	r.OnText(last(" Verb "))
	r.OnText(last("   "))

	assert.Equal(t, "Verb", dst)
}

func TestCounter(t *testing.T) {
	t.Parallel()

	var n *int
	r := &duden.Counter{Dst: &n}

	r.OnText(last(""))
	assert.Nil(t, n)

	r.OnText(last("▮▮▮▮"))
	r.OnText(last("▮▮"))

	if assert.NotNil(t, n) {
		assert.Equal(t, 2, *n)
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	var dst string
	r := &duden.Concat{Dst: &dst}

	r.OnText(last("Zwie"))
	r.OnText(last("licht"))

	assert.Equal(t, "Zwielicht", dst)
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs across fragments", func(t *testing.T) {
		t.Parallel()

		var dst string
		r := &duden.Origin{Dst: &dst}

		r.OnText(last("\n    mittelhochdeutsch\n    "))
		r.OnText(last("zwischenlieht"))
		r.OnText(last(",\n    zu "))
		r.OnText(last("Licht"))
		r.OnText(last("\n"))

		assert.Equal(t, "mittelhochdeutsch zwischenlieht, zu Licht", dst)
	})

	t.Run("keeps fragments without whitespace joined", func(t *testing.T) {
		t.Parallel()

		var dst string
		r := &duden.Origin{Dst: &dst}

		r.OnText(last("zwie"))
		r.OnText(last("-"))

		assert.Equal(t, "zwie-", dst)
	})

	t.Run("drops footnotes and non-breaking spaces", func(t *testing.T) {
		t.Parallel()

		var dst string
		r := &duden.Origin{Dst: &dst}

		r.OnText(last("lateinisch (2) origo,&nbsp;"))
		r.OnText(last("Ursprung"))

		assert.Equal(t, "lateinisch origo, Ursprung", dst)
	})
}
