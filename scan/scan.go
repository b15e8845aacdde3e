// Package scan provides cursor primitives for source.Window.
//
// Each function consumes from the front of the window and returns what it
// consumed. Consumed text aliases the source buffer and the window keeps its
// provenance, so the functions compose inside source.Edit and source.TryEdit.
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/srcview/internal/grapheme"
	"github.com/iw2rmb/srcview/source"
)

// Bytes consumes exactly n bytes.
func Bytes(w *source.Window, n int) (string, error) {
	return w.Take(n)
}

// Space consumes leading Unicode whitespace.
func Space(w *source.Window) string {
	return While(w, unicode.IsSpace)
}

// Prefix consumes p if the window starts with it.
func Prefix(w *source.Window, p string) bool {
	if !strings.HasPrefix(w.Text(), p) {
		return false
	}
	_, err := w.Take(len(p))
	return err == nil
}

// While consumes the longest prefix whose runes all satisfy pred.
func While(w *source.Window, pred func(rune) bool) string {
	text := w.Text()
	n := 0
	for n < len(text) {
		r, size := utf8.DecodeRuneInString(text[n:])
		if !pred(r) {
			break
		}
		n += size
	}
	out, _ := w.Take(n)
	return out
}

// Cluster consumes one grapheme cluster.
func Cluster(w *source.Window) (string, bool) {
	_, n := grapheme.First(w.Text())
	if n == 0 {
		return "", false
	}
	out, err := w.Take(n)
	return out, err == nil
}

// Until consumes up to, not including, the first occurrence of stop. It
// consumes nothing and reports false when stop does not occur.
func Until(w *source.Window, stop string) (string, bool) {
	i := strings.Index(w.Text(), stop)
	if i < 0 {
		return "", false
	}
	out, err := w.Take(i)
	return out, err == nil
}
