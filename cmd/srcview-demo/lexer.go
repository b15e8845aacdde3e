package main

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/iw2rmb/srcview/scan"
	"github.com/iw2rmb/srcview/source"
)

// Kind classifies a token.
type Kind uint8

const (
	KindEOF Kind = iota
	KindIdent
	KindKeyword
	KindNumber
	KindString
	KindComment
	KindPunct
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "eof"
	case KindIdent:
		return "ident"
	case KindKeyword:
		return "keyword"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindComment:
		return "comment"
	case KindPunct:
		return "punct"
	default:
		return "invalid"
	}
}

// Token is a lexed span. Its View aliases the source buffer.
type Token struct {
	Kind Kind
	View source.View
}

// LexError reports a problem at a span of the source.
type LexError struct {
	At  source.View
	Msg string
}

func (e *LexError) Error() string {
	if start, _, ok := e.At.Position(); ok {
		return fmt.Sprintf("%s: %s", start, e.Msg)
	}
	return e.Msg
}

// errNoMatch makes a rule back out so the next one can try.
var errNoMatch = errors.New("no match")

// lexed is what a rule recognized. A non-empty problem marks malformed input
// that was still consumed, so lexing can move past it.
type lexed struct {
	kind    Kind
	problem string
}

// Lexer splits a view into tokens, advancing its own copy of the view.
type Lexer struct {
	rest     source.View
	keywords map[string]bool
	rules    []func(w *source.Window) (lexed, error)
}

func NewLexer(v source.View, keywords []string) *Lexer {
	l := &Lexer{rest: v, keywords: make(map[string]bool, len(keywords))}
	for _, kw := range keywords {
		l.keywords[kw] = true
	}
	l.rules = []func(w *source.Window) (lexed, error){lexComment, lexString, lexHex, lexDecimal, l.lexWord, lexPunct}
	return l
}

// Next returns the next token. At the end of input it returns a KindEOF
// token. Invalid input yields a KindInvalid token together with a *LexError;
// lexing can continue after it.
func (l *Lexer) Next() (Token, error) {
	l.rest.Edit(func(w *source.Window) { scan.Space(w) })
	if l.rest.IsEmpty() {
		return Token{Kind: KindEOF, View: l.rest}, nil
	}

	start := l.rest
	for _, r := range l.rules {
		res, err := source.TryEdit(&l.rest, r)
		if err != nil {
			continue
		}
		tok := Token{Kind: res.kind, View: l.consumed(start)}
		if res.problem != "" {
			return Token{Kind: KindInvalid, View: tok.View}, &LexError{At: tok.View, Msg: res.problem}
		}
		return tok, nil
	}

	l.rest.Edit(func(w *source.Window) { scan.Cluster(w) })
	bad := l.consumed(start)
	return Token{Kind: KindInvalid, View: bad}, &LexError{At: bad, Msg: fmt.Sprintf("unexpected character %q", bad.Text())}
}

// consumed returns the part of start that precedes l.rest.
func (l *Lexer) consumed(start source.View) source.View {
	return start.MustSub(source.To(start.Len() - l.rest.Len()))
}

func lexComment(w *source.Window) (lexed, error) {
	if !scan.Prefix(w, "//") {
		return lexed{}, errNoMatch
	}
	if _, ok := scan.Until(w, "\n"); !ok {
		_, _ = scan.Bytes(w, w.Len())
	}
	return lexed{kind: KindComment}, nil
}

// lexString consumes a double-quoted string. Unterminated strings are
// consumed to the end of input and reported.
func lexString(w *source.Window) (lexed, error) {
	if !scan.Prefix(w, `"`) {
		return lexed{}, errNoMatch
	}
	if _, ok := scan.Until(w, `"`); !ok {
		_, _ = scan.Bytes(w, w.Len())
		return lexed{kind: KindString, problem: "unterminated string"}, nil
	}
	scan.Prefix(w, `"`)
	return lexed{kind: KindString}, nil
}

func lexHex(w *source.Window) (lexed, error) {
	if !scan.Prefix(w, "0x") {
		return lexed{}, errNoMatch
	}
	if scan.While(w, isHexDigit) == "" {
		// "0x" alone: undo and let lexDecimal take the "0".
		return lexed{}, errNoMatch
	}
	return lexed{kind: KindNumber}, nil
}

func lexDecimal(w *source.Window) (lexed, error) {
	if scan.While(w, unicode.IsDigit) == "" {
		return lexed{}, errNoMatch
	}
	return lexed{kind: KindNumber}, nil
}

func (l *Lexer) lexWord(w *source.Window) (lexed, error) {
	first := true
	word := scan.While(w, func(r rune) bool {
		ok := r == '_' || unicode.IsLetter(r) || (!first && unicode.IsDigit(r))
		first = false
		return ok
	})
	if word == "" {
		return lexed{}, errNoMatch
	}
	if l.keywords[word] {
		return lexed{kind: KindKeyword}, nil
	}
	return lexed{kind: KindIdent}, nil
}

func lexPunct(w *source.Window) (lexed, error) {
	c, ok := scan.Cluster(w)
	if !ok {
		return lexed{}, errNoMatch
	}
	for _, r := range c {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return lexed{}, errNoMatch
		}
	}
	return lexed{kind: KindPunct}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
