package source

import (
	"fmt"
	"math"
	"unicode/utf8"
)

type boundsKind uint8

const (
	boundsFull boundsKind = iota
	boundsSpan
	boundsFrom
	boundsTo
	boundsThrough
	boundsToInclusive
)

// Bounds is a byte-offset range expression, resolved against a text when it
// is applied. The zero value is Full.
type Bounds struct {
	kind   boundsKind
	lo, hi int
}

// Span is lo..hi: bytes [lo, hi).
func Span(lo, hi int) Bounds { return Bounds{kind: boundsSpan, lo: lo, hi: hi} }

// From is lo..: bytes from lo to the end of the text.
func From(lo int) Bounds { return Bounds{kind: boundsFrom, lo: lo} }

// To is ..hi: bytes [0, hi).
func To(hi int) Bounds { return Bounds{kind: boundsTo, hi: hi} }

// Through is lo..=hi: bytes [lo, hi+1).
func Through(lo, hi int) Bounds { return Bounds{kind: boundsThrough, lo: lo, hi: hi} }

// ToInclusive is ..=hi: bytes [0, hi+1).
func ToInclusive(hi int) Bounds { return Bounds{kind: boundsToInclusive, hi: hi} }

// Full is ..: the whole text.
func Full() Bounds { return Bounds{} }

func (b Bounds) String() string {
	switch b.kind {
	case boundsSpan:
		return fmt.Sprintf("%d..%d", b.lo, b.hi)
	case boundsFrom:
		return fmt.Sprintf("%d..", b.lo)
	case boundsTo:
		return fmt.Sprintf("..%d", b.hi)
	case boundsThrough:
		return fmt.Sprintf("%d..=%d", b.lo, b.hi)
	case boundsToInclusive:
		return fmt.Sprintf("..=%d", b.hi)
	default:
		return ".."
	}
}

// Resolve applies b to text and returns the selected half-open range.
func (b Bounds) Resolve(text string) (Range, error) {
	return b.resolve("resolve", text)
}

func (b Bounds) resolve(op, text string) (Range, error) {
	n := len(text)
	lo, hi := 0, n
	switch b.kind {
	case boundsSpan:
		lo, hi = b.lo, b.hi
	case boundsFrom:
		lo = b.lo
	case boundsTo:
		hi = b.hi
	case boundsThrough, boundsToInclusive:
		if b.hi < 0 || b.hi == math.MaxInt {
			return Range{}, &BoundsError{Op: op, Bounds: b, Len: n, Err: ErrOutOfBounds}
		}
		if b.kind == boundsThrough {
			lo = b.lo
		}
		hi = b.hi + 1
	}

	if lo < 0 || hi < lo || hi > n {
		return Range{}, &BoundsError{Op: op, Bounds: b, Len: n, Err: ErrOutOfBounds}
	}
	if !isBoundary(text, lo) || !isBoundary(text, hi) {
		return Range{}, &BoundsError{Op: op, Bounds: b, Len: n, Err: ErrInvalidBoundary}
	}
	return Range{Start: lo, End: hi}, nil
}

// isBoundary reports whether off (0 <= off <= len(text)) does not split a
// UTF-8 sequence.
func isBoundary(text string, off int) bool {
	if off == 0 || off == len(text) {
		return true
	}
	return utf8.RuneStart(text[off])
}

// Range is a half-open byte range: [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether off lies in [Start, End).
func (r Range) Contains(off int) bool {
	return off >= r.Start && off < r.End
}

// ContainsRange reports whether other lies entirely within r.
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Bounds returns r as a Span.
func (r Range) Bounds() Bounds { return Span(r.Start, r.End) }
