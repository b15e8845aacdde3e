package source

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unsafe"

	"github.com/iw2rmb/srcview/internal/grapheme"
)

// Buffer is immutable source text shared by any number of Views.
//
// A Buffer must not be copied after first use; share the pointer.
type Buffer struct {
	text string

	linesOnce sync.Once
	lines     []int // byte offset of each line start
}

// NewBuffer returns a Buffer holding a private copy of text.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: strings.Clone(text)}
}

// Text returns the full buffer text.
func (b *Buffer) Text() string {
	if b == nil {
		return ""
	}
	return b.text
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int { return len(b.Text()) }

// offsetOf returns the byte offset of s inside b, or -1 when s does not start
// inside b's bytes. Empty strings carry no location and always yield -1.
func (b *Buffer) offsetOf(s string) int {
	if b == nil || s == "" || b.text == "" {
		return -1
	}
	base := uintptr(unsafe.Pointer(unsafe.StringData(b.text)))
	p := uintptr(unsafe.Pointer(unsafe.StringData(s)))
	if p < base || p >= base+uintptr(len(b.text)) {
		return -1
	}
	off := int(p - base)
	if off+len(s) > len(b.text) {
		return -1
	}
	return off
}

// Pos is a 0-based line and column. Col counts grapheme clusters from the
// start of the line.
type Pos struct {
	Line int
	Col  int
}

// String renders p 1-based, as "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Col+1)
}

func (b *Buffer) lineStarts() []int {
	b.linesOnce.Do(func() {
		starts := make([]int, 1, strings.Count(b.text, "\n")+1)
		for i := 0; i < len(b.text); i++ {
			if b.text[i] == '\n' {
				starts = append(starts, i+1)
			}
		}
		b.lines = starts
	})
	return b.lines
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	if b == nil {
		return 1
	}
	return len(b.lineStarts())
}

// LineRange returns the byte range of line, excluding its line terminator
// ("\n" or "\r\n").
func (b *Buffer) LineRange(line int) (Range, bool) {
	if b == nil {
		if line == 0 {
			return Range{}, true
		}
		return Range{}, false
	}
	starts := b.lineStarts()
	if line < 0 || line >= len(starts) {
		return Range{}, false
	}
	start := starts[line]
	end := len(b.text)
	if line+1 < len(starts) {
		end = starts[line+1] - 1
		if end > start && b.text[end-1] == '\r' {
			end--
		}
	}
	return Range{Start: start, End: end}, true
}

// Line returns the text of line without its line terminator.
func (b *Buffer) Line(line int) (string, bool) {
	r, ok := b.LineRange(line)
	if !ok {
		return "", false
	}
	return b.Text()[r.Start:r.End], true
}

// Position converts a byte offset in [0, Len()] to a line and column.
func (b *Buffer) Position(off int) (Pos, error) {
	text := b.Text()
	if off < 0 || off > len(text) {
		return Pos{}, &BoundsError{Op: "position", Bounds: Span(off, off), Len: len(text), Err: ErrOutOfBounds}
	}
	if !isBoundary(text, off) {
		return Pos{}, &BoundsError{Op: "position", Bounds: Span(off, off), Len: len(text), Err: ErrInvalidBoundary}
	}
	if b == nil {
		return Pos{}, nil
	}

	starts := b.lineStarts()
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	return Pos{Line: line, Col: grapheme.Count(text[starts[line]:off])}, nil
}
