package source

import (
	"hash/maphash"
	"strings"
	"unsafe"
)

// View is a window into source text plus shared ownership of the Buffer the
// text was cut from.
//
// Copying a View (or calling Clone) is O(1) and shares the buffer. Views
// compare by position, not content: see Key.
type View struct {
	w Window
}

// New returns a View over a fresh Buffer holding a copy of text.
func New(text string) View {
	return FromBuffer(NewBuffer(text))
}

// FromBytes returns a View over a fresh Buffer holding a copy of b.
func FromBytes(b []byte) View {
	return FromBuffer(&Buffer{text: string(b)})
}

// FromBuffer returns a View covering all of owner. Views built from the same
// Buffer share it.
func FromBuffer(owner *Buffer) View {
	return View{w: fullWindow(owner)}
}

// Clone returns a copy of v sharing the same buffer.
func (v View) Clone() View { return v }

// Owner returns the buffer v was cut from.
func (v View) Owner() *Buffer { return v.w.owner }

// Text returns the current window text.
func (v View) Text() string { return v.w.text }

// String returns the window text and nothing else.
func (v View) String() string { return v.w.text }

// GoString makes %#v print the window text, like %v.
func (v View) GoString() string { return v.w.text }

// Owned returns a freshly allocated copy of the window text.
func (v View) Owned() string { return strings.Clone(v.w.text) }

// Len returns the window length in bytes.
func (v View) Len() int { return len(v.w.text) }

func (v View) IsEmpty() bool { return v.w.text == "" }

// Slice returns the substring of the current window selected by b.
func (v View) Slice(b Bounds) (string, error) {
	r, err := b.resolve("slice", v.w.text)
	if err != nil {
		return "", err
	}
	return v.w.text[r.Start:r.End], nil
}

// Index is Slice that panics with a *BoundsError on invalid bounds.
func (v View) Index(b Bounds) string {
	s, err := v.Slice(b)
	if err != nil {
		panic(err)
	}
	return s
}

// Sub returns a View over the sub-range b of the current window.
// The result is attached iff v is attached.
func (v View) Sub(b Bounds) (View, error) {
	r, err := b.resolve("sub", v.w.text)
	if err != nil {
		return View{}, err
	}
	out := v
	out.w.narrow(r)
	return out, nil
}

// MustSub is Sub that panics on invalid bounds.
func (v View) MustSub(b Bounds) View {
	out, err := v.Sub(b)
	if err != nil {
		panic(err)
	}
	return out
}

// OwnerSub returns a View over the range b of the owner's full text,
// ignoring the current window.
func (v View) OwnerSub(b Bounds) (View, error) {
	text := v.w.owner.Text()
	r, err := b.resolve("owner sub", text)
	if err != nil {
		return View{}, err
	}
	return View{w: Window{owner: v.w.owner, text: text[r.Start:r.End], off: r.Start}}, nil
}

// MustOwnerSub is OwnerSub that panics on invalid bounds.
func (v View) MustOwnerSub(b Bounds) View {
	out, err := v.OwnerSub(b)
	if err != nil {
		panic(err)
	}
	return out
}

// SourceRange returns the byte range the window occupies in the owner.
//
// It reports false for detached windows and for windows starting at or past
// the end of the owner. The latter includes an empty window positioned
// exactly at the end of the buffer, and every window over an empty buffer.
func (v View) SourceRange() (Range, bool) {
	off := v.w.off
	if off < 0 || off >= v.w.owner.Len() {
		return Range{}, false
	}
	return Range{Start: off, End: off + len(v.w.text)}, true
}

// Position returns the line and column of the window's start and end.
func (v View) Position() (start, end Pos, ok bool) {
	r, ok := v.SourceRange()
	if !ok {
		return Pos{}, Pos{}, false
	}
	var err error
	if start, err = v.w.owner.Position(r.Start); err != nil {
		return Pos{}, Pos{}, false
	}
	if end, err = v.w.owner.Position(r.End); err != nil {
		return Pos{}, Pos{}, false
	}
	return start, end, true
}

// Key identifies a View by position: the owner buffer plus the window's
// location. It is comparable and suitable as a map key.
//
// Attached windows are keyed by offset and length. Detached windows are keyed
// by the address and length of their text.
type Key struct {
	owner *Buffer
	off   int
	n     int
	data  *byte
}

// Key returns v's identity.
func (v View) Key() Key {
	k := Key{owner: v.w.owner, off: v.w.off, n: len(v.w.text)}
	if v.w.off < 0 {
		k.data = unsafe.StringData(v.w.text)
	}
	return k
}

// Equal reports whether v and o share an owner and cover the same span.
// Textually equal windows at different positions are not equal.
func (v View) Equal(o View) bool { return v.Key() == o.Key() }

// Hash returns a hash of v's identity, consistent with Equal.
func (v View) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, v.Key())
}
