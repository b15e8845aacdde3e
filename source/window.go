package source

// Window is the text a View currently exposes, handed to Edit and TryEdit
// callbacks for in-place cursor movement.
//
// Narrowing operations (Narrow, Advance, Take) keep track of where the window
// sits inside the owner buffer. Set may point the window at any string; the
// window stays attached only if that string's bytes lie inside the owner.
type Window struct {
	owner *Buffer
	text  string
	off   int // byte offset of text in owner; -1 when detached
}

func fullWindow(owner *Buffer) Window {
	return Window{owner: owner, text: owner.Text(), off: 0}
}

// Text returns the window text.
func (w *Window) Text() string { return w.text }

func (w *Window) String() string { return w.text }

// Len returns the window length in bytes.
func (w *Window) Len() int { return len(w.text) }

// Owner returns the buffer the window belongs to.
func (w *Window) Owner() *Buffer { return w.owner }

// Attached reports whether the window's offset inside the owner is known.
func (w *Window) Attached() bool { return w.owner != nil && w.off >= 0 }

// Narrow replaces the window with its sub-range b.
func (w *Window) Narrow(b Bounds) error {
	r, err := b.resolve("narrow", w.text)
	if err != nil {
		return err
	}
	w.narrow(r)
	return nil
}

func (w *Window) narrow(r Range) {
	w.text = w.text[r.Start:r.End]
	if w.off >= 0 {
		w.off += r.Start
	}
}

// Advance drops the first n bytes of the window.
func (w *Window) Advance(n int) error {
	r, err := From(n).resolve("advance", w.text)
	if err != nil {
		return err
	}
	w.narrow(r)
	return nil
}

// Take drops the first n bytes of the window and returns them.
func (w *Window) Take(n int) (string, error) {
	r, err := From(n).resolve("take", w.text)
	if err != nil {
		return "", err
	}
	taken := w.text[:n]
	w.narrow(r)
	return taken, nil
}

// Set points the window at s. The window is attached when s is non-empty and
// starts inside the owner's bytes; otherwise it is detached.
func (w *Window) Set(s string) {
	w.text = s
	w.off = w.owner.offsetOf(s)
}

// Reset points the window back at the full owner text.
func (w *Window) Reset() {
	*w = fullWindow(w.owner)
}
