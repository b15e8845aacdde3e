package source

// Edit calls f with v's window and keeps whatever f leaves in it.
func Edit[T any](v *View, f func(w *Window) T) T {
	w := v.w
	res := f(&w)
	v.commit(w)
	return res
}

// TryEdit is Edit for fallible callbacks. When f returns an error the window
// is restored to its state before the call and the error is returned as is.
func TryEdit[T any](v *View, f func(w *Window) (T, error)) (T, error) {
	return TryRun(v, func(v *View) (T, error) {
		w := v.w
		res, err := f(&w)
		v.commit(w)
		return res, err
	})
}

// TryRun calls f with v. When f returns an error, v's window is restored to
// its state before the call. The owner is never affected.
func TryRun[T any](v *View, f func(v *View) (T, error)) (T, error) {
	saved := v.w
	res, err := f(v)
	if err != nil {
		v.w = saved
		return res, err
	}
	v.w = rebind(saved.owner, v.w)
	return res, nil
}

// Edit calls f with v's window and keeps whatever f leaves in it.
func (v *View) Edit(f func(w *Window)) {
	w := v.w
	f(&w)
	v.commit(w)
}

// TryEdit calls f with v's window, keeping the result only when f succeeds.
func (v *View) TryEdit(f func(w *Window) error) error {
	_, err := TryEdit(v, func(w *Window) (struct{}, error) {
		return struct{}{}, f(w)
	})
	return err
}

func (v *View) commit(w Window) {
	v.w = rebind(v.w.owner, w)
}

// rebind returns w belonging to owner. A window carried over from another
// buffer keeps its text and is located in owner the way Set would.
func rebind(owner *Buffer, w Window) Window {
	if w.owner == owner {
		return w
	}
	return Window{owner: owner, text: w.text, off: owner.offsetOf(w.text)}
}
