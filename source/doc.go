// Package source implements View, a zero-copy window into an immutable
// source buffer for hand-written lexers and parsers.
//
// A View remembers where its text came from: SourceRange recovers the byte
// offsets of the window inside the owning Buffer, equality is positional
// (two equal-text spans at different offsets are different views), and
// TryEdit/TryRun roll the window back when a speculative step fails.
//
// Offsets are byte offsets. Ranges are half-open: [Start, End).
//
// Views are not safe for concurrent mutation. A Buffer is immutable and may be
// shared freely.
package source
