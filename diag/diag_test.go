package diag

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/srcview/source"
)

func TestRender_Plain(t *testing.T) {
	v := source.New("fn main() {\n  let x = @;\n}")
	at := v.MustOwnerSub(source.Span(22, 23))
	if at.Text() != "@" {
		t.Fatalf("setup: got %q", at.Text())
	}

	got := Render(at, "unexpected character", Options{Label: "here"})
	want := strings.Join([]string{
		"error: unexpected character",
		" --> 2:11",
		"  |",
		"2 |   let x = @;",
		"  |           ^ here",
	}, "\n")
	if got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_MultiCellSpanAndSeverity(t *testing.T) {
	v := source.New("x := 日本 + 1")
	span := v.MustOwnerSub(source.Span(5, 11))

	got := Render(span, "unknown name", Options{Severity: "warning"})
	want := strings.Join([]string{
		"warning: unknown name",
		" --> 1:6",
		"  |",
		"1 | x := 日本 + 1",
		"  |      ^^^^",
	}, "\n")
	if got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_TabsAlignCarets(t *testing.T) {
	v := source.New("\tif\tx")
	span := v.MustOwnerSub(source.Span(4, 5))

	got := Render(span, "bad", Options{TabWidth: 4})
	want := strings.Join([]string{
		"error: bad",
		" --> 1:5",
		"  |",
		"1 |     if  x",
		"  |         ^",
	}, "\n")
	if got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_EmptySpanAndMultiLineSpan(t *testing.T) {
	v := source.New("ab\ncd")

	empty := v.MustOwnerSub(source.Span(1, 1))
	if got := Render(empty, "", Options{}); !strings.HasSuffix(got, "\n  |  ^") {
		t.Fatalf("empty span should get one caret:\n%s", got)
	}

	multi := v.MustOwnerSub(source.Span(1, 4))
	got := Render(multi, "", Options{})
	if !strings.Contains(got, "1 | ab\n  |  ^") || strings.Contains(got, "cd") {
		t.Fatalf("multi-line span should underline only its first line:\n%s", got)
	}
}

func TestRender_ViewOnLineTerminator(t *testing.T) {
	v := source.New("ab\r\ncd")
	nl := v.MustOwnerSub(source.Span(2, 4))

	got := Render(nl, "stray newline", Options{})
	want := strings.Join([]string{
		"error: stray newline",
		" --> 1:3",
		"  |",
		"1 | ab",
		"  |   ^",
	}, "\n")
	if got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_Detached(t *testing.T) {
	v := source.New("abc")
	v.Edit(func(w *source.Window) { w.Set("synthetic\ttoken") })

	got := Render(v, "no location", Options{})
	want := "error: no location\n  = \"synthetic\\ttoken\""
	if got != want {
		t.Fatalf("render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_EndOfBufferHasNoLocation(t *testing.T) {
	v := source.New("abc")
	eof := v.MustOwnerSub(source.From(3))
	if got := Render(eof, "unexpected end of input", Options{}); got != "error: unexpected end of input" {
		t.Fatalf("render: got %q", got)
	}
}

func TestRender_Styled(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	v := source.New("let x = @;")
	got := Render(v.MustOwnerSub(source.Span(8, 9)), "boom", Options{Style: NewStyle(r)})
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("styled render should contain escape sequences: %q", got)
	}

	plain := lipgloss.NewRenderer(io.Discard)
	plain.SetColorProfile(termenv.Ascii)
	got = Render(v.MustOwnerSub(source.Span(8, 9)), "boom", Options{Style: NewStyle(plain)})
	want := Render(v.MustOwnerSub(source.Span(8, 9)), "boom", Options{Style: PlainStyle()})
	if got != want {
		t.Fatalf("ascii profile should render like plain style:\n got: %q\nwant: %q", got, want)
	}
}
