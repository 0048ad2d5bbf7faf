package source

import (
	"errors"
	"strings"
	"testing"
)

// failingReader yields some data, then a read error.
type failingReader struct {
	data string
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}

func drain(lines Lines) []string {
	var out []string
	for {
		line, ok := lines.Next()
		if !ok {
			return out
		}
		out = append(out, line)
	}
}

func TestFromSlice(t *testing.T) {
	got := drain(FromSlice([]string{"one", "two"}))
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("unexpected lines: %v", got)
	}

	src := FromSlice(nil)
	if _, ok := src.Next(); ok {
		t.Error("empty slice should be exhausted immediately")
	}
}

func TestFromReader(t *testing.T) {
	src := FromReader(strings.NewReader("first line\nsecond line\n"))
	got := drain(src)
	if len(got) != 2 || got[0] != "first line" || got[1] != "second line" {
		t.Errorf("unexpected lines: %v", got)
	}
	if err := src.Err(); err != nil {
		t.Errorf("unexpected scan error: %v", err)
	}
	// Exhausted source stays exhausted.
	if _, ok := src.Next(); ok {
		t.Error("expected exhausted source")
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<p>Hello <b>world</b></p>", "Hello world"},
		{"plain text stays", "plain text stays"},
		{"<div><span>nested</span> content</div>", "nested content"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripHTML(tt.in); got != tt.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromReaderSurfacesReadError(t *testing.T) {
	readErr := errors.New("disk read failed")
	src := FromReader(&failingReader{data: "partial line without newline, then boom", err: readErr})

	drain(src)
	if !errors.Is(src.Err(), readErr) {
		t.Errorf("expected read error, got %v", src.Err())
	}
}

func TestFromHTMLForwardsErr(t *testing.T) {
	readErr := errors.New("disk read failed")
	src := FromHTML(FromReader(&failingReader{data: "<p>partial</p>", err: readErr}))

	drain(src)
	if !errors.Is(src.Err(), readErr) {
		t.Errorf("wrapped source must forward the read error, got %v", src.Err())
	}
}

func TestFromHTMLErrWithoutTracking(t *testing.T) {
	src := FromHTML(FromSlice([]string{"plain"}))

	drain(src)
	if err := src.Err(); err != nil {
		t.Errorf("slice-backed source has no errors to forward, got %v", err)
	}
}

func TestFromHTML(t *testing.T) {
	src := FromHTML(FromSlice([]string{"<p>first remark</p>", "second remark"}))
	got := drain(src)
	if len(got) != 2 || got[0] != "first remark" || got[1] != "second remark" {
		t.Errorf("unexpected lines: %v", got)
	}
}
