package source

import (
	"bufio"
	"io"
)

// Lines is the pull protocol for line-oriented input. Implementations do not
// own the underlying resource; opening and closing files is the caller's job.
// A stream is exhausted once Next returns false and cannot be rewound.
type Lines interface {
	// Next returns the next line and true, or "" and false when exhausted.
	Next() (string, bool)
}

// ReaderLines reads lines from an io.Reader.
type ReaderLines struct {
	scanner *bufio.Scanner
	err     error
	done    bool
}

// FromReader wraps a reader as a line source. One document per line.
func FromReader(r io.Reader) *ReaderLines {
	sc := bufio.NewScanner(r)
	// Raw documents can be long; match bufio's default token limit of 64K
	// with a larger ceiling so a single oversized remark doesn't kill the scan.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &ReaderLines{scanner: sc}
}

// Next implements Lines.
func (r *ReaderLines) Next() (string, bool) {
	if r.done {
		return "", false
	}
	if !r.scanner.Scan() {
		r.done = true
		r.err = r.scanner.Err()
		return "", false
	}
	return r.scanner.Text(), true
}

// Err reports a read error encountered during scanning, if any.
// Only meaningful after Next has returned false.
func (r *ReaderLines) Err() error {
	return r.err
}

// SliceLines serves lines from an in-memory slice.
type SliceLines struct {
	lines []string
	pos   int
}

// FromSlice wraps a string slice as a line source.
func FromSlice(lines []string) *SliceLines {
	return &SliceLines{lines: lines}
}

// Next implements Lines.
func (s *SliceLines) Next() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	line := s.lines[s.pos]
	s.pos++
	return line, true
}
