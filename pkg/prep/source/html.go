package source

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML extracts the text content of an HTML fragment. Lines scraped
// from web sources carry markup that would otherwise leak tag names into
// the token stream.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

// HTMLLines wraps another line source and strips markup from each line.
type HTMLLines struct {
	inner Lines
}

// FromHTML wraps a line source whose lines contain HTML fragments.
func FromHTML(inner Lines) *HTMLLines {
	return &HTMLLines{inner: inner}
}

// Next implements Lines.
func (h *HTMLLines) Next() (string, bool) {
	line, ok := h.inner.Next()
	if !ok {
		return "", false
	}
	return StripHTML(line), true
}

// Err forwards the inner source's read error, if it tracks one. Without
// this a wrapped reader's mid-scan failure would look like a clean
// end-of-input to the pipeline.
func (h *HTMLLines) Err() error {
	if e, ok := h.inner.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}
