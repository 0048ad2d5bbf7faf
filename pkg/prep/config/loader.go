package config

import (
	"fmt"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/report"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/tokenize"
)

// Components holds ready-to-use pipeline components built from a Config.
type Components struct {
	Tokenizer   *tokenize.Tokenizer
	Gram        tokenize.GramOptions
	MinTermFreq int
	Report      report.Options
}

// Build resolves a configuration into initialized components. The stoplist
// resolution order is: file path, then inline terms, then the built-in
// English list.
func (c *Config) Build() (*Components, error) {
	comp := &Components{
		MinTermFreq: c.MinTermFreq,
		Gram: tokenize.GramOptions{
			N:        c.Ngram.N,
			PadLeft:  c.Ngram.PadLeft,
			PadRight: c.Ngram.PadRight,
			LeftPad:  c.Ngram.LeftPad,
			RightPad: c.Ngram.RightPad,
		},
		Report: report.Options{
			SortBy:  report.SortMode(c.Report.SortBy),
			TopN:    c.Report.Top,
			PDFPath: c.Report.PDF,
			Title:   c.Report.Title,
		},
	}

	switch {
	case c.Stoplist.Path != "":
		sl, err := LoadStoplist(c.Stoplist.Path)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Tokenizer = tokenize.New(sl.Terms)
	case len(c.Stoplist.Terms) > 0:
		comp.Tokenizer = tokenize.New(c.Stoplist.Terms)
	default:
		comp.Tokenizer = tokenize.Default()
	}

	return comp, nil
}
