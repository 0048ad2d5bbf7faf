// Package stream turns a line source into a lazy sequence of tokenized
// documents, one document per line. It is the memory boundary of the
// pipeline: no buffering of the input, each document is produced as the
// consumer pulls it, and the stream cannot be rewound (re-open the source
// for a second pass).
package stream

import (
	"log"
	"os"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/source"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/tokenize"
)

// progressEvery is how many documents pass between progress log lines.
const progressEvery = 1000

// Options configures a document stream.
type Options struct {
	// Gram controls n-gram expansion of each document.
	Gram tokenize.GramOptions
	// Logger receives progress and per-line failure notices.
	// Defaults to a stderr logger.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// Documents is the flat-mode document stream: each line becomes one flat
// token list.
type Documents struct {
	lines  source.Lines
	tok    *tokenize.Tokenizer
	opts   Options
	logger *log.Logger
	count  int
}

// New creates a flat-mode document stream over the given line source.
func New(lines source.Lines, tok *tokenize.Tokenizer, opts Options) *Documents {
	return &Documents{
		lines:  lines,
		tok:    tok,
		opts:   opts,
		logger: opts.logger(),
	}
}

// Next produces the next document, or false when the source is exhausted.
// A line whose tokenization fails yields an empty document rather than
// ending the stream; the failure is logged with the line's ordinal index.
func (d *Documents) Next() ([]string, bool) {
	line, ok := d.lines.Next()
	if !ok {
		return nil, false
	}
	logProgress(d.logger, d.count)

	doc, err := d.tok.Flat(line, d.opts.Gram)
	if err != nil {
		d.logger.Printf("[documents] doc %d tokenization failed: %v", d.count, err)
		doc = []string{}
	}
	d.count++
	return doc, true
}

// Count reports how many documents have been produced so far.
func (d *Documents) Count() int {
	return d.count
}

// SentenceDocuments is the sentence-structured stream: each line becomes a
// list of per-sentence token lists. Not valid as vocabulary/corpus input,
// which require the flat form.
type SentenceDocuments struct {
	lines  source.Lines
	tok    *tokenize.Tokenizer
	opts   Options
	logger *log.Logger
	count  int
}

// NewSentences creates a sentence-structured document stream.
func NewSentences(lines source.Lines, tok *tokenize.Tokenizer, opts Options) *SentenceDocuments {
	return &SentenceDocuments{
		lines:  lines,
		tok:    tok,
		opts:   opts,
		logger: opts.logger(),
	}
}

// Next produces the next sentence-structured document. Failure handling
// matches Documents.Next: empty document, logged, stream continues.
func (d *SentenceDocuments) Next() ([][]string, bool) {
	line, ok := d.lines.Next()
	if !ok {
		return nil, false
	}
	logProgress(d.logger, d.count)

	doc, err := d.tok.BySentence(line, d.opts.Gram)
	if err != nil {
		d.logger.Printf("[documents] doc %d tokenization failed: %v", d.count, err)
		doc = [][]string{}
	}
	d.count++
	return doc, true
}

// Count reports how many documents have been produced so far.
func (d *SentenceDocuments) Count() int {
	return d.count
}

func logProgress(logger *log.Logger, count int) {
	if count > 0 && count%progressEvery == 0 {
		logger.Printf("[documents] %d docs have been processed", count)
	}
}
