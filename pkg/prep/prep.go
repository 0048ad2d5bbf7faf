// Package prep is the text-corpus preparation facade: raw line-oriented
// text goes in, a controlled vocabulary and a sparse bag-of-words corpus
// come out. The heavy lifting lives in the subpackages; this package wires
// them the way the pipeline is meant to be run.
//
// The pipeline is strictly two-pass: one pass over the source builds the
// vocabulary, a second pass builds the corpus. The document stream does
// not rewind, so the caller re-acquires the line source between passes.
package prep

import (
	"log"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/bow"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/report"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/source"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/stream"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/tokenize"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/vocab"
)

// Options is the configuration surface of the pipeline.
type Options struct {
	// N is the highest gram order; 0 means unigrams only.
	N int
	// Padding for gram expansion.
	PadLeft  bool
	PadRight bool
	LeftPad  string
	RightPad string
	// MinTermFreq prunes terms whose document frequency is at or below
	// this value during vocabulary construction.
	MinTermFreq int
	// Stopwords overrides the built-in English stopword list when non-nil.
	Stopwords []string
	// Logger receives progress and diagnostic lines; defaults to stderr.
	Logger *log.Logger
}

func (o Options) gram() tokenize.GramOptions {
	return tokenize.GramOptions{
		N:        o.N,
		PadLeft:  o.PadLeft,
		PadRight: o.PadRight,
		LeftPad:  o.LeftPad,
		RightPad: o.RightPad,
	}
}

func (o Options) tokenizer() *tokenize.Tokenizer {
	if o.Stopwords != nil {
		return tokenize.New(o.Stopwords)
	}
	return tokenize.Default()
}

func (o Options) stream(lines source.Lines) *stream.Documents {
	return stream.New(lines, o.tokenizer(), stream.Options{Gram: o.gram(), Logger: o.Logger})
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// sourceErr surfaces a read error from line sources that track one.
func sourceErr(lines source.Lines) error {
	if e, ok := lines.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// BuildVocabulary runs one full pass over the line source and returns the
// pruned, compacted vocabulary.
func BuildVocabulary(lines source.Lines, opts Options) (*vocab.Vocabulary, error) {
	v := vocab.Build(opts.stream(lines), opts.MinTermFreq)
	if err := sourceErr(lines); err != nil {
		return nil, err
	}
	return v, nil
}

// SubVocabulary keeps only the allowed surface terms and recompacts IDs,
// returning a new vocabulary. The removal count is logged.
func SubVocabulary(v *vocab.Vocabulary, allowed []string, opts Options) *vocab.Vocabulary {
	sub, removed := vocab.Sub(v, allowed)
	opts.logger().Printf("[subvocab] %d tokens have been removed, %s remains", removed, sub)
	return sub
}

// SubVocabularyByID is the keyed variant of SubVocabulary.
func SubVocabularyByID(v *vocab.Vocabulary, ids []int, opts Options) *vocab.Vocabulary {
	sub, removed := vocab.SubByID(v, ids)
	opts.logger().Printf("[subvocab] %d tokens have been removed, %s remains", removed, sub)
	return sub
}

// BuildCorpus runs one full pass over the line source against a fixed
// vocabulary and returns the sparse corpus, one row per line.
func BuildCorpus(lines source.Lines, v *vocab.Vocabulary, opts Options) (bow.Corpus, error) {
	c := bow.Build(opts.stream(lines), v)
	if err := sourceErr(lines); err != nil {
		return nil, err
	}
	return c, nil
}

// MergeDocuments regroups corpus rows by external document ID, summing
// rows that share an ID. See bow.MergeByDocID.
func MergeDocuments(c bow.Corpus, ids []int) ([]int, bow.Corpus, error) {
	return bow.MergeByDocID(c, ids)
}

// CorpusHistogram ranks per-term weight distributions over a built corpus.
// See report.Histogram.
func CorpusHistogram(c bow.Corpus, v *vocab.Vocabulary, opts report.Options) (*report.Report, error) {
	return report.Histogram(c, v, opts)
}
