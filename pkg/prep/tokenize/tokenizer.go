package tokenize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/internalerr"
)

// punctuation is the ASCII punctuation set deleted from sentences before
// word splitting. Note '_' is included: underscores only ever enter a token
// through gram joining, never from the raw text.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenizer turns raw text lines into normalized word tokens: sentences are
// split, punctuation is deleted, words are lowercased and stopwords dropped.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// New creates a tokenizer with the given stopword list.
func New(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Default creates a tokenizer with the built-in English stopword list.
func Default() *Tokenizer {
	return New(englishStopwords)
}

// AddStopword adds a word to the stopword list.
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list.
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}

// Words tokenizes one sentence: punctuation characters are deleted, the
// remainder is lowercased and split on whitespace, and stopwords are
// dropped. Digits survive here; the vocabulary's alphabetic prune is a
// separate concern.
func (t *Tokenizer) Words(sentence string) []string {
	var cleaned strings.Builder
	cleaned.Grow(len(sentence))
	for _, r := range sentence {
		if strings.ContainsRune(punctuation, r) {
			continue
		}
		cleaned.WriteRune(unicode.ToLower(r))
	}

	var words []string
	for _, w := range strings.Fields(cleaned.String()) {
		if t.isStopword(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Flat tokenizes one raw line into a single flat token list: every sentence
// is tokenized and gram-expanded, and the per-sentence results are
// concatenated in order. An empty or content-free line yields an empty
// list. The only error is invalid UTF-8 input.
func (t *Tokenizer) Flat(line string, opts GramOptions) ([]string, error) {
	if !utf8.ValidString(line) {
		return nil, fmt.Errorf("%w: line is not valid UTF-8", internalerr.ErrInvalidInput)
	}
	var tokens []string
	for _, sent := range Sentences(line) {
		tokens = append(tokens, Grams(t.Words(sent), opts)...)
	}
	return tokens, nil
}

// BySentence tokenizes one raw line keeping the sentence structure: one
// token list per sentence. Vocabulary and corpus construction require the
// flat form; this variant exists for models that need sentence boundaries.
func (t *Tokenizer) BySentence(line string, opts GramOptions) ([][]string, error) {
	if !utf8.ValidString(line) {
		return nil, fmt.Errorf("%w: line is not valid UTF-8", internalerr.ErrInvalidInput)
	}
	var sents [][]string
	for _, sent := range Sentences(line) {
		sents = append(sents, Grams(t.Words(sent), opts))
	}
	return sents, nil
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}
