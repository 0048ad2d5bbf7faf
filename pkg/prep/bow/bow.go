// Package bow converts token streams into the sparse bag-of-words corpus:
// one (term-ID, count) list per document, restricted to a fixed vocabulary.
package bow

import (
	"sort"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/stream"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/vocab"
)

// Entry is one sparse cell: a vocabulary ID and its in-document count.
type Entry struct {
	ID    int
	Count int
}

// Document is a sparse term-count row, unique by ID, sorted by ID.
type Document []Entry

// Corpus is an ordered sequence of sparse documents, in source order.
type Corpus []Document

// Doc2BOW converts one flat token list into its sparse representation.
// Tokens absent from the vocabulary are silently dropped; that is the
// expected way out-of-vocabulary terms disappear from the corpus.
func Doc2BOW(v *vocab.Vocabulary, tokens []string) Document {
	counts := make(map[int]int)
	for _, tok := range tokens {
		if id, ok := v.ID(tok); ok {
			counts[id]++
		}
	}

	doc := make(Document, 0, len(counts))
	for id, count := range counts {
		doc = append(doc, Entry{ID: id, Count: count})
	}
	sort.Slice(doc, func(i, j int) bool { return doc[i].ID < doc[j].ID })
	return doc
}

// Build consumes one full pass of a flat-mode document stream against a
// fixed vocabulary and returns the corpus, one row per input line in input
// order. Rebuild the corpus whenever the vocabulary changes.
func Build(docs *stream.Documents, v *vocab.Vocabulary) Corpus {
	var c Corpus
	for {
		tokens, ok := docs.Next()
		if !ok {
			break
		}
		c = append(c, Doc2BOW(v, tokens))
	}
	return c
}

// Counts expands a sparse document back into a per-ID count map.
func (d Document) Counts() map[int]int {
	counts := make(map[int]int, len(d))
	for _, e := range d {
		counts[e.ID] = e.Count
	}
	return counts
}
