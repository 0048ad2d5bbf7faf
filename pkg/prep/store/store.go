// Package store defines persistence for built artifacts. The vocabulary
// and corpus are immutable once built; a store holds at most one of each
// and a save replaces what was there.
package store

import (
	"context"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/bow"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/vocab"
)

// Store persists a vocabulary and its derived corpus.
type Store interface {
	Close() error

	SaveVocabulary(ctx context.Context, v *vocab.Vocabulary) error
	LoadVocabulary(ctx context.Context) (*vocab.Vocabulary, error)

	SaveCorpus(ctx context.Context, c bow.Corpus) error
	LoadCorpus(ctx context.Context) (bow.Corpus, error)
}
