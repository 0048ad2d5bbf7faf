// Package vocab builds the controlled vocabulary: a bidirectional mapping
// between surface terms and dense integer IDs, with per-term document
// frequency gathered at build time.
package vocab

import (
	"fmt"
	"regexp"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/internalerr"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/stream"
)

// alphabetic matches terms composed only of ASCII letters and underscores.
// Anything else (digits, leftover symbols) is pruned from the vocabulary.
var alphabetic = regexp.MustCompile(`^[A-Za-z_]*$`)

// Vocabulary maps terms to dense, gap-free, zero-based integer IDs and
// tracks each term's document frequency. IDs are assigned in order of
// first appearance and recompacted after every prune, so the ID set is
// always exactly {0..Len()-1}.
type Vocabulary struct {
	ids    map[string]int
	tokens []string
	dfs    []int64
}

func empty() *Vocabulary {
	return &Vocabulary{ids: make(map[string]int)}
}

// Build consumes one full pass of a flat-mode document stream and returns
// the pruned, compacted vocabulary. Terms that are not purely alphabetic
// are removed, as are terms whose document frequency is minTermFreq or
// lower (minTermFreq=1 drops terms seen in only one document).
func Build(docs *stream.Documents, minTermFreq int) *Vocabulary {
	v := empty()
	for {
		doc, ok := docs.Next()
		if !ok {
			break
		}
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			id, exists := v.ids[tok]
			if !exists {
				id = len(v.tokens)
				v.ids[tok] = id
				v.tokens = append(v.tokens, tok)
				v.dfs = append(v.dfs, 0)
			}
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			v.dfs[id]++
		}
	}

	return v.prune(func(token string, df int64) bool {
		return alphabetic.MatchString(token) && df > int64(minTermFreq)
	})
}

// FromTable reconstructs a vocabulary from parallel token/df tables, where
// a token's position is its ID. Used when loading a persisted vocabulary.
func FromTable(tokens []string, dfs []int64) (*Vocabulary, error) {
	if len(tokens) != len(dfs) {
		return nil, fmt.Errorf("%w: %d tokens vs %d frequencies",
			internalerr.ErrLengthMismatch, len(tokens), len(dfs))
	}
	v := empty()
	for i, tok := range tokens {
		if _, dup := v.ids[tok]; dup {
			return nil, fmt.Errorf("%w: duplicate token %q", internalerr.ErrInvalidInput, tok)
		}
		v.ids[tok] = i
		v.tokens = append(v.tokens, tok)
		v.dfs = append(v.dfs, dfs[i])
	}
	return v, nil
}

// Sub returns a new vocabulary keeping only the allowed surface terms,
// with IDs recompacted. The receiver is left untouched. The second return
// is the number of terms removed.
func Sub(v *Vocabulary, allowed []string) (*Vocabulary, int) {
	keep := make(map[string]struct{}, len(allowed))
	for _, term := range allowed {
		keep[term] = struct{}{}
	}
	sub := v.prune(func(token string, _ int64) bool {
		_, ok := keep[token]
		return ok
	})
	return sub, v.Len() - sub.Len()
}

// SubByID is the keyed variant of Sub: the allow-list is a set of IDs in
// the receiver's current ID space.
func SubByID(v *Vocabulary, ids []int) (*Vocabulary, int) {
	keep := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	sub := v.prune(func(token string, _ int64) bool {
		_, ok := keep[v.ids[token]]
		return ok
	})
	return sub, v.Len() - sub.Len()
}

// prune filters terms and compacts the surviving IDs to be contiguous from
// zero, preserving relative order by original ID. Never partial: the
// result is a fresh vocabulary.
func (v *Vocabulary) prune(keep func(token string, df int64) bool) *Vocabulary {
	out := empty()
	for id, tok := range v.tokens {
		if !keep(tok, v.dfs[id]) {
			continue
		}
		out.ids[tok] = len(out.tokens)
		out.tokens = append(out.tokens, tok)
		out.dfs = append(out.dfs, v.dfs[id])
	}
	return out
}

// ID returns the integer ID for a term.
func (v *Vocabulary) ID(token string) (int, bool) {
	id, ok := v.ids[token]
	return id, ok
}

// Token returns the term for an ID.
func (v *Vocabulary) Token(id int) (string, bool) {
	if id < 0 || id >= len(v.tokens) {
		return "", false
	}
	return v.tokens[id], true
}

// DocFreq returns the document frequency recorded for an ID.
func (v *Vocabulary) DocFreq(id int) int64 {
	if id < 0 || id >= len(v.dfs) {
		return 0
	}
	return v.dfs[id]
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Tokens returns all terms in ID order.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// String summarizes the vocabulary for log lines.
func (v *Vocabulary) String() string {
	return fmt.Sprintf("Vocabulary(%d unique tokens)", len(v.tokens))
}
