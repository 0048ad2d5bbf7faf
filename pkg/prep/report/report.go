// Package report produces frequency diagnostics over a built corpus: for
// each term, the distribution of its per-document weights, ranked either by
// how many documents carry the term or by its summed weight, with an
// optional density-plot rendering to PDF.
package report

import (
	"crypto/rand"
	"fmt"
	"sort"

	"github.com/oklog/ulid/v2"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/bow"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/internalerr"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/vocab"
)

// SortMode selects the ranking criterion for the top-term list.
type SortMode string

const (
	// SortByCount ranks terms by the number of documents they appear in.
	SortByCount SortMode = "count"
	// SortByWeightedSum ranks terms by the sum of their per-document weights.
	SortByWeightedSum SortMode = "weighted_sum"
)

// DefaultTopN is the number of ranked terms kept when Options.TopN is unset.
const DefaultTopN = 10

// minDocsPerTerm: a distribution over fewer than two documents is noise.
const minDocsPerTerm = 2

// Options configures a histogram report.
type Options struct {
	SortBy SortMode // defaults to SortByWeightedSum
	TopN   int      // defaults to DefaultTopN
	Title  string   // plot title, optional
	// PDFPath, when non-empty, renders a density plot per top term into a
	// one-page PDF at this path.
	PDFPath string
}

// TermStats is one ranked term with its full per-document weight list.
type TermStats struct {
	Term   string    `json:"term"`
	Rank   float64   `json:"rank"`
	Values []float64 `json:"values"`
}

// Report is the result of a histogram run.
type Report struct {
	// ID is a ULID identifying this report generation.
	ID string `json:"id"`
	// Top holds the top-N ranked terms, best first.
	Top []TermStats `json:"top"`
	// Dist maps every surviving term to its per-document weight values.
	Dist map[string][]float64 `json:"dist"`
}

var entropy = ulid.Monotonic(rand.Reader, 0)

// Histogram collects per-term weight distributions across the corpus and
// ranks them. Terms appearing in fewer than two documents are discarded;
// a corpus where nothing survives yields an empty report, not an error.
func Histogram(c bow.Corpus, v *vocab.Vocabulary, opts Options) (*Report, error) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = SortByWeightedSum
	}
	if sortBy != SortByCount && sortBy != SortByWeightedSum {
		return nil, fmt.Errorf("%w: unknown sort mode %q", internalerr.ErrInvalidInput, sortBy)
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	// Distribution of each term across documents (key=term, val=weights).
	dist := make(map[string][]float64)
	for _, doc := range c {
		for _, e := range doc {
			term, ok := v.Token(e.ID)
			if !ok {
				continue
			}
			dist[term] = append(dist[term], float64(e.Count))
		}
	}
	for term, values := range dist {
		if len(values) < minDocsPerTerm {
			delete(dist, term)
		}
	}

	top := make([]TermStats, 0, len(dist))
	for term, values := range dist {
		var rank float64
		switch sortBy {
		case SortByCount:
			rank = float64(len(values))
		case SortByWeightedSum:
			for _, val := range values {
				rank += val
			}
		}
		top = append(top, TermStats{Term: term, Rank: rank, Values: values})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Rank == top[j].Rank {
			return top[i].Term < top[j].Term
		}
		return top[i].Rank > top[j].Rank
	})
	if len(top) > topN {
		top = top[:topN]
	}

	rep := &Report{
		ID:   ulid.MustNew(ulid.Now(), entropy).String(),
		Top:  top,
		Dist: dist,
	}

	if opts.PDFPath != "" {
		if err := renderDensityPDF(rep, opts); err != nil {
			return nil, fmt.Errorf("render density plot: %w", err)
		}
	}
	return rep, nil
}
