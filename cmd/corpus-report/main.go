// corpus-report ranks per-term weight distributions over a corpus and
// optionally renders density plots to a PDF. The corpus comes either from
// a SQLite database written by corpus-build or, with --input, from a raw
// text file rebuilt on the fly.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/bow"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/config"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/report"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/source"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/store/sqlite"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/vocab"
)

func main() {
	var (
		dbPath       = flag.String("db", "", "SQLite file written by corpus-build (this or --input required)")
		input        = flag.String("input", "", "Raw text file, one document per line, to rebuild the corpus from when no --db is given")
		n            = flag.Int("n", 1, "Highest n-gram order when rebuilding from --input")
		minTermFreq  = flag.Int("min-term-freq", 1, "Vocabulary pruning threshold when rebuilding from --input")
		stoplistPath = flag.String("stoplist", "", "Optional: YAML stoplist file when rebuilding from --input")
		stripHTML    = flag.Bool("html", false, "Strip HTML markup from input lines when rebuilding from --input")
		sortBy       = flag.String("sort-by", "weighted_sum", "Ranking criterion: count or weighted_sum")
		top          = flag.Int("top", report.DefaultTopN, "Number of ranked terms to keep")
		pdfPath      = flag.String("pdf", "", "Optional: render density plots to this PDF file")
		title        = flag.String("title", "", "Optional: plot title")
	)
	flag.Parse()

	var (
		vocabulary *vocab.Vocabulary
		corpus     bow.Corpus
		err        error
	)
	switch {
	case *dbPath != "":
		vocabulary, corpus, err = load(*dbPath)
	case *input != "":
		opts := prep.Options{N: *n, MinTermFreq: *minTermFreq}
		if *stoplistPath != "" {
			sl, slErr := config.LoadStoplist(*stoplistPath)
			if slErr != nil {
				log.Fatalf("load stoplist: %v", slErr)
			}
			opts.Stopwords = sl.Terms
		}
		vocabulary, corpus, err = rebuild(*input, *stripHTML, opts)
	default:
		log.Fatal("--db or --input required")
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[corpus-report] %s, %d docs", vocabulary, len(corpus))

	rep, err := prep.CorpusHistogram(corpus, vocabulary, report.Options{
		SortBy:  report.SortMode(*sortBy),
		TopN:    *top,
		PDFPath: *pdfPath,
		Title:   *title,
	})
	if err != nil {
		log.Fatalf("histogram: %v", err)
	}
	if *pdfPath != "" {
		log.Printf("[corpus-report] density plots written to %s", *pdfPath)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}

func load(dbPath string) (*vocab.Vocabulary, bow.Corpus, error) {
	ctx := context.Background()
	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	vocabulary, err := st.LoadVocabulary(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load vocabulary: %w", err)
	}
	corpus, err := st.LoadCorpus(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load corpus: %w", err)
	}
	return vocabulary, corpus, nil
}

// rebuild runs the full pipeline over a raw text file. The file is opened
// twice: once for the vocabulary pass and once for the corpus pass.
func rebuild(path string, stripHTML bool, opts prep.Options) (*vocab.Vocabulary, bow.Corpus, error) {
	acquire := func() (source.Lines, func(), error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		lines := source.Lines(source.FromReader(f))
		if stripHTML {
			lines = source.FromHTML(lines)
		}
		return lines, func() { f.Close() }, nil
	}

	lines, release, err := acquire()
	if err != nil {
		return nil, nil, err
	}
	vocabulary, err := prep.BuildVocabulary(lines, opts)
	release()
	if err != nil {
		return nil, nil, fmt.Errorf("build vocabulary: %w", err)
	}

	lines, release, err = acquire()
	if err != nil {
		return nil, nil, err
	}
	corpus, err := prep.BuildCorpus(lines, vocabulary, opts)
	release()
	if err != nil {
		return nil, nil, fmt.Errorf("build corpus: %w", err)
	}
	return vocabulary, corpus, nil
}
