// corpus-build turns a raw text file (one document per line) into a
// vocabulary and a sparse bag-of-words corpus, optionally persisting both
// to a SQLite database.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/config"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/source"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/store/sqlite"
)

type summary struct {
	Docs      int `json:"docs"`
	VocabSize int `json:"vocab_size"`
	// NonEmpty counts corpus rows with at least one in-vocabulary term.
	NonEmpty int `json:"non_empty_docs"`
}

func main() {
	var (
		input        = flag.String("input", "", "Path to raw text file, one document per line, or '-' for stdin (required)")
		cfgPath      = flag.String("config", "", "Optional: pipeline YAML config; explicitly-passed flags win over config values")
		stoplistPath = flag.String("stoplist", "", "Optional: YAML stoplist file; wins over the config's stoplist")
		n            = flag.Int("n", 1, "Highest n-gram order; wins over the config's value when passed explicitly")
		minTermFreq  = flag.Int("min-term-freq", 1, "Prune terms with document frequency at or below this value; wins over the config's value when passed explicitly")
		stripHTML    = flag.Bool("html", false, "Strip HTML markup from input lines")
		dbPath       = flag.String("db", "", "Optional: SQLite file to persist vocabulary and corpus")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	opts, err := resolveOptions(*cfgPath, *stoplistPath, *n, *minTermFreq, explicit)
	if err != nil {
		log.Fatal(err)
	}

	// The pipeline makes two passes, so the source is acquired twice.
	// Stdin cannot be re-read; buffer it up front in that case.
	acquire := func() (source.Lines, func()) {
		if *input == "-" {
			lines := readAll(os.Stdin)
			return wrap(source.FromSlice(lines), *stripHTML), func() {}
		}
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		return wrap(source.FromReader(f), *stripHTML), func() { f.Close() }
	}

	lines, release := acquire()
	vocabulary, err := prep.BuildVocabulary(lines, opts)
	release()
	if err != nil {
		log.Fatalf("build vocabulary: %v", err)
	}
	log.Printf("[corpus-build] vocabulary built: %s", vocabulary)

	lines, release = acquire()
	corpus, err := prep.BuildCorpus(lines, vocabulary, opts)
	release()
	if err != nil {
		log.Fatalf("build corpus: %v", err)
	}
	log.Printf("[corpus-build] corpus built: %d docs", len(corpus))

	if *dbPath != "" {
		ctx := context.Background()
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer st.Close()
		if err := st.SaveVocabulary(ctx, vocabulary); err != nil {
			log.Fatalf("save vocabulary: %v", err)
		}
		if err := st.SaveCorpus(ctx, corpus); err != nil {
			log.Fatalf("save corpus: %v", err)
		}
		log.Printf("[corpus-build] persisted to %s", *dbPath)
	}

	out := summary{
		Docs:      len(corpus),
		VocabSize: vocabulary.Len(),
	}
	for _, doc := range corpus {
		if len(doc) > 0 {
			out.NonEmpty++
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode summary: %v", err)
	}
}

// resolveOptions merges the optional YAML config with command-line flags.
// Config values apply only where the corresponding flag was not passed
// explicitly; the --stoplist flag likewise shadows the config's stoplist.
func resolveOptions(cfgPath, stoplistPath string, n, minTermFreq int, explicit map[string]bool) (prep.Options, error) {
	opts := prep.Options{N: n, MinTermFreq: minTermFreq}

	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return opts, fmt.Errorf("load config: %w", err)
		}
		if !explicit["n"] {
			opts.N = cfg.Ngram.N
		}
		if !explicit["min-term-freq"] {
			opts.MinTermFreq = cfg.MinTermFreq
		}
		opts.PadLeft = cfg.Ngram.PadLeft
		opts.PadRight = cfg.Ngram.PadRight
		opts.LeftPad = cfg.Ngram.LeftPad
		opts.RightPad = cfg.Ngram.RightPad

		if stoplistPath == "" {
			switch {
			case cfg.Stoplist.Path != "":
				sl, err := config.LoadStoplist(cfg.Stoplist.Path)
				if err != nil {
					return opts, fmt.Errorf("load stoplist: %w", err)
				}
				opts.Stopwords = sl.Terms
			case len(cfg.Stoplist.Terms) > 0:
				opts.Stopwords = cfg.Stoplist.Terms
			}
		}
	}

	if stoplistPath != "" {
		sl, err := config.LoadStoplist(stoplistPath)
		if err != nil {
			return opts, fmt.Errorf("load stoplist: %w", err)
		}
		opts.Stopwords = sl.Terms
	}

	return opts, nil
}

func wrap(lines source.Lines, stripHTML bool) source.Lines {
	if stripHTML {
		return source.FromHTML(lines)
	}
	return lines
}

func readAll(f *os.File) []string {
	var lines []string
	src := source.FromReader(f)
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	if err := src.Err(); err != nil {
		log.Fatal(fmt.Errorf("read stdin: %w", err))
	}
	return lines
}
