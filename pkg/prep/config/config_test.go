package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeFile(t, "prep.yaml", `
ngram:
  n: 2
  pad_left: true
  left_pad: "<s>"
min_term_freq: 1
stoplist:
  terms: [foo, bar]
report:
  sort_by: count
  top: 5
  pdf: out.pdf
  title: test corpus
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ngram.N != 2 || !cfg.Ngram.PadLeft || cfg.Ngram.LeftPad != "<s>" {
		t.Errorf("unexpected ngram config: %+v", cfg.Ngram)
	}
	if cfg.MinTermFreq != 1 {
		t.Errorf("expected min_term_freq 1, got %d", cfg.MinTermFreq)
	}
	if len(cfg.Stoplist.Terms) != 2 {
		t.Errorf("expected 2 stoplist terms, got %v", cfg.Stoplist.Terms)
	}
	if cfg.Report.SortBy != "count" || cfg.Report.Top != 5 {
		t.Errorf("unexpected report config: %+v", cfg.Report)
	}
}

func TestLoadRejectsUnknownSortMode(t *testing.T) {
	path := writeFile(t, "prep.yaml", `
report:
  sort_by: tfidf
`)

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestBuildWithInlineStoplist(t *testing.T) {
	cfg := &Config{Stoplist: Stoplist{Terms: []string{"foo"}}}

	comp, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := comp.Tokenizer.Words("foo bar"); len(got) != 1 || got[0] != "bar" {
		t.Errorf("inline stoplist not applied: %v", got)
	}
}

func TestBuildWithStoplistFile(t *testing.T) {
	slPath := writeFile(t, "stoplist.yaml", "terms: [alpha, beta]\n")
	cfg := &Config{Stoplist: Stoplist{Path: slPath}}

	comp, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := comp.Tokenizer.Words("alpha gamma"); len(got) != 1 || got[0] != "gamma" {
		t.Errorf("file stoplist not applied: %v", got)
	}
}

func TestBuildDefaultsToEnglishStopwords(t *testing.T) {
	cfg := &Config{}

	comp, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := comp.Tokenizer.Words("the fox"); len(got) != 1 || got[0] != "fox" {
		t.Errorf("default English stoplist not applied: %v", got)
	}
}
