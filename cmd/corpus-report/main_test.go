package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRebuildFromRawText(t *testing.T) {
	input := writeFile(t, "docs.txt", "quick fox jumps\nquick dog sleeps\n")

	opts := prep.Options{N: 1, MinTermFreq: 1, Logger: log.New(io.Discard, "", 0)}
	vocabulary, corpus, err := rebuild(input, false, opts)
	if err != nil {
		t.Fatal(err)
	}

	// "fox", "jumps", "dog", "sleeps" each appear in one doc and are
	// pruned at min-term-freq 1; only "quick" survives.
	if vocabulary.Len() != 1 {
		t.Fatalf("expected 1 surviving term, got %d: %v", vocabulary.Len(), vocabulary.Tokens())
	}
	if _, ok := vocabulary.ID("quick"); !ok {
		t.Error("expected quick in the vocabulary")
	}
	if len(corpus) != 2 {
		t.Fatalf("expected 2 corpus docs, got %d", len(corpus))
	}
	for i, doc := range corpus {
		if len(doc) != 1 || doc[0].Count != 1 {
			t.Errorf("doc %d: expected a single quick entry, got %v", i, doc)
		}
	}
}

func TestRebuildStripsHTML(t *testing.T) {
	input := writeFile(t, "docs.html", "<p>quick <b>fox</b></p>\n<div>quick dog</div>\n")

	opts := prep.Options{N: 1, MinTermFreq: 1, Logger: log.New(io.Discard, "", 0)}
	vocabulary, corpus, err := rebuild(input, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := vocabulary.ID("quick"); !ok {
		t.Errorf("expected quick after markup stripping, got %v", vocabulary.Tokens())
	}
	if _, ok := vocabulary.ID("p"); ok {
		t.Error("tag names must not leak into the vocabulary")
	}
	if len(corpus) != 2 {
		t.Errorf("expected 2 corpus docs, got %d", len(corpus))
	}
}

func TestRebuildMissingFile(t *testing.T) {
	if _, _, err := rebuild(filepath.Join(t.TempDir(), "absent.txt"), false, prep.Options{}); err == nil {
		t.Error("expected error for missing input file")
	}
}
