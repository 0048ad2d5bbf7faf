package prep

import (
	"bytes"
	"errors"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/bow"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/report"
	"github.com/meowoodie/Collaborative-Deep-Learning/pkg/prep/source"
)

var rawLines = []string{
	"The quick fox jumps over the dog.",
	"The quick dog sleeps.",
	"A lazy dog dreams.",
}

func quiet() *log.Logger {
	return log.New(&bytes.Buffer{}, "", 0)
}

func TestPipelineEndToEnd(t *testing.T) {
	opts := Options{N: 1, MinTermFreq: 1, Logger: quiet()}

	// Pass one: vocabulary. quick and dog appear in >= 2 documents;
	// everything else is a singleton and gets pruned.
	v, err := BuildVocabulary(source.FromSlice(rawLines), opts)
	if err != nil {
		t.Fatalf("build vocabulary: %v", err)
	}
	if !reflect.DeepEqual(v.Tokens(), []string{"quick", "dog"}) {
		t.Fatalf("unexpected vocabulary: %v", v.Tokens())
	}

	// Pass two: corpus over a fresh source.
	c, err := BuildCorpus(source.FromSlice(rawLines), v, opts)
	if err != nil {
		t.Fatalf("build corpus: %v", err)
	}
	if len(c) != len(rawLines) {
		t.Fatalf("expected %d docs, got %d", len(rawLines), len(c))
	}
	expected := bow.Corpus{
		{{ID: 0, Count: 1}, {ID: 1, Count: 1}},
		{{ID: 0, Count: 1}, {ID: 1, Count: 1}},
		{{ID: 1, Count: 1}},
	}
	if !reflect.DeepEqual(c, expected) {
		t.Errorf("unexpected corpus: %v", c)
	}

	// Diagnostics over the built corpus.
	rep, err := CorpusHistogram(c, v, report.Options{SortBy: report.SortByCount})
	if err != nil {
		t.Fatalf("histogram: %v", err)
	}
	if len(rep.Top) != 2 {
		t.Fatalf("expected 2 ranked terms, got %d", len(rep.Top))
	}
	if rep.Top[0].Rank != 3 || rep.Top[0].Term != "dog" {
		t.Errorf("expected dog ranked first with count 3, got %+v", rep.Top[0])
	}
}

func TestSubVocabularyLogsRemovals(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Logger: log.New(&buf, "", 0)}

	v, err := BuildVocabulary(source.FromSlice(rawLines), Options{Logger: quiet()})
	if err != nil {
		t.Fatalf("build vocabulary: %v", err)
	}

	sub := SubVocabulary(v, []string{"quick", "dog"}, opts)
	if sub.Len() != 2 {
		t.Errorf("expected 2 surviving terms, got %d", sub.Len())
	}
	if !strings.Contains(buf.String(), "tokens have been removed") {
		t.Errorf("expected removal notice, got %q", buf.String())
	}
}

func TestMergeDocumentsFacade(t *testing.T) {
	c := bow.Corpus{
		{{ID: 0, Count: 1}},
		{{ID: 0, Count: 2}},
	}
	ids, merged, err := MergeDocuments(c, []int{4, 4})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(ids) != 1 || ids[0] != 4 {
		t.Errorf("expected single merged id 4, got %v", ids)
	}
	if !reflect.DeepEqual(merged[0], bow.Document{{ID: 0, Count: 3}}) {
		t.Errorf("expected summed row, got %v", merged[0])
	}
}

// failingReader yields one chunk, then a read error.
type failingReader struct {
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, "<p>quick fox</p>"), nil
}

func TestBuildVocabularySurfacesReadErrorThroughHTML(t *testing.T) {
	readErr := errors.New("disk read failed")
	opts := Options{Logger: quiet()}

	// Bare reader: the error must reach the caller.
	if _, err := BuildVocabulary(source.FromReader(&failingReader{err: readErr}), opts); !errors.Is(err, readErr) {
		t.Errorf("expected read error from bare reader, got %v", err)
	}

	// HTML-wrapped reader: same failure, same contract. A truncated
	// vocabulary with a nil error would be silent data loss.
	wrapped := source.FromHTML(source.FromReader(&failingReader{err: readErr}))
	if _, err := BuildVocabulary(wrapped, opts); !errors.Is(err, readErr) {
		t.Errorf("expected read error through HTML wrapper, got %v", err)
	}
}

func TestBuildVocabularyDefaultStopwords(t *testing.T) {
	v, err := BuildVocabulary(source.FromSlice([]string{"the fox", "the fox"}), Options{Logger: quiet()})
	if err != nil {
		t.Fatalf("build vocabulary: %v", err)
	}
	if _, ok := v.ID("the"); ok {
		t.Error("default stopword list should drop 'the'")
	}
}
