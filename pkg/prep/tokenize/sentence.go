package tokenize

import "strings"

// sentence terminators; a run of them closes the current sentence.
const terminators = ".!?"

// Sentences splits one raw line into sentences. Newlines are removed first
// (a document is a single line, but embedded escapes show up in scraped
// data). The splitter is rule-based: a run of '.', '!' or '?' ends a
// sentence. Abbreviation handling is deliberately not attempted.
func Sentences(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", ""))
	if text == "" {
		return nil
	}

	var sents []string
	var current strings.Builder
	inTerminator := false

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sents = append(sents, s)
		}
		current.Reset()
	}

	for _, r := range text {
		if strings.ContainsRune(terminators, r) {
			current.WriteRune(r)
			inTerminator = true
			continue
		}
		if inTerminator {
			flush()
			inTerminator = false
		}
		current.WriteRune(r)
	}
	flush()

	return sents
}
