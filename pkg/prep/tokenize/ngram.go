package tokenize

import "strings"

// GramOptions controls n-gram expansion of a tokenized sentence.
type GramOptions struct {
	// N is the highest gram order to produce; orders 1..N are all emitted.
	// Values below 1 are treated as 1.
	N int
	// PadLeft/PadRight prepend/append n-1 pad symbols for each order n,
	// so boundary words participate in as many grams as interior words.
	PadLeft  bool
	PadRight bool
	// LeftPad/RightPad are the pad symbols used when padding is enabled.
	LeftPad  string
	RightPad string
}

// order returns the effective highest gram order.
func (o GramOptions) order() int {
	if o.N < 1 {
		return 1
	}
	return o.N
}

// Grams expands a sentence's words into composite gram tokens. For each
// order n from 1 to N, every sliding window of n consecutive words is
// joined with '_' into one token; the per-order results are concatenated
// in order. An empty word list yields grams only when padding supplies
// the symbols.
func Grams(words []string, opts GramOptions) []string {
	var out []string
	for n := 1; n <= opts.order(); n++ {
		out = append(out, grams(words, n, opts)...)
	}
	return out
}

// grams computes the order-n sliding windows over the (padded) sequence.
func grams(words []string, n int, opts GramOptions) []string {
	seq := words
	if opts.PadLeft || opts.PadRight {
		seq = make([]string, 0, len(words)+2*(n-1))
		if opts.PadLeft {
			for i := 0; i < n-1; i++ {
				seq = append(seq, opts.LeftPad)
			}
		}
		seq = append(seq, words...)
		if opts.PadRight {
			for i := 0; i < n-1; i++ {
				seq = append(seq, opts.RightPad)
			}
		}
	}

	if len(seq) < n {
		return nil
	}
	out := make([]string, 0, len(seq)-n+1)
	for i := 0; i+n <= len(seq); i++ {
		out = append(out, strings.Join(seq[i:i+n], "_"))
	}
	return out
}
