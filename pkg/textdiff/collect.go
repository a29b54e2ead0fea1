package textdiff

import "strings"

// collect walks one side's sentences in order and coalesces consecutive
// unmatched words into phrases. A phrase never spans a sentence
// boundary; output preserves left-to-right order of appearance.
func collect(sentences []Sentence, matched matchSet) []string {
	var phrases []string
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		phrases = append(phrases, strings.TrimSpace(strings.Join(buf, " ")))
		buf = buf[:0]
	}

	for i, s := range sentences {
		for j, word := range s.Words {
			if matched.has(pos{i, j}) {
				flush()
				continue
			}
			buf = append(buf, word)
		}
		flush()
	}
	return phrases
}
