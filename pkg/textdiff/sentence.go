package textdiff

import (
	"regexp"
	"strings"
)

// Sentence is one terminal-punctuation-bounded segment of a document,
// carrying both its raw tokens and their normalized comparison forms.
// Immutable after creation.
type Sentence struct {
	Raw             string
	Normalized      string
	Words           []string
	NormalizedWords []string
}

// sentenceBoundary matches a run of terminal punctuation followed by
// whitespace. The punctuation stays with the preceding segment.
var sentenceBoundary = regexp.MustCompile(`([.!?]+)\s+`)

// SplitSentences splits text into sentences on terminal punctuation
// followed by whitespace. Pure-whitespace segments are discarded. Text
// with no terminal punctuation yields exactly one sentence.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence
	start := 0
	for _, loc := range sentenceBoundary.FindAllStringSubmatchIndex(text, -1) {
		// loc[3] is the end of the punctuation group; the whitespace
		// after it is consumed, not kept.
		if s, ok := newSentence(text[start:loc[3]]); ok {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s, ok := newSentence(text[start:]); ok {
		sentences = append(sentences, s)
	}
	return sentences
}

func newSentence(segment string) (Sentence, bool) {
	if strings.TrimSpace(segment) == "" {
		return Sentence{}, false
	}
	words := strings.Fields(segment)
	normalized := make([]string, len(words))
	for i, w := range words {
		normalized[i] = Normalize(w)
	}
	return Sentence{
		Raw:             segment,
		Normalized:      Normalize(segment),
		Words:           words,
		NormalizedWords: normalized,
	}, true
}
