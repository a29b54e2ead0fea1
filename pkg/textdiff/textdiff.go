// Package textdiff computes a structural word-phrase diff between two
// versions of a document: an original and a rewritten rendering of the
// same content. The output is two ordered phrase lists — text present
// only in the original (removals) and text present only in the rewrite
// (additions).
//
// Alignment is heuristic and greedy: whole sentences are matched first
// by normalized equality, then remaining words are matched within a
// small forward-only lookahead window, with greedy run extension so
// moved-but-intact phrases stay whole. It is not a minimal edit script
// and does not diff below word granularity.
package textdiff

import "fmt"

// Result holds the phrase-level outcome of comparing two versions.
type Result struct {
	HasChanges bool     `json:"has_changes"`
	Additions  []string `json:"additions"`
	Removals   []string `json:"removals"`
	Stats      Stats    `json:"stats"`
}

// Stats holds phrase counts per direction.
type Stats struct {
	Additions int `json:"additions"`
	Removals  int `json:"removals"`
}

// Diff compares an original document with its rewritten version and
// returns the unmatched phrases on each side, in document order. It is
// a pure function of its inputs; all working state is local to the
// call, so concurrent use is safe. Empty input on either side is valid
// and yields a one-sided result.
func Diff(original, rewritten string) Result {
	origSentences := SplitSentences(original)
	rewSentences := SplitSentences(rewritten)

	matchedOrig, matchedRew := align(origSentences, rewSentences)

	removals := collect(origSentences, matchedOrig)
	additions := collect(rewSentences, matchedRew)

	return Result{
		HasChanges: len(additions) > 0 || len(removals) > 0,
		Additions:  additions,
		Removals:   removals,
		Stats: Stats{
			Additions: len(additions),
			Removals:  len(removals),
		},
	}
}

// Summary returns a human-readable one-line summary of the result.
func (r Result) Summary() string {
	if !r.HasChanges {
		return "No changes detected"
	}
	return fmt.Sprintf("%d added phrases, %d removed phrases", r.Stats.Additions, r.Stats.Removals)
}
