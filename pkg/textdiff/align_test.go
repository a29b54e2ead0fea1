package textdiff

import "testing"

func TestMatchSetMonotonicity(t *testing.T) {
	original := SplitSentences("Shared start here. Unique old middle part. Shared ending words.")
	rewritten := SplitSentences("Shared start here. Unique new middle part. Shared ending words.")

	matchedOrig := matchSet{}
	matchedRew := matchSet{}

	alignPass(original, rewritten, matchedOrig, matchedRew)
	afterPass1Orig, afterPass1Rew := len(matchedOrig), len(matchedRew)

	alignPass(rewritten, original, matchedRew, matchedOrig)
	if len(matchedOrig) < afterPass1Orig || len(matchedRew) < afterPass1Rew {
		t.Fatal("match sets shrank between passes")
	}

	// Both passes are idempotent: a position is added at most once and
	// never removed, so re-running changes nothing.
	afterPass2Orig, afterPass2Rew := len(matchedOrig), len(matchedRew)
	alignPass(original, rewritten, matchedOrig, matchedRew)
	alignPass(rewritten, original, matchedRew, matchedOrig)
	if len(matchedOrig) != afterPass2Orig || len(matchedRew) != afterPass2Rew {
		t.Fatal("re-running alignment mutated the match sets")
	}
}

func TestFindInWindowScanOrder(t *testing.T) {
	// Ties between equal candidates resolve to the first occurrence in
	// sentence-then-word scan order.
	dst := SplitSentences("zero token here. token again there.")
	hit, ok := findInWindow(dst, 0, "token", matchSet{})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit != (pos{0, 1}) {
		t.Fatalf("hit = %+v, want first occurrence at {0 1}", hit)
	}

	// An already-matched candidate is skipped in favor of the next one.
	taken := matchSet{}
	taken.add(pos{0, 1})
	hit, ok = findInWindow(dst, 0, "token", taken)
	if !ok {
		t.Fatal("expected a hit past the taken position")
	}
	if hit != (pos{1, 0}) {
		t.Fatalf("hit = %+v, want {1 0}", hit)
	}
}

func TestFindInWindowBounds(t *testing.T) {
	dst := SplitSentences("a one. b two. c three. d four.")
	// Window is the cursor sentence plus two lookahead sentences; the
	// fourth sentence is out of reach from cursor 0.
	if _, ok := findInWindow(dst, 0, "four.", matchSet{}); ok {
		t.Fatal("word beyond the lookahead window must not be found")
	}
	if _, ok := findInWindow(dst, 1, "four.", matchSet{}); !ok {
		t.Fatal("word inside the lookahead window should be found")
	}
	// A cursor past the end of the document finds nothing.
	if _, ok := findInWindow(dst, len(dst), "one.", matchSet{}); ok {
		t.Fatal("out-of-bounds cursor must not match")
	}
}

func TestExtendRunStopsAtBoundaries(t *testing.T) {
	src := SplitSentences("alpha beta gamma delta")
	dst := SplitSentences("alpha beta omega delta")

	matchedSrc := matchSet{}
	matchedDst := matchSet{}
	matchedSrc.add(pos{0, 0})
	matchedDst.add(pos{0, 0})
	extendRun(src, dst, pos{0, 0}, pos{0, 0}, matchedSrc, matchedDst)

	// beta extends the run; gamma/omega mismatch stops it, so delta is
	// not reached even though it is equal on both sides.
	if !matchedSrc.has(pos{0, 1}) || !matchedDst.has(pos{0, 1}) {
		t.Fatal("equal neighbor should have been absorbed into the run")
	}
	if matchedSrc.has(pos{0, 2}) || matchedSrc.has(pos{0, 3}) {
		t.Fatal("extension must stop at the first mismatch")
	}
}
