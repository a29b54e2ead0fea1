package textdiff

// pos identifies one word occurrence as (sentence index, word index)
// within one document side's sentence sequence.
type pos struct {
	sent int
	word int
}

// matchSet records word positions that have been explained by an
// occurrence on the other side. Positions are only ever added, never
// removed; adds are idempotent.
type matchSet map[pos]struct{}

func (m matchSet) has(p pos) bool { _, ok := m[p]; return ok }

func (m matchSet) add(p pos) { m[p] = struct{}{} }

// lookahead is how many sentences past the cursor the window search may
// scan on the opposite side. Phrases moved further than this surface as
// a removal/addition pair; that is an accepted limitation, not a bug.
const lookahead = 2

// align runs both directional passes over the two sentence sequences
// and returns the matched positions per side. Pass 2 mirrors Pass 1
// with the roles swapped and an independent cursor; both passes share
// the same match sets, so sentence matches found while walking the
// original are already in place when the rewritten side is walked. The
// passes are therefore not perfectly symmetric, which is deliberate.
func align(original, rewritten []Sentence) (matchedOrig, matchedRew matchSet) {
	matchedOrig = matchSet{}
	matchedRew = matchSet{}
	alignPass(original, rewritten, matchedOrig, matchedRew)
	alignPass(rewritten, original, matchedRew, matchedOrig)
	return matchedOrig, matchedRew
}

// alignPass walks src sentences in order with a forward-only cursor
// into dst. The cursor advances only on whole-sentence matches and
// never regresses; word matches are never undone.
func alignPass(src, dst []Sentence, matchedSrc, matchedDst matchSet) {
	cursor := 0
	for i := range src {
		// Cheapest case: the sentence survived the rewrite untouched.
		if cursor < len(dst) && src[i].Normalized == dst[cursor].Normalized {
			markSentence(matchedSrc, i, len(src[i].Words))
			markSentence(matchedDst, cursor, len(dst[cursor].Words))
			cursor++
			continue
		}

		for j, word := range src[i].NormalizedWords {
			p := pos{i, j}
			if matchedSrc.has(p) {
				continue
			}
			hit, ok := findInWindow(dst, cursor, word, matchedDst)
			if !ok {
				continue
			}
			matchedSrc.add(p)
			matchedDst.add(hit)
			extendRun(src, dst, p, hit, matchedSrc, matchedDst)
		}
	}
}

func markSentence(m matchSet, sent, words int) {
	for j := 0; j < words; j++ {
		m.add(pos{sent, j})
	}
}

// findInWindow scans dst sentences [cursor, cursor+lookahead] in
// sentence-then-word index order for the first unmatched word whose
// normalized form equals word. Ties go to the first occurrence in scan
// order; no frequency or proximity weighting.
func findInWindow(dst []Sentence, cursor int, word string, matched matchSet) (pos, bool) {
	for s := cursor; s <= cursor+lookahead && s < len(dst); s++ {
		for w, candidate := range dst[s].NormalizedWords {
			if candidate != word {
				continue
			}
			p := pos{s, w}
			if matched.has(p) {
				continue
			}
			return p, true
		}
	}
	return pos{}, false
}

// extendRun grows a fresh word match forward in lockstep on both sides
// so a moved-but-intact phrase stays one contiguous matched run instead
// of disconnected single-word matches. Extension stops at the first
// mismatch, already-matched position, or end of either word list; it
// never crosses a sentence boundary.
func extendRun(src, dst []Sentence, sp, dp pos, matchedSrc, matchedDst matchSet) {
	j, w := sp.word+1, dp.word+1
	for j < len(src[sp.sent].NormalizedWords) && w < len(dst[dp.sent].NormalizedWords) {
		a := pos{sp.sent, j}
		b := pos{dp.sent, w}
		if matchedSrc.has(a) || matchedDst.has(b) {
			return
		}
		if src[sp.sent].NormalizedWords[j] != dst[dp.sent].NormalizedWords[w] {
			return
		}
		matchedSrc.add(a)
		matchedDst.add(b)
		j++
		w++
	}
}
