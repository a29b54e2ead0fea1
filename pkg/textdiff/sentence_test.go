package textdiff

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First one. Second one! Third one?")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(got))
	}
	raws := []string{got[0].Raw, got[1].Raw, got[2].Raw}
	want := []string{"First one.", "Second one!", "Third one?"}
	if !reflect.DeepEqual(raws, want) {
		t.Fatalf("raw segments = %v, want %v", raws, want)
	}
}

func TestSplitSentencesNoTerminalPunctuation(t *testing.T) {
	got := SplitSentences("no punctuation at all")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(got))
	}
	if got[0].Raw != "no punctuation at all" {
		t.Fatalf("unexpected raw: %q", got[0].Raw)
	}
}

func TestSplitSentencesRepeatedPunctuation(t *testing.T) {
	got := SplitSentences("Wait!! Really?")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(got))
	}
	if got[0].Raw != "Wait!!" {
		t.Fatalf("punctuation run should stay with its segment, got %q", got[0].Raw)
	}
}

func TestSplitSentencesDiscardsBlankSegments(t *testing.T) {
	if got := SplitSentences(""); len(got) != 0 {
		t.Fatalf("expected no sentences for empty input, got %d", len(got))
	}
	if got := SplitSentences("   \n\t "); len(got) != 0 {
		t.Fatalf("expected no sentences for blank input, got %d", len(got))
	}
	// Trailing whitespace after the final boundary is not a sentence.
	if got := SplitSentences("Done.   "); len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(got))
	}
}

func TestSentenceWords(t *testing.T) {
	got := SplitSentences("The Quick, **brown** fox jumps.")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(got))
	}
	s := got[0]
	wantWords := []string{"The", "Quick,", "**brown**", "fox", "jumps."}
	if !reflect.DeepEqual(s.Words, wantWords) {
		t.Fatalf("words = %v, want %v", s.Words, wantWords)
	}
	wantNorm := []string{"the", "quick,", "brown", "fox", "jumps."}
	if !reflect.DeepEqual(s.NormalizedWords, wantNorm) {
		t.Fatalf("normalized words = %v, want %v", s.NormalizedWords, wantNorm)
	}
	if len(s.Words) != len(s.NormalizedWords) {
		t.Fatal("words and normalized words must have equal length")
	}
	if s.Normalized != "the quick, brown fox jumps." {
		t.Fatalf("normalized sentence = %q", s.Normalized)
	}
}
