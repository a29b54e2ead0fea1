package textdiff

import (
	"reflect"
	"strings"
	"testing"
)

func TestDiffIdentity(t *testing.T) {
	texts := []string{
		"",
		"single sentence no punctuation",
		"One. Two! Three?",
		"# Heading\n\nSome **bold** prose. A second sentence here.",
	}
	for _, text := range texts {
		r := Diff(text, text)
		if r.HasChanges {
			t.Fatalf("identity diff of %q reported changes: %+v", text, r)
		}
		if len(r.Additions) != 0 || len(r.Removals) != 0 {
			t.Fatalf("identity diff of %q not empty: %+v", text, r)
		}
	}
}

func TestDiffMarkdownAndWhitespaceInsensitive(t *testing.T) {
	original := "The quick fox jumps. It lands on grass."
	rewritten := "The  **quick** fox\njumps. It lands on _grass_."
	r := Diff(original, rewritten)
	if r.HasChanges {
		t.Fatalf("markup-only changes should not be reported: %+v", r)
	}
}

func TestDiffPureInsertion(t *testing.T) {
	r := Diff("A B C.", "A B C. D E F.")
	if len(r.Removals) != 0 {
		t.Fatalf("unexpected removals: %v", r.Removals)
	}
	if !reflect.DeepEqual(r.Additions, []string{"D E F."}) {
		t.Fatalf("additions = %v, want [D E F.]", r.Additions)
	}
	if r.Summary() != "1 added phrases, 0 removed phrases" {
		t.Fatalf("unexpected summary: %s", r.Summary())
	}
}

func TestDiffPureDeletion(t *testing.T) {
	r := Diff("A B C. D E F.", "A B C.")
	if len(r.Additions) != 0 {
		t.Fatalf("unexpected additions: %v", r.Additions)
	}
	if !reflect.DeepEqual(r.Removals, []string{"D E F."}) {
		t.Fatalf("removals = %v, want [D E F.]", r.Removals)
	}
}

func TestDiffWordSubstitution(t *testing.T) {
	r := Diff("The quick fox jumps.", "The quick dog jumps.")
	if !reflect.DeepEqual(r.Removals, []string{"fox"}) {
		t.Fatalf("removals = %v, want [fox]", r.Removals)
	}
	if !reflect.DeepEqual(r.Additions, []string{"dog"}) {
		t.Fatalf("additions = %v, want [dog]", r.Additions)
	}
	for _, phrase := range append(r.Additions, r.Removals...) {
		if strings.Contains(phrase, "quick") || strings.Contains(phrase, "jumps") {
			t.Fatalf("unchanged words leaked into the diff: %q", phrase)
		}
	}
}

func TestDiffEmptySides(t *testing.T) {
	r := Diff("", "Hello world. Second one.")
	if len(r.Removals) != 0 {
		t.Fatalf("unexpected removals: %v", r.Removals)
	}
	if !reflect.DeepEqual(r.Additions, []string{"Hello world.", "Second one."}) {
		t.Fatalf("additions = %v", r.Additions)
	}

	r = Diff("Hello world. Second one.", "")
	if len(r.Additions) != 0 {
		t.Fatalf("unexpected additions: %v", r.Additions)
	}
	if !reflect.DeepEqual(r.Removals, []string{"Hello world.", "Second one."}) {
		t.Fatalf("removals = %v", r.Removals)
	}

	if Diff("", "").HasChanges {
		t.Fatal("two empty documents must compare equal")
	}
}

func TestDiffReorderWithinWindow(t *testing.T) {
	// A sentence moved two positions later still falls inside the
	// lookahead window and must not produce a removal/addition pair.
	original := "Alpha beta gamma. One two three. Four five six."
	rewritten := "One two three. Four five six. Alpha beta gamma."
	r := Diff(original, rewritten)
	if r.HasChanges {
		t.Fatalf("move within window should be absorbed: %+v", r)
	}
}

func TestDiffMoveBeyondWindow(t *testing.T) {
	// A front-moved sentence displaces the forward-only cursor enough
	// that a later intact sentence falls out of every search window.
	// The spurious pair is the documented cost of bounded lookahead.
	original := "Alpha start. First lost sentence entirely unique. Bridge one b. Bridge two c. Bridge three d. Moved phrase payload."
	rewritten := "Alpha start. Moved phrase payload. Bridge one b. Bridge two c. Bridge three d."
	r := Diff(original, rewritten)
	wantRemovals := []string{"First lost sentence entirely unique.", "Bridge three d."}
	if !reflect.DeepEqual(r.Removals, wantRemovals) {
		t.Fatalf("removals = %v, want %v", r.Removals, wantRemovals)
	}
	if !reflect.DeepEqual(r.Additions, []string{"Bridge three d."}) {
		t.Fatalf("additions = %v, want [Bridge three d.]", r.Additions)
	}
}

func TestDiffPhraseGranularity(t *testing.T) {
	// Consecutive unmatched words coalesce into one phrase per run,
	// never spanning a sentence boundary.
	original := "Keep this part. Old tail here."
	rewritten := "Keep this part. New better tail here."
	r := Diff(original, rewritten)
	if !reflect.DeepEqual(r.Removals, []string{"Old"}) {
		t.Fatalf("removals = %v, want [Old]", r.Removals)
	}
	if !reflect.DeepEqual(r.Additions, []string{"New better"}) {
		t.Fatalf("additions = %v, want [New better]", r.Additions)
	}
}

func TestDiffOutputOrdering(t *testing.T) {
	original := "One apple here. Two banana there. Three cherry gone."
	rewritten := "One kiwi here. Two mango there. Three plum gone."
	r := Diff(original, rewritten)
	if !reflect.DeepEqual(r.Removals, []string{"apple", "banana", "cherry"}) {
		t.Fatalf("removals out of document order: %v", r.Removals)
	}
	if !reflect.DeepEqual(r.Additions, []string{"kiwi", "mango", "plum"}) {
		t.Fatalf("additions out of document order: %v", r.Additions)
	}
}
