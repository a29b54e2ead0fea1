package textdiff

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "Hello World", "hello world"},
		{"whitespace collapse", "a  b\t c\n\nd", "a b c d"},
		{"trim", "  padded  ", "padded"},
		{"bold", "a **strong** word", "a strong word"},
		{"bold underscore", "a __strong__ word", "a strong word"},
		{"italic", "an *emphasized* word", "an emphasized word"},
		{"italic underscore", "an _emphasized_ word", "an emphasized word"},
		{"strikethrough", "a ~~gone~~ word", "a gone word"},
		{"inline code", "run `go build` now", "run go build now"},
		{"link keeps label", "see [the docs](https://example.com) here", "see the docs here"},
		{"image keeps alt", "an ![alt text](img.png) inline", "an alt text inline"},
		{"heading", "## Section Title", "section title"},
		{"blockquote", "> quoted line", "quoted line"},
		{"unordered list", "- item one", "item one"},
		{"ordered list", "1. item one", "item one"},
		{"nested emphasis", "**_both_**", "both"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeKeepsPunctuation(t *testing.T) {
	// Sentence punctuation is not markup and must survive, since
	// normalized word equality compares punctuation-inclusive tokens.
	if got := Normalize("Jumps."); got != "jumps." {
		t.Fatalf("got %q", got)
	}
	if got := Normalize("word,"); got != "word," {
		t.Fatalf("got %q", got)
	}
}

func TestStripMarkdownMultiline(t *testing.T) {
	in := "# Title\n\n> A quote.\n\n- first\n- second\n\nPlain **text**."
	want := "Title\n\nA quote.\n\nfirst\nsecond\n\nPlain text."
	if got := StripMarkdown(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
