package textdiff

import (
	"regexp"
	"strings"
)

// markdownRules strips inline and line-level markup down to visible text.
// Order matters: bold before italic so `**x**` is not half-eaten by the
// single-asterisk rule, links/images before heading so labels survive.
var markdownRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "$1"},           // bold
	{regexp.MustCompile(`__(.*?)__`), "$1"},               // bold (underscore)
	{regexp.MustCompile(`\*(.*?)\*`), "$1"},               // italic
	{regexp.MustCompile(`_(.*?)_`), "$1"},                 // italic (underscore)
	{regexp.MustCompile(`~~(.*?)~~`), "$1"},               // strikethrough
	{regexp.MustCompile("`([^`]*)`"), "$1"},               // inline code
	{regexp.MustCompile(`(?m)^\s{0,3}>\s?`), ""},          // blockquote
	{regexp.MustCompile(`(?m)^\s{0,3}[-*+]\s+`), ""},      // unordered list
	{regexp.MustCompile(`(?m)^\s{0,3}\d+[.)]\s+`), ""},    // ordered list
	{regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`), "$1"}, // link/image, keep label
	{regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s+`), ""},     // heading
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// StripMarkdown removes markdown syntax, keeping only the visible text.
// Link and image URLs are dropped in favor of their labels.
func StripMarkdown(text string) string {
	for _, rule := range markdownRules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}
	return text
}

// Normalize produces the canonical comparison form of a word or sentence:
// markdown stripped, lowercased, whitespace runs collapsed to single
// spaces, trimmed. Total over any input; Normalize("") == "".
func Normalize(text string) string {
	text = StripMarkdown(text)
	text = strings.ToLower(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
