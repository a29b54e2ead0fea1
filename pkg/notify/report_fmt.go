package notify

import (
	"fmt"
	"strings"

	"github.com/prosewatch/prosewatch/pkg/textdiff"
)

// FormatReport renders a rewrite diff into a notification message:
// removed phrases prefixed with "-", added phrases with "+", in
// document order.
func FormatReport(docName, docURL string, result textdiff.Result) Message {
	var sb strings.Builder
	sb.WriteString(result.Summary())
	sb.WriteString("\n")

	if len(result.Removals) > 0 {
		sb.WriteString("\nRemoved:\n")
		for _, phrase := range result.Removals {
			fmt.Fprintf(&sb, "  - %s\n", phrase)
		}
	}
	if len(result.Additions) > 0 {
		sb.WriteString("\nAdded:\n")
		for _, phrase := range result.Additions {
			fmt.Fprintf(&sb, "  + %s\n", phrase)
		}
	}

	return Message{
		Title:  fmt.Sprintf("Rewrite drift: %s", docName),
		Body:   sb.String(),
		Format: "plain",
		URL:    docURL,
	}
}
