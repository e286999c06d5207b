// Package completion implements the cloudsh completion engine: the
// completion-mode state machine, the candidate generators and the
// ranker that together decide, on every keystroke, what to offer.
package completion

import "strings"

// Candidate is one suggested completion. ReplaceLength tells the caller
// how many characters immediately before the cursor to delete before
// inserting Text; it never exceeds the length of the prefix being
// completed. DisplayMeta is a human description, with the [REQUIRED]
// marker convention consumed by the ranker.
type Candidate struct {
	Text          string
	ReplaceLength int
	DisplayMeta   string
}

// quoteValue wraps raw values containing internal whitespace in double
// quotes so they survive re-tokenization when inserted.
func quoteValue(value string) string {
	if len(strings.Fields(value)) > 1 {
		return `"` + value + `"`
	}
	return value
}
