package chat

import "strings"

// minTokenLen is the precision/recall cutoff for free-text matching:
// tokens this short ("a", "the", "for") match almost everything.
const minTokenLen = 3

// Normalize lower-cases and trims a raw question.
func Normalize(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

// Tokens splits a normalized question on whitespace and keeps only tokens
// longer than minTokenLen. An empty question yields an empty list; the
// caller treats that as "no question provided".
func Tokens(normalized string) []string {
	tokens := []string{}
	for _, word := range strings.Fields(normalized) {
		if len(word) > minTokenLen {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
