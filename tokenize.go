package crawldex

import (
	"strings"
	"unicode/utf8"
)

// punctuation is the fixed ASCII punctuation set removed by Tokenize.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokenize lowercases text, deletes ASCII punctuation and splits the result
// on whitespace. Punctuation is removed rather than replaced, so "don't"
// becomes "dont". The result is never nil.
//
// Indexed page text and search queries both go through Tokenize; a query
// term only matches when it normalizes to the same token as the page word.
func Tokenize(text string) []string {
	tokens := make([]string, 0)
	if text == "" {
		return tokens
	}

	cleaned := strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, strings.ToLower(text))

	return append(tokens, strings.Fields(cleaned)...)
}

// CountWords returns the number of occurrences of each token.
func CountWords(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}
