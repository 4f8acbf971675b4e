package agent

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultLocation = "London"
	DefaultTopic    = "general"
)

// ExtractLocation returns the single token after the first "in" or "for", capitalized.
// Only one token is taken, so "weather in new york" yields "New".
func ExtractLocation(text string) string {
	if next, ok := tokenAfter(text, "in", "for"); ok {
		return capitalize(next)
	}
	return DefaultLocation
}

// ExtractTopic returns the token after the first "about" or "on", unchanged.
func ExtractTopic(text string) string {
	if next, ok := tokenAfter(text, "about", "on"); ok {
		return next
	}
	return DefaultTopic
}

func tokenAfter(text string, markers ...string) (string, bool) {
	words := strings.Fields(text)
	for i, w := range words {
		if i+1 >= len(words) {
			break
		}
		for _, m := range markers {
			if w == m {
				return words[i+1], true
			}
		}
	}
	return "", false
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError && size <= 1 {
		return word
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
