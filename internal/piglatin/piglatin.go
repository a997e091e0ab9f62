// Package piglatin turns English words into pig latin.
//
// Words starting with a vowel get "yay" appended ("apple" -> "appleyay"). Otherwise the
// leading consonants move to the end followed by "ay" ("terminates" -> "erminatestay").
package piglatin

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Word translates a single word. A word without vowels just gets "ay" appended.
func Word(w string) string {
	if w == "" {
		return ""
	}

	first, _ := utf8.DecodeRuneInString(w)
	if isVowel(first) {
		return w + "yay"
	}

	idx := strings.IndexFunc(w, isVowel)
	if idx < 0 {
		return w + "ay"
	}
	return w[idx:] + w[:idx] + "ay"
}

// Translate translates every whitespace separated word in text and joins them with single spaces.
func Translate(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		words[i] = Word(w)
	}
	return strings.Join(words, " ")
}
