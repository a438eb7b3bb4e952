package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// wordPattern matches one word: a run of Unicode letters, marks and numbers.
var wordPattern = regexp.MustCompile(`[\p{L}\p{M}\p{N}]+`)

// WordSpan is a word located in a text by byte offsets [Start, End).
type WordSpan struct {
	Start int
	End   int
	Word  string
}

// Tokenize returns the positioned words of text in order of appearance.
func Tokenize(text string) []WordSpan {
	locs := wordPattern.FindAllStringIndex(text, -1)
	spans := make([]WordSpan, len(locs))
	for i, loc := range locs {
		spans[i] = WordSpan{Start: loc[0], End: loc[1], Word: text[loc[0]:loc[1]]}
	}
	return spans
}

// WordKey is the comparison form of a word. Sindhi letters can be typed as
// precomposed or combining sequences, so words are compared in NFC.
func WordKey(word string) string {
	return norm.NFC.String(word)
}

// DistinctWords returns the distinct words of text (by WordKey) in order of
// first appearance, in NFC form.
func DistinctWords(text string) []string {
	spans := Tokenize(text)
	seen := make(map[string]struct{}, len(spans))
	words := make([]string, 0, len(spans))
	for _, s := range spans {
		key := WordKey(s.Word)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, key)
	}
	return words
}

// ReplaceWord substitutes every whole-word occurrence of word in text with
// replacement and returns the new text and the number of substitutions.
// Occurrences inside longer words are left untouched.
func ReplaceWord(text, word, replacement string) (string, int) {
	key := WordKey(word)
	if key == "" {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))
	last, n := 0, 0
	for _, s := range Tokenize(text) {
		if WordKey(s.Word) != key {
			continue
		}
		b.WriteString(text[last:s.Start])
		b.WriteString(replacement)
		last = s.End
		n++
	}
	if n == 0 {
		return text, 0
	}
	b.WriteString(text[last:])
	return b.String(), n
}
