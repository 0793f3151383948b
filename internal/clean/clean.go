// Package clean normalizes text pulled out of PDF content streams before it is
// handed to the annotator.
package clean

import (
	"strings"
	"unicode"
)

// Clean collapses whitespace runs to a single space, removes isolated numbers
// and trims the result. "42" is removed, "v2" and "42nd" are not.
func Clean(text string) string {
	text = collapse(text)
	text = dropNumbers(text)
	// dropping a number can leave "a  b" behind
	return collapse(text)
}

// collapse joins whitespace separated fields with single spaces, which also trims.
func collapse(text string) string {
	return strings.Join(strings.FieldsFunc(text, isSpace), " ")
}

// isSpace also counts the file, group, record and unit separators as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= '\x1c' && r <= '\x1f'
}

// dropNumbers removes every maximal digit run bounded on both sides by a
// non-word rune or an edge of the string.
func dropNumbers(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		if !unicode.IsDigit(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		isolated := (i == 0 || !isWord(runes[i-1])) && (j == len(runes) || !isWord(runes[j]))
		if !isolated {
			b.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return b.String()
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
