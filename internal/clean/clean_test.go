package clean

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n\r ", ""},
		{"collapse and drop", "Hello   world\n\n42 times", "Hello world times"},
		{"keep mixed tokens", "v2 of the 42nd draft", "v2 of the 42nd draft"},
		{"number between punctuation", "page (12) of 30.", "page () of ."},
		{"decimal", "pi is 3.14", "pi is ."},
		{"underscore is a word rune", "id_7 and 7_x", "id_7 and 7_x"},
		{"leading and trailing numbers", "1 two 3", "two"},
		{"non-ascii letters bound numbers", "é42 stays", "é42 stays"},
		{"separator controls", "a\x1cb\x1d\x1ec\x1f", "a b c"},
		{"unicode spaces", "a\u00a0\u2003b", "a b"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Clean(c.in))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello   world\n\n42 times",
		"1 2 3 4",
		"a 1 b 2 c",
		"3.4x and x4.3",
		"  v2\tv3  1999 ",
		"(1)(2)[3]",
		"Überschrift 12\n\n\nTeil 2b",
		"x\x1c7\x1fy",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}

func TestCleanLeavesNoDoubleWhitespaceOrIsolatedNumbers(t *testing.T) {
	inputs := []string{
		"a 42 b",
		"x\n\n\n1\n\ny",
		"12 34 56 word 78",
		"start 9",
	}
	for _, in := range inputs {
		out := Clean(in)
		assert.False(t, strings.Contains(out, "  "), "double space in %q", out)
		assert.Equal(t, strings.TrimSpace(out), out)
		for _, field := range strings.FieldsFunc(out, func(r rune) bool { return !isWord(r) }) {
			assert.False(t, isAllDigits(field), "isolated number %q in %q", field, out)
		}
	}
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
