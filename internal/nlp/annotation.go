package nlp

import "unicode"

// Category is a coarse part-of-speech class.
type Category int

const (
	Other Category = iota
	Noun
	ProperNoun
	Adjective
	Verb
)

func (c Category) String() string {
	switch c {
	case Noun:
		return "NOUN"
	case ProperNoun:
		return "PROPN"
	case Adjective:
		return "ADJ"
	case Verb:
		return "VERB"
	}
	return "X"
}

// Content reports whether tokens of this category can become keywords.
func (c Category) Content() bool {
	return c == Noun || c == ProperNoun || c == Adjective || c == Verb
}

// Token is a single annotated token.
type Token struct {
	Text     string
	Lemma    string
	Category Category
	Punct    bool
}

// Sentence holds the surface text of a sentence and its tokens in order.
type Sentence struct {
	Text   string
	Tokens []Token
}

// Annotation is the read-only result of annotating a text.
type Annotation struct {
	Text      string
	Sentences []Sentence
}

// Tokens returns every token in document order.
func (a Annotation) Tokens() []Token {
	var toks []Token
	for _, s := range a.Sentences {
		toks = append(toks, s.Tokens...)
	}
	return toks
}

// WordCount is the number of tokens that are not punctuation.
func (a Annotation) WordCount() int {
	n := 0
	for _, s := range a.Sentences {
		for _, t := range s.Tokens {
			if !t.Punct {
				n++
			}
		}
	}
	return n
}

// categoryOf maps a Penn Treebank tag onto a coarse category.
func categoryOf(tag string) Category {
	switch tag {
	case "NN", "NNS":
		return Noun
	case "NNP", "NNPS":
		return ProperNoun
	case "JJ", "JJR", "JJS":
		return Adjective
	case "VB", "VBD", "VBG", "VBN", "VBP", "VBZ":
		return Verb
	}
	return Other
}

func isPunct(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
