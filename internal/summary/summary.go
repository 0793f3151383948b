// Package summary picks the sentences that make up a document summary.
package summary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	textrank "github.com/DavidBelicza/TextRank"
	"github.com/JesusIslam/tldr"

	"pdftags/internal/nlp"
)

const (
	Lead     = "lead"
	LexRank  = "lexrank"
	TextRank = "textrank"
)

var ErrUnknownMethod = errors.New("unknown summary method")

// Methods lists the accepted method names, default first.
func Methods() []string {
	return []string{Lead, LexRank, TextRank}
}

// Summarizer returns the n sentences that summarize an annotated text, joined by spaces.
type Summarizer interface {
	Summarize(ann nlp.Annotation, n int) (string, error)
}

// New returns the summarizer for method. An empty method selects Lead.
func New(method string) (Summarizer, error) {
	switch method {
	case Lead, "":
		return lead{}, nil
	case LexRank:
		return lexRank{}, nil
	case TextRank:
		return textRank{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
}

// lead takes the first n sentences.
type lead struct{}

func (lead) Summarize(ann nlp.Annotation, n int) (string, error) {
	sents := ann.Sentences[:limit(ann, n)]
	parts := make([]string, 0, len(sents))
	for _, s := range sents {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " "), nil
}

type lexRank struct{}

func (lexRank) Summarize(ann nlp.Annotation, n int) (string, error) {
	if k := limit(ann, n); k == 0 || k == len(ann.Sentences) {
		return lead{}.Summarize(ann, n)
	}
	bag := tldr.New()
	sents, err := bag.Summarize(ann.Text, n)
	if err != nil {
		return "", fmt.Errorf("lexrank: %w", err)
	}
	return pick(ann, n, sents)
}

type textRank struct{}

func (textRank) Summarize(ann nlp.Annotation, n int) (string, error) {
	if k := limit(ann, n); k == 0 || k == len(ann.Sentences) {
		return lead{}.Summarize(ann, n)
	}
	tr := textrank.NewTextRank()
	tr.Populate(ann.Text, textrank.NewDefaultLanguage(), textrank.NewDefaultRule())
	tr.Ranking(textrank.NewDefaultAlgorithm())

	ranked := textrank.FindSentencesByRelationWeight(tr, n)
	sents := make([]string, 0, len(ranked))
	for _, s := range ranked {
		sents = append(sents, s.Value)
	}
	return pick(ann, n, sents)
}

// pick maps ranked sentences, which the rankers split on their own, back onto
// annotated sentences in document order. If the ranker returned nothing or a
// sentence that does not line up with the annotation, the lead sentences are used.
func pick(ann nlp.Annotation, n int, ranked []string) (string, error) {
	index := make(map[string]int, len(ann.Sentences))
	for i, s := range ann.Sentences {
		key := fold(s.Text)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	var picked []int
	seen := make(map[int]bool)
	for _, r := range ranked {
		i, ok := index[fold(r)]
		if !ok {
			return lead{}.Summarize(ann, n)
		}
		if !seen[i] {
			seen[i] = true
			picked = append(picked, i)
		}
	}
	if len(picked) == 0 {
		return lead{}.Summarize(ann, n)
	}
	if len(picked) > n {
		picked = picked[:n]
	}
	sort.Ints(picked)

	parts := make([]string, 0, len(picked))
	for _, i := range picked {
		parts = append(parts, ann.Sentences[i].Text)
	}
	return strings.Join(parts, " "), nil
}

// fold keeps only lowercased letters and digits, so sentences compare equal
// whatever punctuation or spacing a ranker kept.
func fold(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// limit caps n at the number of annotated sentences.
func limit(ann nlp.Annotation, n int) int {
	if n > len(ann.Sentences) {
		n = len(ann.Sentences)
	}
	if n < 0 {
		n = 0
	}
	return n
}
