// Package keywords turns cleaned document text into hashtags, a summary and a word count.
package keywords

import (
	"errors"
	"fmt"
	"strings"

	rake "github.com/afjoseph/RAKE.Go"
	"github.com/sirupsen/logrus"

	"pdftags/internal/clean"
	"pdftags/internal/nlp"
	"pdftags/internal/squish"
	"pdftags/internal/summary"
)

const (
	Frequency = "frequency"
	Rake      = "rake"

	DefaultMaxTags          = 5
	DefaultSummarySentences = 3
)

var ErrUnknownStrategy = errors.New("unknown keyword strategy")

// Strategies lists the accepted strategy names, default first.
func Strategies() []string {
	return []string{Frequency, Rake}
}

// ParseStrategy validates a strategy name. An empty name selects Frequency.
func ParseStrategy(name string) (string, error) {
	switch name {
	case "":
		return Frequency, nil
	case Frequency, Rake:
		return name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Annotator produces the linguistic annotation of a text.
type Annotator interface {
	Annotate(text string) (nlp.Annotation, error)
}

type Result struct {
	Hashtags  []string
	Summary   string
	WordCount int
}

type Extractor struct {
	annotator        Annotator
	summarizer       summary.Summarizer
	strategy         string
	maxTags          int
	summarySentences int
	vocabularyLimit  int
	stopwords        map[string]struct{}
}

type Option func(*Extractor)

func WithMaxTags(n int) Option {
	return func(e *Extractor) {
		e.maxTags = n
	}
}

func WithSummarizer(s summary.Summarizer, sentences int) Option {
	return func(e *Extractor) {
		e.summarizer = s
		e.summarySentences = sentences
	}
}

// WithStrategy selects how hashtags are ranked; see Strategies.
func WithStrategy(name string) Option {
	return func(e *Extractor) {
		e.strategy = name
	}
}

// WithStopwords excludes lemmas from the frequency table. Matching is case-insensitive.
func WithStopwords(words []string) Option {
	return func(e *Extractor) {
		for _, w := range words {
			e.stopwords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// WithVocabularyLimit caps the number of distinct lemmas counted per document.
func WithVocabularyLimit(n int) Option {
	return func(e *Extractor) {
		e.vocabularyLimit = n
	}
}

func New(a Annotator, options ...Option) *Extractor {
	lead, _ := summary.New(summary.Lead)
	e := &Extractor{
		annotator:        a,
		summarizer:       lead,
		strategy:         Frequency,
		maxTags:          DefaultMaxTags,
		summarySentences: DefaultSummarySentences,
		stopwords:        make(map[string]struct{}),
	}
	for _, o := range options {
		o(e)
	}
	return e
}

// Extract annotates cleaned text and derives its hashtags, summary and word count.
// Empty text yields an empty result without calling the annotator.
func (e *Extractor) Extract(text string) (Result, error) {
	res := Result{Hashtags: []string{}}
	if text == "" {
		return res, nil
	}

	ann, err := e.annotator.Annotate(text)
	if err != nil {
		return res, fmt.Errorf("annotate: %w", err)
	}

	switch e.strategy {
	case Rake:
		res.Hashtags = e.rakeTags(ann.Text)
	default:
		res.Hashtags = e.frequencyTags(ann)
	}

	sum, err := e.summarizer.Summarize(ann, e.summarySentences)
	if err != nil {
		return res, fmt.Errorf("summarize: %w", err)
	}
	res.Summary = clean.Clean(sum)
	res.WordCount = ann.WordCount()
	return res, nil
}

func (e *Extractor) frequencyTags(ann nlp.Annotation) []string {
	table := squish.New(e.vocabularyLimit)
	for _, s := range ann.Sentences {
		for _, tok := range s.Tokens {
			if !tok.Category.Content() || !isAlpha(tok.Lemma) {
				continue
			}
			lemma := strings.ToLower(tok.Lemma)
			if e.isStopword(lemma) {
				continue
			}
			table.Observe(lemma)
		}
	}
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("keyword table: %v", table.Dump())
	}

	top := table.Top(e.maxTags)
	tags := make([]string, 0, len(top))
	for _, entry := range top {
		tags = append(tags, Hashtag(entry.Key))
	}
	return tags
}

func (e *Extractor) rakeTags(text string) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, candidate := range rake.RunRake(text) {
		if len(tags) >= e.maxTags {
			break
		}
		key := strings.ToLower(strings.ReplaceAll(candidate.Key, " ", ""))
		if !isAlpha(key) || e.isStopword(key) {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, Hashtag(key))
	}
	return tags
}

func (e *Extractor) isStopword(word string) bool {
	_, ok := e.stopwords[word]
	return ok
}

// Hashtag prefixes keyword with '#' and removes any spaces.
func Hashtag(keyword string) string {
	return "#" + strings.ReplaceAll(keyword, " ", "")
}

// isAlpha reports whether s is non-empty and made only of ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
