// Package nlp annotates text with sentences, part-of-speech categories and lemmas.
package nlp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v3"
	"github.com/sirupsen/logrus"
)

// DefaultModel is the identifier used when none is configured.
const DefaultModel = "en"

var ErrUnknownModel = errors.New("unknown language model")

// identifiers accepted by Load, mapped onto the language they select
var models = map[string]string{
	"en":             "en",
	"english":        "en",
	"en_core_web_sm": "en",
}

// Models returns the accepted model identifiers.
func Models() []string {
	ids := make([]string, 0, len(models))
	for id := range models {
		ids = append(ids, id)
	}
	return ids
}

// Model holds the tagger and lemmatizer. Load it once and share it.
type Model struct {
	id         string
	tagger     *prose.Model
	lemmatizer *golem.Lemmatizer
}

// Load builds the model named by id.
func Load(id string) (*Model, error) {
	if _, ok := models[strings.ToLower(id)]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, id)
	}

	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer for %q: %w", id, err)
	}

	// prose only exposes its default tagger through a document
	doc, err := prose.NewDocument("", prose.WithSegmentation(false), prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("load tagger for %q: %w", id, err)
	}
	logrus.Debugf("loaded language model %s", id)

	return &Model{
		id:         id,
		tagger:     doc.Model,
		lemmatizer: lem,
	}, nil
}

func (m *Model) ID() string {
	return m.id
}

// Annotate segments text into sentences and tags and lemmatizes their tokens.
func (m *Model) Annotate(text string) (Annotation, error) {
	ann := Annotation{Text: text}
	if strings.TrimSpace(text) == "" {
		return ann, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.UsingModel(m.tagger),
	)
	if err != nil {
		return ann, fmt.Errorf("segment: %w", err)
	}

	for _, sent := range doc.Sentences() {
		if strings.TrimSpace(sent.Text) == "" {
			continue
		}
		tokens, err := m.tag(sent.Text)
		if err != nil {
			return ann, err
		}
		ann.Sentences = append(ann.Sentences, Sentence{Text: sent.Text, Tokens: tokens})
	}
	return ann, nil
}

func (m *Model) tag(sentence string) ([]Token, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
		prose.UsingModel(m.tagger),
		prose.UsingTokenizer(prose.NewIterTokenizer()),
	)
	if err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}

	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		cat := categoryOf(tok.Tag)
		out = append(out, Token{
			Text:     tok.Text,
			Lemma:    m.lemma(tok.Text, cat),
			Category: cat,
			Punct:    isPunct(tok.Text),
		})
	}
	return out, nil
}

func (m *Model) lemma(text string, cat Category) string {
	switch cat {
	case ProperNoun:
		return text
	case Noun, Adjective, Verb:
		return m.lemmatizer.Lemma(strings.ToLower(text))
	}
	return strings.ToLower(text)
}
