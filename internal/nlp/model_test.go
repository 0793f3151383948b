package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUnknownModel(t *testing.T) {
	_, err := Load("xx_core_web_huge")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestAnnotate(t *testing.T) {
	m, err := Load(DefaultModel)
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, m.ID())

	ann, err := m.Annotate("The dogs were running quickly. Cats sleep all day!")
	require.NoError(t, err)
	require.Len(t, ann.Sentences, 2)
	assert.Equal(t, "The dogs were running quickly.", strings.TrimSpace(ann.Sentences[0].Text))
	assert.Equal(t, "Cats sleep all day!", strings.TrimSpace(ann.Sentences[1].Text))

	var running, period *Token
	for i, tok := range ann.Sentences[0].Tokens {
		switch tok.Text {
		case "running":
			running = &ann.Sentences[0].Tokens[i]
		case ".":
			period = &ann.Sentences[0].Tokens[i]
		}
	}
	require.NotNil(t, running)
	assert.Equal(t, Verb, running.Category)
	assert.Equal(t, "run", running.Lemma)
	assert.False(t, running.Punct)
	require.NotNil(t, period)
	assert.True(t, period.Punct)

	words := 0
	for _, tok := range ann.Tokens() {
		if !tok.Punct {
			words++
		}
	}
	assert.Equal(t, words, ann.WordCount())
	assert.Equal(t, 9, ann.WordCount())
}

func TestAnnotateEmpty(t *testing.T) {
	m, err := Load("en_core_web_sm")
	require.NoError(t, err)

	ann, err := m.Annotate("")
	require.NoError(t, err)
	assert.Empty(t, ann.Sentences)
	assert.Equal(t, 0, ann.WordCount())
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, Noun, categoryOf("NNS"))
	assert.Equal(t, ProperNoun, categoryOf("NNP"))
	assert.Equal(t, Adjective, categoryOf("JJR"))
	assert.Equal(t, Verb, categoryOf("VBZ"))
	assert.Equal(t, Other, categoryOf("RB"))
	assert.Equal(t, Other, categoryOf("."))
	assert.True(t, Verb.Content())
	assert.False(t, Other.Content())
	assert.Equal(t, "PROPN", ProperNoun.String())
}

func TestIsPunct(t *testing.T) {
	assert.True(t, isPunct("."))
	assert.True(t, isPunct("..."))
	assert.True(t, isPunct("!?"))
	assert.False(t, isPunct(""))
	assert.False(t, isPunct("$"))
	assert.False(t, isPunct("e.g."))
}
