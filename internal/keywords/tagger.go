package keywords

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// Token is a word together with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// Tagger splits text into part-of-speech tagged tokens.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// Lemmatizer reduces a word to its dictionary base form.
type Lemmatizer interface {
	Lemma(word string) string
}

// ProseTagger tags text with the averaged perceptron model bundled with prose.
// The model is built once and is only read afterwards.
type ProseTagger struct {
	model *prose.Model
}

// NewProseTagger builds the perceptron model from a warm-up document.
func NewProseTagger() (*ProseTagger, error) {
	doc, err := prose.NewDocument("warm up",
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("load part-of-speech model: %w", err)
	}
	return &ProseTagger{model: doc.Model}, nil
}

func (t *ProseTagger) Tag(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.UsingModel(t.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tag document: %w", err)
	}

	tokens := doc.Tokens()
	result := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		result = append(result, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return result, nil
}

// GolemLemmatizer looks words up in the golem English dictionary.
type GolemLemmatizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewGolemLemmatizer loads the English dictionary. Loading takes a noticeable
// amount of time, so one instance should be shared by the process.
func NewGolemLemmatizer() (*GolemLemmatizer, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return &GolemLemmatizer{lemmatizer: l}, nil
}

// Lemma returns the base form of word, or word itself when it is not in the
// dictionary.
func (g *GolemLemmatizer) Lemma(word string) string {
	lemma := g.lemmatizer.Lemma(word)
	if strings.TrimSpace(lemma) == "" {
		return word
	}
	return strings.ToLower(lemma)
}

// isContentTag reports whether a Penn Treebank tag marks a noun, verb or
// adjective.
func isContentTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") ||
		strings.HasPrefix(tag, "VB") ||
		strings.HasPrefix(tag, "JJ")
}
