package keywords

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spigell/career-scorer/internal/stopwords"
	"github.com/spigell/career-scorer/internal/utils"
)

const defaultPreviewLength = 80

// Extractor turns free text into a keyword set of content-word lemmas.
type Extractor struct {
	tagger     Tagger
	lemmatizer Lemmatizer
	logger     *zap.Logger
	previewLen int
}

// NewExtractor creates an extractor. A nil lemmatizer keeps tokens as they are.
func NewExtractor(tagger Tagger, lemmatizer Lemmatizer, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		tagger:     tagger,
		lemmatizer: lemmatizer,
		logger:     logger,
		previewLen: defaultPreviewLength,
	}
}

// SetPreviewLength bounds how much input text is echoed into logs.
// Non-positive values are ignored.
func (e *Extractor) SetPreviewLength(n int) {
	if n > 0 {
		e.previewLen = n
	}
}

// Extract returns the lemmas of nouns, verbs and adjectives in text that are
// not stop words. Tagging failures are logged and yield an empty set.
func (e *Extractor) Extract(text string) Set {
	set := make(Set)

	// cases.Caser keeps state, a fresh one per call keeps Extract safe for
	// concurrent use.
	lowered := cases.Lower(language.English).String(text)
	if strings.TrimSpace(lowered) == "" {
		return set
	}

	tokens, err := e.tagger.Tag(lowered)
	if err != nil {
		e.logger.Warn("tagging text failed",
			zap.Error(err),
			zap.String("text_preview", utils.Preview(text, e.previewLen)),
		)
		return set
	}

	for _, tok := range tokens {
		word := strings.TrimSpace(tok.Text)
		if !isContentTag(tok.Tag) || !hasLetterOrDigit(word) || stopwords.Is(word) {
			continue
		}

		lemma := word
		if e.lemmatizer != nil {
			lemma = e.lemmatizer.Lemma(word)
		}

		if lemma == "" || stopwords.Is(lemma) {
			continue
		}
		set.Add(lemma)
	}

	return set
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
