package keywords

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubTagger tags whitespace separated words from a fixed dictionary and
// falls back to NN for unknown words.
type stubTagger struct {
	tags map[string]string
	err  error
}

func (s *stubTagger) Tag(text string) ([]Token, error) {
	if s.err != nil {
		return nil, s.err
	}

	var tokens []Token
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, ".,;:!?")
		tag, ok := s.tags[word]
		if !ok {
			tag = "NN"
		}
		tokens = append(tokens, Token{Text: word, Tag: tag})
	}
	return tokens, nil
}

type stubLemmatizer map[string]string

func (s stubLemmatizer) Lemma(word string) string {
	if lemma, ok := s[word]; ok {
		return lemma
	}
	return word
}

func newStubScorer() *Scorer {
	tagger := &stubTagger{tags: map[string]string{
		"experienced": "JJ",
		"looking":     "VBG",
		"deep":        "JJ",
		"with":        "IN",
		"for":         "IN",
		"and":         "CC",
		"the":         "DT",
		"a":           "DT",
		"quickly":     "RB",
		"in":          "IN",
	}}
	lemmas := stubLemmatizer{
		"skills":      "skill",
		"looking":     "look",
		"learning":    "learn",
		"experienced": "experience",
		"services":    "service",
		"building":    "build",
	}
	return NewScorer(NewExtractor(tagger, lemmas, zap.NewNop()), zap.NewNop())
}

func TestExtractKeepsContentLemmas(t *testing.T) {
	t.Parallel()

	scorer := newStubScorer()

	got := scorer.extractor.Extract("Experienced Python developer with the skills, quickly building services")
	expect := []string{"build", "developer", "experience", "python", "service", "skill"}

	if !reflect.DeepEqual(got.Sorted(), expect) {
		t.Fatalf("expected %v, got %v", expect, got.Sorted())
	}
}

func TestExtractDropsNonWordTokens(t *testing.T) {
	t.Parallel()

	tagger := &stubTagger{tags: map[string]string{"--": "NN", "go": "VB"}}
	extractor := NewExtractor(tagger, nil, nil)

	got := extractor.Extract("-- kubernetes go")
	if !reflect.DeepEqual(got.Sorted(), []string{"kubernetes"}) {
		t.Fatalf("unexpected keywords: %v", got.Sorted())
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resume      string
		job         string
		expectScore float64
		expectMatch []string
	}{
		{
			name:        "partial overlap",
			resume:      "Experienced Python developer with machine learning skills",
			job:         "Looking for Python developer with deep learning experience",
			expectScore: 66.67,
			expectMatch: []string{"developer", "experience", "learn", "python"},
		},
		{
			name:        "full overlap",
			resume:      "golang kubernetes terraform",
			job:         "Kubernetes and Golang",
			expectScore: 100,
			expectMatch: []string{"golang", "kubernetes"},
		},
		{
			name:        "no overlap",
			resume:      "painter sculptor",
			job:         "accountant",
			expectScore: 0,
			expectMatch: []string{},
		},
		{
			name:        "empty job",
			resume:      "python developer",
			job:         "",
			expectScore: 0,
			expectMatch: []string{},
		},
		{
			name:        "job of stop words only",
			resume:      "python developer",
			job:         "with the and for",
			expectScore: 0,
			expectMatch: []string{},
		},
		{
			name:        "empty resume",
			resume:      "   ",
			job:         "python developer",
			expectScore: 0,
			expectMatch: []string{},
		},
		{
			name:        "case insensitive",
			resume:      "PYTHON",
			job:         "python django",
			expectScore: 50,
			expectMatch: []string{"python"},
		},
	}

	scorer := newStubScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scorer.Score(tt.resume, tt.job)
			if got.Score != tt.expectScore {
				t.Fatalf("expected score %v, got %v", tt.expectScore, got.Score)
			}
			if !reflect.DeepEqual(got.Matched, tt.expectMatch) {
				t.Fatalf("expected matched %v, got %v", tt.expectMatch, got.Matched)
			}
		})
	}
}

func TestScoreMatchedIsIntersection(t *testing.T) {
	t.Parallel()

	scorer := newStubScorer()
	pairs := [][2]string{
		{"python developer kubernetes", "kubernetes operator developer"},
		{"sql analyst", "sql analyst dashboards reports"},
		{"", "anything"},
	}

	for _, pair := range pairs {
		resume := scorer.extractor.Extract(pair[0])
		job := scorer.extractor.Extract(pair[1])
		expect := resume.Intersect(job).Sorted()

		got := scorer.Score(pair[0], pair[1])
		if !reflect.DeepEqual(got.Matched, expect) {
			t.Fatalf("expected %v, got %v", expect, got.Matched)
		}
		if got.Score < 0 || got.Score > 100 {
			t.Fatalf("score out of range: %v", got.Score)
		}
	}
}

func TestScoreTaggerFailureDegradesToZero(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	tagger := &stubTagger{err: errors.New("model unavailable")}
	scorer := NewScorer(NewExtractor(tagger, nil, logger), logger)

	got := scorer.Score("python developer", "python developer")
	if got.Score != 0 || len(got.Matched) != 0 {
		t.Fatalf("expected zero result, got %+v", got)
	}

	if observed.Len() == 0 {
		t.Fatalf("expected tagging failure to be logged")
	}
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		matched, total int
		expect         float64
	}{
		{matched: 0, total: 0, expect: 0},
		{matched: 1, total: 3, expect: 33.33},
		{matched: 2, total: 3, expect: 66.67},
		{matched: 3, total: 3, expect: 100},
		{matched: 1, total: -1, expect: 0},
		// Ties round to the even digit.
		{matched: 1, total: 32, expect: 3.12},
		{matched: 3, total: 32, expect: 9.38},
		{matched: 5, total: 32, expect: 15.62},
	}

	for _, tt := range tests {
		if got := Percentage(tt.matched, tt.total); got != tt.expect {
			t.Fatalf("Percentage(%d, %d) = %v, expected %v", tt.matched, tt.total, got, tt.expect)
		}
	}
}

func TestSetIntersect(t *testing.T) {
	t.Parallel()

	a := NewSet("go", "rust", "python")
	b := NewSet("python", "go", "java", "c")

	got := a.Intersect(b).Sorted()
	if !reflect.DeepEqual(got, []string{"go", "python"}) {
		t.Fatalf("unexpected intersection: %v", got)
	}

	if empty := NewSet().Sorted(); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}
