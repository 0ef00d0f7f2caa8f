package keywords

import (
	"testing"
)

func TestDefaultScorerMatchesSharedSkills(t *testing.T) {
	if testing.Short() {
		t.Skip("loads tagging model and lemma dictionary")
	}

	scorer, err := NewDefaultScorer(nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := scorer.Score(
		"Experienced Python developer with machine learning skills",
		"Looking for Python developer with deep learning experience",
	)

	matched := NewSet(got.Matched...)
	for _, want := range []string{"python", "developer"} {
		if !matched.Has(want) {
			t.Fatalf("expected %q among matched keywords %v", want, got.Matched)
		}
	}

	if got.Score <= 0 || got.Score > 100 {
		t.Fatalf("expected score in (0, 100], got %v", got.Score)
	}

	if empty := scorer.Score("Experienced Python developer", ""); empty.Score != 0 {
		t.Fatalf("expected zero score for empty job text, got %v", empty.Score)
	}
}

func TestProseTaggerReusesModel(t *testing.T) {
	if testing.Short() {
		t.Skip("loads tagging model")
	}

	tagger, err := NewProseTagger()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tagger.model == nil {
		t.Fatalf("expected model to be built by the constructor")
	}

	model := tagger.model
	for _, text := range []string{"python developer", "kubernetes operator"} {
		tokens, err := tagger.Tag(text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tokens) != 2 {
			t.Fatalf("expected 2 tokens for %q, got %v", text, tokens)
		}
	}

	if tagger.model != model {
		t.Fatalf("expected tagging to keep the constructor model")
	}
}

func BenchmarkProseTaggerTag(b *testing.B) {
	tagger, err := NewProseTagger()
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tagger.Tag("python developer with machine learning skills"); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestIsContentTag(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"NN", "NNS", "NNP", "VB", "VBG", "VBD", "JJ", "JJR"} {
		if !isContentTag(tag) {
			t.Fatalf("expected %s to be a content tag", tag)
		}
	}

	for _, tag := range []string{"IN", "DT", "RB", "CC", ".", "PRP"} {
		if isContentTag(tag) {
			t.Fatalf("expected %s to be skipped", tag)
		}
	}
}
