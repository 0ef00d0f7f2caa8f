package recommend

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/spigell/career-scorer/internal/stopwords"
)

// termPattern matches runs of at least two letters, digits or underscores.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

var errEmptyVocabulary = errors.New("empty vocabulary: documents contain only stop words")

// Vectorizer is a TF–IDF model fitted over a fixed document set. It is
// read-only after FitVectorizer returns.
type Vectorizer struct {
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

// FitVectorizer learns the vocabulary and smoothed inverse document
// frequencies of docs:
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
func FitVectorizer(docs []string) (*Vectorizer, error) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range analyze(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	if len(df) == 0 {
		return nil, errEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return &Vectorizer{vocabulary: vocabulary, terms: terms, idf: idf}, nil
}

// Transform projects text into the fitted space and L2-normalizes the result.
// Terms outside the vocabulary are ignored; text without known terms yields
// the zero vector.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, term := range analyze(text) {
		if i, ok := v.vocabulary[term]; ok {
			vec[i]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.idf[i]
		norm += vec[i] * vec[i]
	}

	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// Terms returns the vocabulary in index order.
func (v *Vectorizer) Terms() []string {
	return append([]string(nil), v.terms...)
}

// CosineSimilarity returns the cosine of the angle between a and b clamped to
// [0, 1]. A zero vector on either side gives 0.
func CosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += a[i] * b[i]
	}
	for _, x := range a {
		normA += x * x
	}
	for _, y := range b {
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	switch {
	case math.IsNaN(sim) || sim < 0:
		return 0
	case sim > 1:
		return 1
	}
	return sim
}

func analyze(text string) []string {
	raw := termPattern.FindAllString(strings.ToLower(text), -1)
	terms := raw[:0]
	for _, term := range raw {
		if stopwords.Is(term) {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}
