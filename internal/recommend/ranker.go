// Package recommend ranks career domains against a skill profile using a
// TF–IDF vector space fitted over the domain descriptions.
package recommend

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Category is a career domain the ranker can recommend.
type Category struct {
	ID         string   `mapstructure:"id" json:"id"`
	Name       string   `mapstructure:"name" json:"name"`
	Keywords   string   `mapstructure:"keywords" json:"keywords"`
	CoreSkills []string `mapstructure:"core-skills" json:"core_skills"`
	Projects   []string `mapstructure:"projects" json:"projects"`
}

// Profile describes what a person is interested in and has worked with.
type Profile struct {
	Interests string   `json:"interests"`
	Skills    []string `json:"skills"`
	Projects  []string `json:"projects"`
}

// Text joins interests, skills and projects in that order.
func (p Profile) Text() string {
	return strings.Join([]string{
		p.Interests,
		strings.Join(p.Skills, " "),
		strings.Join(p.Projects, " "),
	}, " ")
}

// IsEmpty reports whether the profile carries no text at all.
func (p Profile) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == ""
}

// Recommendation is a category scored against a profile. Score is the raw
// cosine similarity, not a percentage.
type Recommendation struct {
	DomainID   string   `json:"domain_id"`
	Name       string   `json:"name"`
	Score      float64  `json:"score"`
	CoreSkills []string `json:"core_skills"`
	Projects   []string `json:"projects"`
}

// Ranker holds the fitted model and category vectors. It is immutable and
// safe for concurrent use; a different category set needs a new Ranker.
type Ranker struct {
	categories []Category
	vectorizer *Vectorizer
	vectors    [][]float64
}

// NewRanker fits the vector space over the keyword text of categories.
func NewRanker(categories []Category) (*Ranker, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("at least one category is required")
	}

	owned := make([]Category, len(categories))
	docs := make([]string, len(categories))
	seen := make(map[string]struct{}, len(categories))

	for i, c := range categories {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return nil, fmt.Errorf("category %d: id is required", i)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("category %q: duplicate id", id)
		}
		seen[id] = struct{}{}

		owned[i] = Category{
			ID:         id,
			Name:       c.Name,
			Keywords:   c.Keywords,
			CoreSkills: slices.Clone(c.CoreSkills),
			Projects:   slices.Clone(c.Projects),
		}
		docs[i] = c.Keywords
	}

	vectorizer, err := FitVectorizer(docs)
	if err != nil {
		return nil, fmt.Errorf("fit category vectors: %w", err)
	}

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = vectorizer.Transform(doc)
	}

	return &Ranker{
		categories: owned,
		vectorizer: vectorizer,
		vectors:    vectors,
	}, nil
}

// Recommend scores every category against profile, best first. Categories
// with equal scores keep their declaration order.
func (r *Ranker) Recommend(profile Profile) []Recommendation {
	vec := r.vectorizer.Transform(profile.Text())

	result := make([]Recommendation, len(r.categories))
	for i, c := range r.categories {
		result[i] = Recommendation{
			DomainID:   c.ID,
			Name:       c.Name,
			Score:      CosineSimilarity(vec, r.vectors[i]),
			CoreSkills: slices.Clone(c.CoreSkills),
			Projects:   slices.Clone(c.Projects),
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	return result
}

// Vectorizer exposes the fitted model.
func (r *Ranker) Vectorizer() *Vectorizer {
	return r.vectorizer
}
