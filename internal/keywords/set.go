package keywords

import "sort"

// Set is a collection of unique normalized keywords.
type Set map[string]struct{}

// NewSet returns a set holding the provided words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

func (s Set) Add(word string) {
	s[word] = struct{}{}
}

func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Intersect returns the words present in both sets.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	result := make(Set)
	for w := range small {
		if large.Has(w) {
			result.Add(w)
		}
	}
	return result
}

// Sorted returns the words in lexical order. It never returns nil.
func (s Set) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
