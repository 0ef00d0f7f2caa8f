// Package sentiment turns session feedback into a sentiment score using a
// fixed word lexicon and a weighted blend of rating, quality and comments.
package sentiment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	SummaryVeryPositive = "Very Positive Feedback"
	SummaryPositive     = "Positive Feedback"
	SummaryNeutral      = "Neutral Feedback"
	SummaryNegative     = "Negative Feedback"
	SummaryVeryNegative = "Very Negative Feedback"
)

const (
	MinRating = 1
	MaxRating = 5

	ratingWeight  = 0.4
	qualityWeight = 0.3
	textWeight    = 0.3

	neutral = 0.5
)

// ErrUnknownQuality is returned by ParseQuality for labels outside the
// quality table.
var ErrUnknownQuality = errors.New("unknown quality label")

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Feedback is a single piece of session feedback.
type Feedback struct {
	Rating   int    `json:"rating"`
	Quality  string `json:"quality"`
	Comments string `json:"comments"`
}

type Result struct {
	NumericalSentiment float64 `json:"numerical_sentiment"`
	TextSentiment      float64 `json:"text_sentiment"`
	OverallSentiment   float64 `json:"overall_sentiment"`
	Summary            string  `json:"summary"`
}

// Analyze blends the rating (40%), the connection quality (30%) and the
// comment lexicon score (30%). Unknown quality labels count as neutral;
// callers that must reject them validate with ParseQuality first.
func Analyze(f Feedback) Result {
	numerical := RatingSentiment(f.Rating)

	quality, err := ParseQuality(f.Quality)
	if err != nil {
		quality = neutral
	}

	text := TextSentiment(f.Comments)
	overall := ratingWeight*numerical + qualityWeight*quality + textWeight*text

	return Result{
		NumericalSentiment: numerical,
		TextSentiment:      text,
		OverallSentiment:   overall,
		Summary:            Summarize(overall),
	}
}

// RatingSentiment maps a 1–5 rating linearly onto [0, 1]. Out of range
// ratings are clamped.
func RatingSentiment(rating int) float64 {
	return clamp(float64(rating-MinRating) / float64(MaxRating-MinRating))
}

// ParseQuality returns the score of a quality label. Matching ignores case
// and surrounding space; the empty label is neutral.
func ParseQuality(label string) (float64, error) {
	score, ok := qualityScores[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownQuality, label)
	}
	return score, nil
}

// Qualities returns the selectable quality labels, best first.
func Qualities() []string {
	return append([]string(nil), qualityOrder...)
}

// TextSentiment averages the lexicon weights of the words in comments and
// maps the [-1, 1] average onto [0, 1]. Without lexicon words it is neutral.
func TextSentiment(comments string) float64 {
	var sum float64
	var count int

	for _, word := range wordPattern.FindAllString(strings.ToLower(comments), -1) {
		if w, ok := wordWeight(word); ok {
			sum += w
			count++
		}
	}

	if count == 0 {
		return neutral
	}
	return (sum/float64(count) + 1) / 2
}

// Summarize maps an overall sentiment onto its label. Each band includes its
// lower bound.
func Summarize(overall float64) string {
	switch {
	case overall >= 0.8:
		return SummaryVeryPositive
	case overall >= 0.6:
		return SummaryPositive
	case overall >= 0.4:
		return SummaryNeutral
	case overall >= 0.2:
		return SummaryNegative
	default:
		return SummaryVeryNegative
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
