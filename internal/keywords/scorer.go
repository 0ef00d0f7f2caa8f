// Package keywords scores how well a resume covers the keywords of a job
// description.
package keywords

import (
	"math"

	"go.uber.org/zap"
)

// Result is the outcome of an overlap scoring.
type Result struct {
	// Score is the share of job keywords found in the resume, 0–100 with two
	// decimals.
	Score   float64  `json:"score"`
	Matched []string `json:"matched_keywords"`
}

// Scorer computes keyword overlap between a resume and a job description.
// It is safe for concurrent use when its Tagger and Lemmatizer are.
type Scorer struct {
	extractor *Extractor
	logger    *zap.Logger
}

func NewScorer(extractor *Extractor, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{extractor: extractor, logger: logger}
}

// NewDefaultScorer wires the prose tagger and golem lemmatizer. A
// non-positive previewLength keeps the default log preview length.
func NewDefaultScorer(logger *zap.Logger, previewLength int) (*Scorer, error) {
	tagger, err := NewProseTagger()
	if err != nil {
		return nil, err
	}
	lemmatizer, err := NewGolemLemmatizer()
	if err != nil {
		return nil, err
	}

	extractor := NewExtractor(tagger, lemmatizer, logger)
	extractor.SetPreviewLength(previewLength)

	return NewScorer(extractor, logger), nil
}

// Score never fails: an empty job keyword set gives a score of 0.
func (s *Scorer) Score(resumeText, jobText string) Result {
	resume := s.extractor.Extract(resumeText)
	job := s.extractor.Extract(jobText)
	matched := resume.Intersect(job)

	result := Result{
		Score:   Percentage(matched.Len(), job.Len()),
		Matched: matched.Sorted(),
	}

	s.logger.Debug("keyword overlap scored",
		zap.Int("resume_keywords", resume.Len()),
		zap.Int("job_keywords", job.Len()),
		zap.Int("matched_keywords", matched.Len()),
		zap.Float64("score", result.Score),
	)

	return result
}

// Percentage returns matched/total*100 rounded to two decimals with ties
// going to the even digit, or 0 when total is not positive.
func Percentage(matched, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.RoundToEven(float64(matched)/float64(total)*100*100) / 100
}
