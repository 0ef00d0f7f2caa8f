package sentiment

// Package-level tables below are read-only.

var qualityScores = map[string]float64{
	"excellent": 1.0,
	"good":      0.75,
	"fair":      0.5,
	"poor":      0.25,
	"":          0.5,
}

// qualityOrder lists the labels offered to users, best first.
var qualityOrder = []string{"excellent", "good", "fair", "poor"}

var positiveWords = map[string]float64{
	"great":     1.0,
	"excellent": 1.0,
	"good":      0.8,
	"nice":      0.8,
	"helpful":   0.9,
	"smooth":    0.9,
	"clear":     0.8,
	"awesome":   1.0,
	"perfect":   1.0,
	"wonderful": 1.0,
	"fantastic": 1.0,
	"easy":      0.8,
	"enjoyed":   0.9,
	"pleasure":  0.9,
	"effective": 0.8,
}

var negativeWords = map[string]float64{
	"bad":        -0.8,
	"poor":       -0.8,
	"terrible":   -1.0,
	"awful":      -1.0,
	"horrible":   -1.0,
	"unclear":    -0.7,
	"difficult":  -0.7,
	"issue":      -0.6,
	"problem":    -0.6,
	"lag":        -0.8,
	"stuck":      -0.7,
	"freeze":     -0.8,
	"disconnect": -0.9,
	"crash":      -0.9,
}

// wordWeight returns the lexicon weight of a lowercase word. Positive words
// take precedence.
func wordWeight(word string) (float64, bool) {
	if w, ok := positiveWords[word]; ok {
		return w, true
	}
	w, ok := negativeWords[word]
	return w, ok
}
