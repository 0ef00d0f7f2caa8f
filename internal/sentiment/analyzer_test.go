package sentiment

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		feedback        Feedback
		expectNumerical float64
		expectText      float64
		expectOverall   float64
		expectSummary   string
	}{
		{
			name:            "best rating without comments",
			feedback:        Feedback{Rating: 5, Quality: "excellent", Comments: ""},
			expectNumerical: 1,
			expectText:      0.5,
			expectOverall:   0.85,
			expectSummary:   SummaryVeryPositive,
		},
		{
			name:            "worst rating with negative comments",
			feedback:        Feedback{Rating: 1, Quality: "poor", Comments: "terrible crash"},
			expectNumerical: 0,
			expectText:      0.025,
			expectOverall:   0.0825,
			expectSummary:   SummaryVeryNegative,
		},
		{
			name:            "mixed comments",
			feedback:        Feedback{Rating: 3, Quality: "Good", Comments: "Great session, but some lag."},
			expectNumerical: 0.5,
			expectText:      0.55,
			expectOverall:   0.2 + 0.225 + 0.165,
			expectSummary:   SummaryNeutral,
		},
		{
			name:            "empty quality is neutral",
			feedback:        Feedback{Rating: 4, Quality: "", Comments: "helpful and clear"},
			expectNumerical: 0.75,
			expectText:      0.925,
			expectOverall:   0.3 + 0.15 + 0.2775,
			expectSummary:   SummaryPositive,
		},
		{
			name:            "unknown quality is neutral",
			feedback:        Feedback{Rating: 3, Quality: "superb", Comments: "no opinion"},
			expectNumerical: 0.5,
			expectText:      0.5,
			expectOverall:   0.5,
			expectSummary:   SummaryNeutral,
		},
		{
			name:            "rating above range is clamped",
			feedback:        Feedback{Rating: 9, Quality: "excellent", Comments: "perfect"},
			expectNumerical: 1,
			expectText:      1,
			expectOverall:   1,
			expectSummary:   SummaryVeryPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Analyze(tt.feedback)
			if !almostEqual(got.NumericalSentiment, tt.expectNumerical) {
				t.Fatalf("numerical: expected %v, got %v", tt.expectNumerical, got.NumericalSentiment)
			}
			if !almostEqual(got.TextSentiment, tt.expectText) {
				t.Fatalf("text: expected %v, got %v", tt.expectText, got.TextSentiment)
			}
			if !almostEqual(got.OverallSentiment, tt.expectOverall) {
				t.Fatalf("overall: expected %v, got %v", tt.expectOverall, got.OverallSentiment)
			}
			if got.Summary != tt.expectSummary {
				t.Fatalf("summary: expected %q, got %q", tt.expectSummary, got.Summary)
			}
		})
	}
}

func TestAnalyzeStaysInRange(t *testing.T) {
	t.Parallel()

	for rating := -2; rating <= 8; rating++ {
		for _, quality := range append(Qualities(), "", "unknown") {
			for _, comments := range []string{"", "awful awful", "great perfect", "issue but nice"} {
				got := Analyze(Feedback{Rating: rating, Quality: quality, Comments: comments})
				for _, v := range []float64{got.NumericalSentiment, got.TextSentiment, got.OverallSentiment} {
					if v < 0 || v > 1 {
						t.Fatalf("value out of range for %d/%q/%q: %+v", rating, quality, comments, got)
					}
				}
			}
		}
	}
}

func TestSummarizeBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		overall float64
		expect  string
	}{
		{overall: 1, expect: SummaryVeryPositive},
		{overall: 0.8, expect: SummaryVeryPositive},
		{overall: 0.7999, expect: SummaryPositive},
		{overall: 0.6, expect: SummaryPositive},
		{overall: 0.5999, expect: SummaryNeutral},
		{overall: 0.4, expect: SummaryNeutral},
		{overall: 0.3999, expect: SummaryNegative},
		{overall: 0.2, expect: SummaryNegative},
		{overall: 0.1999, expect: SummaryVeryNegative},
		{overall: 0, expect: SummaryVeryNegative},
	}

	for _, tt := range tests {
		if got := Summarize(tt.overall); got != tt.expect {
			t.Fatalf("Summarize(%v) = %q, expected %q", tt.overall, got, tt.expect)
		}
	}
}

func TestParseQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label  string
		expect float64
	}{
		{label: "excellent", expect: 1},
		{label: "EXCELLENT", expect: 1},
		{label: " Good ", expect: 0.75},
		{label: "fair", expect: 0.5},
		{label: "poor", expect: 0.25},
		{label: "", expect: 0.5},
	}

	for _, tt := range tests {
		got, err := ParseQuality(tt.label)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tt.label, err)
		}
		if got != tt.expect {
			t.Fatalf("ParseQuality(%q) = %v, expected %v", tt.label, got, tt.expect)
		}
	}

	if _, err := ParseQuality("amazing"); !errors.Is(err, ErrUnknownQuality) {
		t.Fatalf("expected ErrUnknownQuality, got %v", err)
	}
}

func TestTextSentiment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comments string
		expect   float64
	}{
		{comments: "", expect: 0.5},
		{comments: "the mentor talked about careers", expect: 0.5},
		{comments: "GREAT", expect: 1},
		{comments: "awful", expect: 0},
		{comments: "good, good, bad", expect: (0.8/3 + 1) / 2},
		{comments: "smooth-session", expect: 0.95},
	}

	for _, tt := range tests {
		if got := TextSentiment(tt.comments); !almostEqual(got, tt.expect) {
			t.Fatalf("TextSentiment(%q) = %v, expected %v", tt.comments, got, tt.expect)
		}
	}
}
