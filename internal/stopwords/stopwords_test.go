package stopwords

import "testing"

func TestIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word   string
		expect bool
	}{
		{word: "the", expect: true},
		{word: "The", expect: true},
		{word: "with", expect: true},
		{word: "python", expect: false},
		{word: "developer", expect: false},
		{word: "learning", expect: false},
		{word: "", expect: false},
		{word: "computer", expect: true},
		{word: "system", expect: true},
		{word: "interest", expect: true},
		{word: "found", expect: true},
		{word: "make", expect: false},
		{word: "using", expect: false},
		{word: "really", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			if got := Is(tt.word); got != tt.expect {
				t.Fatalf("Is(%q) = %v, expected %v", tt.word, got, tt.expect)
			}
		})
	}
}
