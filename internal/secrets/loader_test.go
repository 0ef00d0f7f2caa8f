package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	filled := filepath.Join(dir, "dsn")
	if err := os.WriteFile(filled, []byte("  file:profiles.db \n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	blank := filepath.Join(dir, "blank")
	if err := os.WriteFile(blank, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	t.Setenv("CAREER_SCORER_TEST_DSN", " env.db ")

	tests := []struct {
		name      string
		src       Source
		expect    string
		expectErr string
	}{
		{
			name:   "file wins",
			src:    Source{Name: "store dsn", File: filled, Env: "CAREER_SCORER_TEST_DSN", Value: "inline.db"},
			expect: "file:profiles.db",
		},
		{
			name:   "env before value",
			src:    Source{Env: "CAREER_SCORER_TEST_DSN", Value: "inline.db"},
			expect: "env.db",
		},
		{
			name:   "unset env falls back to value",
			src:    Source{Env: "CAREER_SCORER_TEST_UNSET", Value: " inline.db "},
			expect: "inline.db",
		},
		{
			name:   "optional empty",
			src:    Source{Optional: true},
			expect: "",
		},
		{
			name:      "missing value",
			src:       Source{Name: "store dsn"},
			expectErr: "store dsn is not configured",
		},
		{
			name:      "blank file",
			src:       Source{Name: "store dsn", File: blank},
			expectErr: "is empty",
		},
		{
			name:      "missing file",
			src:       Source{File: filepath.Join(dir, "nope")},
			expectErr: "reading secret from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.expectErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectErr) {
					t.Fatalf("expected error containing %q, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
