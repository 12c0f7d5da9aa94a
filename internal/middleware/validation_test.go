package middleware

import (
	"strings"
	"testing"
)

func TestValidateAnalysisInput(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantInput string
		wantErr   bool
	}{
		{"valid topic", "personal finance", "personal finance", false},
		{"trims whitespace", "  crypto  ", "crypto", false},
		{"empty input", "", "", true},
		{"whitespace only", "   ", "", true},
		{"single character", "a", "", true},
		{"exactly min length", "ai", "ai", false},
		{"valid url", "https://youtube.com/watch?v=dQw4w9WgXcQ", "https://youtube.com/watch?v=dQw4w9WgXcQ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateAnalysisInput(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("ValidateAnalysisInput(%q) expected an error message", tt.input)
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("ValidateAnalysisInput(%q) unexpected error: %s", tt.input, errMsg)
			}
			if got != tt.wantInput {
				t.Errorf("ValidateAnalysisInput(%q) = %q, want %q", tt.input, got, tt.wantInput)
			}
		})
	}
}

func TestValidateAnalysisInput_TruncatesLongInput(t *testing.T) {
	long := strings.Repeat("x", MaxInputLen+50)
	got, errMsg := ValidateAnalysisInput(long)
	if errMsg != "" {
		t.Fatalf("unexpected error: %s", errMsg)
	}
	if len(got) != MaxInputLen {
		t.Errorf("truncated length = %d, want %d", len(got), MaxInputLen)
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty uses default", "", 20},
		{"valid value", "5", 5},
		{"zero uses default", "0", 20},
		{"negative-like garbage uses default", "-3", 20},
		{"non-numeric uses default", "abc", 20},
		{"above max clamps", "500", 100},
		{"exactly max", "100", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLimit(tt.raw, 20, 100)
			if got != tt.want {
				t.Errorf("ValidateLimit(%q, 20, 100) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
