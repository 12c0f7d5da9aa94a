package normalize

import (
	"strings"
	"testing"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple topic", "cooking", "cooking"},
		{"spaces to underscores", "personal finance", "personal_finance"},
		{"uppercase lowered", "Personal Finance", "personal_finance"},
		{"leading and trailing space trimmed", "  crypto trading  ", "crypto_trading"},
		{"punctuation stripped", "how-to: invest?!", "howto_invest"},
		{"repeated spaces collapse", "a    b", "a_b"},
		{"url stripped to alphanumerics", "https://youtu.be/dQw4w9WgXcQ", "httpsyoutubedqw4w9wgxcq"},
		{"digits kept", "top 10 gadgets 2025", "top_10_gadgets_2025"},
		{"empty input", "", ""},
		{"only punctuation", "???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CacheKey(tt.input)
			if got != tt.want {
				t.Errorf("CacheKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCacheKey_Truncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := CacheKey(long)
	if len(got) != MaxKeyLen {
		t.Errorf("CacheKey(long) length = %d, want %d", len(got), MaxKeyLen)
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	if CacheKey("Minecraft Speedrun") != CacheKey("minecraft   speedrun") {
		t.Error("equivalent inputs should normalize to the same key")
	}
}

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestIPHash(t *testing.T) {
	hash := IPHash("192.168.1.1")

	if len(hash) != 12 {
		t.Errorf("IPHash length = %d, want 12", len(hash))
	}

	// Should be deterministic
	if hash != IPHash("192.168.1.1") {
		t.Error("IPHash should be deterministic")
	}

	// Different IP should produce a different prefix
	if hash == IPHash("10.0.0.1") {
		t.Error("different IPs should produce different hashes")
	}
}
