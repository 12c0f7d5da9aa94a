package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// MaxKeyLen caps cache keys so arbitrarily long inputs cannot blow up the
// key space in Redis.
const MaxKeyLen = 50

// CacheKey converts free-form user input into a stable cache key: trimmed,
// lower-cased, stripped to alphanumerics (spaces collapse to single
// underscores), truncated to MaxKeyLen.
func CacheKey(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))

	var b strings.Builder
	b.Grow(len(input))
	lastUnderscore := false
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '\t':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}

	key := strings.TrimSuffix(b.String(), "_")
	if len(key) > MaxKeyLen {
		key = key[:MaxKeyLen]
	}
	return key
}

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// IPHash produces a short, irreversible hash prefix of an IP address for log
// correlation without writing raw addresses to logs.
func IPHash(ip string) string {
	return SHA256Hex(ip)[:12]
}
