package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Input limits for the niche analyzer.
const (
	MinInputLen = 2
	MaxInputLen = 200
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateAnalysisInput checks the free-form analyzer input: non-empty after
// trimming, at least MinInputLen characters, capped at MaxInputLen. Returns
// the trimmed input and an empty message on success.
func ValidateAnalysisInput(input string) (string, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "input is required"
	}
	if len(input) < MinInputLen {
		return "", "input must be at least 2 characters"
	}
	if len(input) > MaxInputLen {
		input = input[:MaxInputLen]
	}
	return input, ""
}

// ValidateLimit parses a ?limit query value into [1, max], defaulting when
// absent or malformed.
func ValidateLimit(raw string, def, max int) int {
	if raw == "" {
		return def
	}
	n := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
		if n > max {
			return max
		}
	}
	if n < 1 {
		return def
	}
	return n
}
