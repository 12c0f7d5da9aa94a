package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SanaUllah13/youtools-go/internal/model"
)

// maxDescriptionChars caps how much description text goes into the prompt.
const maxDescriptionChars = 100

const classifyPrompt = `Classify this YouTube content into a niche hierarchy.
Title: %q
Description: %q

Respond with ONLY a JSON object, no prose:
{"mainNiche":"<one of: finance, technology, sports, gaming, education, fitness, cooking, entertainment, travel, lifestyle, business, general>","subNiche":"<specific lowercase sub-category>","displayName":"<human readable label>","searchKeywords":["<kw1>","<kw2>","<kw3>","<kw4>"]}`

// LLMClassifier delegates classification to an OpenAI-compatible
// chat-completions endpoint.
type LLMClassifier struct {
	apiKey string
	url    string
	model  string
	http   *http.Client
}

func NewLLMClassifier(apiKey, url, model string) *LLMClassifier {
	return &LLMClassifier{
		apiKey: apiKey,
		url:    url,
		model:  model,
		http:   &http.Client{Timeout: 20 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify sends a compact prompt and parses the strict-JSON hierarchy reply.
// Any transport, status, or shape problem returns an error; the caller falls
// back to the rule-based classifier.
func (c *LLMClassifier) Classify(ctx context.Context, title, description string) (*model.NicheHierarchy, error) {
	description = strings.TrimSpace(description)
	if len(description) > maxDescriptionChars {
		description = description[:maxDescriptionChars]
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(classifyPrompt, strings.TrimSpace(title), description)},
		},
		Temperature: 0.2,
		MaxTokens:   200,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classify request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read classify response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classify request: status %d", resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("parse classify response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("classify response has no choices")
	}

	return parseHierarchyJSON(chat.Choices[0].Message.Content)
}

// parseHierarchyJSON validates the model's reply into a hierarchy. All three
// string fields must be present and non-empty.
func parseHierarchyJSON(content string) (*model.NicheHierarchy, error) {
	var h model.NicheHierarchy
	if err := json.Unmarshal([]byte(stripFences(content)), &h); err != nil {
		return nil, fmt.Errorf("malformed hierarchy JSON: %w", err)
	}
	if strings.TrimSpace(h.MainNiche) == "" || strings.TrimSpace(h.SubNiche) == "" || strings.TrimSpace(h.DisplayName) == "" {
		return nil, fmt.Errorf("hierarchy JSON missing required fields")
	}
	normalized := h.Normalized()
	return &normalized, nil
}

// stripFences removes markdown code fences some models wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
