package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// CompletionClient is the external text-completion collaborator. The language
// model itself lives behind this boundary; the core only builds prompts and
// handles failures.
type CompletionClient interface {
	Complete(ctx context.Context, prompt, mode string) (string, error)
}

// HTTPCompletionClient talks to a hosted inference endpoint
// (HuggingFace-style: POST {inputs} -> [{generated_text}]).
type HTTPCompletionClient struct {
	client *http.Client
	url    string
	token  string
}

func NewHTTPCompletionClient() *HTTPCompletionClient {
	url := os.Getenv("COMPLETION_API_URL")
	if url == "" {
		url = "https://api-inference.huggingface.co/models/google/flan-t5-base"
	}
	return &HTTPCompletionClient{
		client: &http.Client{Timeout: 15 * time.Second},
		url:    url,
		token:  os.Getenv("COMPLETION_API_TOKEN"),
	}
}

func (c *HTTPCompletionClient) Complete(ctx context.Context, prompt, mode string) (string, error) {
	if c.token == "" {
		return "", fmt.Errorf("COMPLETION_API_TOKEN not set")
	}

	payload, _ := json.Marshal(map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens": 150,
			"temperature":    0.7,
		},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned %d: %s", resp.StatusCode, string(body))
	}

	var out []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &out); err != nil || len(out) == 0 {
		return "", fmt.Errorf("unexpected completion response: %s", string(body))
	}
	return strings.TrimSpace(out[0].GeneratedText), nil
}
