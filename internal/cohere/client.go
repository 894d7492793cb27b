// Package cohere wraps the Cohere /v1/generate endpoint. The output format
// is not contractually guaranteed, so callers treat the returned text as
// opaque; structure is recovered best-effort by the planner package.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultAPIURL = "https://api.cohere.ai/v1/generate"

// ErrUpstream is returned when the provider rejects the request or is
// unreachable after the single retry.
var ErrUpstream = errors.New("generation provider error")

// Params are the fixed generation parameters for one call site.
type Params struct {
	MaxTokens     int
	Temperature   float64
	StopSequences []string
}

// Parameter sets matching each use of the generate endpoint.
var (
	WorkoutParams = Params{MaxTokens: 600, Temperature: 0.8}
	MealParams    = Params{MaxTokens: 700, Temperature: 0.7}
	ChatParams    = Params{MaxTokens: 150, Temperature: 0.7, StopSequences: []string{"User:", "AI:"}}
)

// Client is an HTTP client for the Cohere generate API.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a Cohere client. An empty apiURL falls back to the
// public endpoint. The underlying http.Client enforces a hard timeout so a
// hung provider cannot pin a request handler.
func NewClient(apiKey, apiURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("cohere: API key must be set")
	}
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		apiKey: apiKey,
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type generateRequest struct {
	Model         string   `json:"model"`
	Prompt        string   `json:"prompt"`
	MaxTokens     int      `json:"max_tokens"`
	Temperature   float64  `json:"temperature"`
	K             int      `json:"k"`
	StopSequences []string `json:"stop_sequences,omitempty"`
}

type generateResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
	Message string `json:"message,omitempty"`
}

// Generate sends the prompt and returns the trimmed completion text. An
// empty completion returns ("", nil) so the caller decides between a
// fallback string and an error. Transient failures (network error or 5xx)
// are retried exactly once; anything else propagates as ErrUpstream.
func (c *Client) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:         "command",
		Prompt:        prompt,
		MaxTokens:     params.MaxTokens,
		Temperature:   params.Temperature,
		K:             0,
		StopSequences: params.StopSequences,
	})
	if err != nil {
		return "", fmt.Errorf("cohere: failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		text, retryable, err := c.doGenerate(ctx, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (c *Client) doGenerate(ctx context.Context, body []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("cohere: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", true, fmt.Errorf("%w: provider returned status %d", ErrUpstream, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		// 4xx means our request is at fault; retrying cannot help.
		return "", false, fmt.Errorf("%w: provider returned status %d: %s", ErrUpstream, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", false, fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
	}

	if len(parsed.Generations) == 0 {
		return "", false, nil
	}
	return strings.TrimSpace(parsed.Generations[0].Text), false, nil
}
