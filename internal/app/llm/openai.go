package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// HTTPConfig holds the settings for the OpenAI-compatible HTTP client.
type HTTPConfig struct {
	// BaseURL of the service, without the /v1 suffix.
	BaseURL string

	// APIKey sent as a Bearer token. May be empty for unauthenticated endpoints.
	APIKey string

	// Model name used for every completion request.
	Model string

	// Timeout for one completion call. The caller's context may impose an
	// earlier deadline.
	Timeout time.Duration
}

// HTTPClient implements Client against an OpenAI-compatible
// /v1/chat/completions endpoint. Safe for concurrent use.
type HTTPClient struct {
	config     HTTPConfig
	httpClient *http.Client
}

// NewHTTPClient builds an HTTPClient, filling in defaults for zero values.
func NewHTTPClient(config HTTPConfig) *HTTPClient {
	if config.BaseURL == "" {
		config.BaseURL = "https://api.openai.com"
	}
	if config.Model == "" {
		config.Model = "gpt-4o"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &HTTPClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// chatRequest is the request body for /v1/chat/completions.
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// chatResponse is the subset of the completion response the client consumes.
type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// apiError is the error envelope returned by OpenAI-compatible services.
type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the full ordered message list and returns the first choice's
// content. Failures are classified: transport errors map to Unavailable,
// context expiry to Timeout, and upstream refusals to Rejected.
func (c *HTTPClient) Complete(ctx context.Context, messages []Message) (string, error) {
	reqBody := chatRequest{
		Model:    c.config.Model,
		Messages: messages,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", &ClientError{Type: ErrTypeRejected, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnavailable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", ErrTimeout
		}
		return "", &ClientError{Type: ErrTypeUnavailable, Message: "model service is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var upstreamErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&upstreamErr); err == nil && upstreamErr.Error.Message != "" {
			return "", &ClientError{Type: ErrTypeRejected, Message: upstreamErr.Error.Message}
		}
		return "", &ClientError{Type: ErrTypeRejected, Message: "completion request failed: " + resp.Status}
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeRejected, Message: "failed to decode response", Cause: err}
	}

	if len(result.Choices) == 0 {
		return "", &ClientError{Type: ErrTypeRejected, Message: "completion response contained no choices"}
	}

	return result.Choices[0].Message.Content, nil
}
