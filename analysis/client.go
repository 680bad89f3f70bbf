// Package analysis sends structured documentation to a large language
// model and decodes its responses. The model is treated as a black box
// that may be slow or may fail; every failure surfaces as a single
// classified analysis error. There is no retry and no timeout policy
// beyond what the injected HTTP client carries.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/doclens/doclens/docerrors"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	defaultModel     = "claude-sonnet-4-20250514"
	anthropicVersion = "2023-06-01"
	messagesPath     = "/v1/messages"
)

// Request is one completion request to the model.
type Request struct {
	Prompt    string
	MaxTokens int
}

// Client is the minimal completion surface the analyzer depends on.
type Client interface {
	// Complete sends a single-turn prompt and returns the model's text.
	Complete(ctx context.Context, req Request) (string, error)
}

// AnthropicClient talks to the Anthropic messages API over HTTP.
type AnthropicClient struct {
	apiKey    string
	model     string
	baseURL   string
	userAgent string
	client    *http.Client
}

// ClientOption configures an AnthropicClient.
type ClientOption func(*AnthropicClient)

// WithModel overrides the default model.
func WithModel(model string) ClientOption {
	return func(c *AnthropicClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL overrides the API base URL. Useful for tests and proxies.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *AnthropicClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient supplies the underlying HTTP client, including any
// timeout policy.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *AnthropicClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithUserAgent sets the User-Agent header on outgoing requests.
func WithUserAgent(ua string) ClientOption {
	return func(c *AnthropicClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewAnthropicClient builds a client for the given API key.
func NewAnthropicClient(apiKey string, opts ...ClientOption) (*AnthropicClient, error) {
	if apiKey == "" {
		return nil, &docerrors.ConfigError{
			Option:  "api_key",
			Message: "an Anthropic API key is required",
		}
	}
	c := &AnthropicClient{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Model returns the model name requests are sent with.
func (c *AnthropicClient) Model() string { return c.model }

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Complete implements Client.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	if req.MaxTokens <= 0 {
		req.MaxTokens = 1024
	}
	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		Messages:  []message{{Role: "user", Content: req.Prompt}},
	})
	if err != nil {
		return "", &docerrors.AnalysisError{
			Operation: "complete",
			Message:   "encoding request",
			Cause:     err,
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return "", &docerrors.AnalysisError{
			Operation: "complete",
			Message:   "building request",
			Cause:     err,
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", &docerrors.AnalysisError{
			Operation: "complete",
			Message:   "calling model API",
			Cause:     err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &docerrors.AnalysisError{
			Operation: "complete",
			Message:   "reading response",
			Cause:     err,
		}
	}

	var decoded messagesResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", &docerrors.AnalysisError{
			Operation: "complete",
			Message:   fmt.Sprintf("decoding response (status %d)", resp.StatusCode),
			Cause:     err,
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("model API returned status %d", resp.StatusCode)
		if decoded.Error != nil {
			msg = fmt.Sprintf("%s: %s", msg, decoded.Error.Message)
		}
		return "", &docerrors.AnalysisError{
			Operation: "complete",
			Message:   msg,
		}
	}

	for _, block := range decoded.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", &docerrors.AnalysisError{
		Operation: "complete",
		Message:   "model response contained no text content",
	}
}

var _ Client = (*AnthropicClient)(nil)
