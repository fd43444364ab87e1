package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"financial-coach/internal/config"
	"financial-coach/internal/models"

	"google.golang.org/genai"
)

// Client sends single-turn prompts to a Gemini model. A client built without an API
// key stays usable and fails every call with ErrNotConfigured.
type Client struct {
	cfg    config.LLMConfig
	models *genai.Models
}

// NewClient builds the collaborator client from explicit configuration
func NewClient(ctx context.Context, cfg config.LLMConfig) (*Client, error) {
	c := &Client{cfg: cfg}
	if !cfg.IsConfigured() {
		return c, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.models = client.Models

	return c, nil
}

// IsConfigured reports whether calls will reach the provider
func (c *Client) IsConfigured() bool {
	return c.models != nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.cfg.Model
}

// Complete makes exactly one attempt bounded by the configured timeout
func (c *Client) Complete(ctx context.Context, prompt models.Prompt) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNotConfigured
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	generateConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(prompt.Temperature),
		MaxOutputTokens: prompt.MaxTokens,
	}
	if prompt.System != "" {
		generateConfig.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt.User), generateConfig)
	if err != nil {
		return "", classify(ctx, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", NewEmptyCompletionError()
	}

	return text, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &CompletionError{Kind: KindTimeout, Message: "request timed out", Err: err}
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &CompletionError{Kind: KindHTTP, StatusCode: apiErr.Code, Message: truncate(apiErr.Message), Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &CompletionError{Kind: KindHTTP, StatusCode: apiErrPtr.Code, Message: truncate(apiErrPtr.Message), Err: err}
	}

	return &CompletionError{Kind: KindTransport, Message: truncate(err.Error()), Err: err}
}
