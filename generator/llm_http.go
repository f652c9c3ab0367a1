package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPLLM talks to an OpenAI-compatible chat-completions endpoint with plain
// net/http and extracts the reply itself, so a bad response only loses that
// one reply.
type HTTPLLM struct {
	Model    string
	Endpoint string
	APIKey   string
	Options  RequestOptions
	// MaxResponseBytes caps the buffered body; 0 means no limit.
	MaxResponseBytes int64

	client *http.Client
}

func NewHTTPLLM(cfg *LLMSettings) (*HTTPLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	endpoint := DefaultEndpoint
	if cfg.BaseURL != "" {
		endpoint = chatCompletionsURL(cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPLLM{
		Model:            model,
		Endpoint:         endpoint,
		APIKey:           cfg.APIKey,
		Options:          RequestOptions{Temperature: cfg.Temperature, MaxTokens: cfg.MaxTokens},
		MaxResponseBytes: cfg.MaxResponseBytes,
		client:           &http.Client{Timeout: timeout},
	}, nil
}

// Post sends one JSON body and returns the whole response body.
func (h *HTTPLLM) Post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.APIKey)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var r io.Reader = resp.Body
	if h.MaxResponseBytes > 0 {
		r = io.LimitReader(resp.Body, h.MaxResponseBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if h.MaxResponseBytes > 0 && int64(len(data)) > h.MaxResponseBytes {
		return nil, fmt.Errorf("response exceeds %d bytes", h.MaxResponseBytes)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("api error (status %s): %s", resp.Status, strings.TrimSpace(string(data)))
	}
	return data, nil
}

func (h *HTTPLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	body, err := BuildRequestBody(h.Model, prompt, h.Options)
	if err != nil {
		return "", err
	}
	raw, err := h.Post(ctx, body)
	if err != nil {
		return "", err
	}
	ext := ExtractContent(raw)
	if !ext.Found {
		return "", fmt.Errorf("%w: %s", ErrNoContent, ext.Reason)
	}
	return ext.Content, nil
}

// chatCompletionsURL joins the API root with /chat/completions. A URL that
// already names the endpoint is kept as is.
func chatCompletionsURL(base string) string {
	base = strings.TrimSuffix(base, "/")
	if strings.HasSuffix(base, chatCompletionsPath) {
		return base
	}
	return base + chatCompletionsPath
}
