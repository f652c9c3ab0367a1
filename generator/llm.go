package generator

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultProvider = "groq"
	DefaultModel    = "llama3-8b-8192"
	DefaultBaseURL  = "https://api.groq.com/openai/v1"
	DefaultEndpoint = DefaultBaseURL + chatCompletionsPath
	DefaultTimeout  = 30 * time.Second

	chatCompletionsPath = "/chat/completions"
)

// ErrNoContent 表示响应中没有可用的 choices[0].message.content。
var ErrNoContent = errors.New("no content in response")

// LLMClient 抽象大模型客户端，便于替换/Mock。
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL is the API root (".../v1"); every provider appends
	// /chat/completions itself.
	BaseURL string
	// Temperature/MaxTokens are sent only when set.
	Temperature *float64
	MaxTokens   int
	Timeout     time.Duration
	// MaxResponseBytes caps the buffered response body; 0 means no limit.
	MaxResponseBytes int64
}

// NewLLM picks the client implementation for s.Provider.
func NewLLM(s *LLMSettings) (LLMClient, error) {
	if s == nil {
		return nil, errors.New("llm config is nil")
	}
	switch s.Provider {
	case "", "groq", "http":
		return NewHTTPLLM(s)
	case "openai":
		return NewOpenAILLMFromConfig(s)
	case "mock":
		return MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", s.Provider)
	}
}
