package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"study_notes/generator"
)

const DefaultAPIKeyEnv = "GROQ_API_KEY"

// Config is the optional JSON configuration file.
type Config struct {
	LLM              *LLMConfig `json:"llm,omitempty"`
	TimeoutSeconds   int        `json:"timeout_seconds,omitempty"`
	MaxResponseBytes int64      `json:"max_response_bytes,omitempty"`
	HTMLOutput       bool       `json:"html_output,omitempty"`
}

// LLMConfig selects the chat-completion provider and its credentials.
// base_url is the API root (e.g. https://api.groq.com/openai/v1) for every
// provider and /chat/completions is appended to it; the groq/http provider
// also accepts the full endpoint URL.
type LLMConfig struct {
	Provider    string   `json:"provider,omitempty"`
	Model       string   `json:"model,omitempty"`
	APIKey      string   `json:"api_key,omitempty"`
	APIKeyEnv   string   `json:"api_key_env,omitempty"`
	BaseURL     string   `json:"base_url,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
}

// DefaultConfig targets Groq with the key taken from GROQ_API_KEY.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads JSON config from disk. A missing file is not an error;
// the defaults are returned instead.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TimeoutSeconds < 0 || cfg.MaxResponseBytes < 0 {
		return Config{}, errors.New("timeout_seconds and max_response_bytes must not be negative")
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LLM == nil {
		c.LLM = &LLMConfig{}
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = generator.DefaultProvider
	}
	if c.LLM.Model == "" {
		c.LLM.Model = generator.DefaultModel
	}
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = DefaultAPIKeyEnv
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = int(generator.DefaultTimeout / time.Second)
	}
}

// APIKey returns llm.api_key, falling back to the environment variable
// named by llm.api_key_env.
func (c Config) APIKey() string {
	if c.LLM == nil {
		return os.Getenv(DefaultAPIKeyEnv)
	}
	if c.LLM.APIKey != "" {
		return c.LLM.APIKey
	}
	return os.Getenv(c.LLM.APIKeyEnv)
}

// Settings converts the config into what generator.NewLLM expects.
func (c Config) Settings() *generator.LLMSettings {
	llm := c.LLM
	if llm == nil {
		llm = &LLMConfig{}
	}
	return &generator.LLMSettings{
		Provider:         llm.Provider,
		Model:            llm.Model,
		APIKey:           c.APIKey(),
		BaseURL:          llm.BaseURL,
		Temperature:      llm.Temperature,
		MaxTokens:        llm.MaxTokens,
		Timeout:          time.Duration(c.TimeoutSeconds) * time.Second,
		MaxResponseBytes: c.MaxResponseBytes,
	}
}
