package generator

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// BuildRequestBody encodes a chat-completion payload:
// {"messages":[...],"model":"..."} followed by any optional parameters.
func BuildRequestBody(model string, prompt Prompt, opts RequestOptions) ([]byte, error) {
	body, err := sjson.SetBytes([]byte(`{}`), "messages", prompt.Messages())
	if err != nil {
		return nil, fmt.Errorf("set messages: %w", err)
	}
	if body, err = sjson.SetBytes(body, "model", model); err != nil {
		return nil, fmt.Errorf("set model: %w", err)
	}
	if opts.Temperature != nil {
		if body, err = sjson.SetBytes(body, "temperature", *opts.Temperature); err != nil {
			return nil, fmt.Errorf("set temperature: %w", err)
		}
	}
	if opts.MaxTokens > 0 {
		if body, err = sjson.SetBytes(body, "max_tokens", opts.MaxTokens); err != nil {
			return nil, fmt.Errorf("set max_tokens: %w", err)
		}
	}
	return body, nil
}
