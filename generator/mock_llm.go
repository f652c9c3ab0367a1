package generator

import (
	"context"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	topic := strings.TrimSuffix(strings.TrimPrefix(prompt.User, topicPrefix), topicSuffix)
	var sb strings.Builder
	sb.WriteString("Placeholder explanation for ")
	sb.WriteString(topic)
	sb.WriteString(".")
	return sb.String(), nil
}
