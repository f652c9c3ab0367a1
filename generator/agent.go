package generator

import (
	"context"
	"errors"
)

// Agent 负责把主题转换成提示词并取回解释。
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Explain asks the model about one topic. The reply is returned untouched.
func (a *Agent) Explain(ctx context.Context, topic string) (string, error) {
	return a.llm.Complete(ctx, BuildTopicPrompt(topic))
}
