package generator

const (
	topicPrefix = "Provide a detailed explanation for the topic: "
	topicSuffix = ". Include relevant information."
)

// Prompt 表示发送给 LLM 的消息集合。
type Prompt struct {
	System string
	User   string
}

// BuildTopicPrompt 生成单个主题的提示词。
func BuildTopicPrompt(topic string) Prompt {
	return Prompt{User: topicPrefix + topic + topicSuffix}
}

// Messages flattens the prompt into chat messages; the system message is
// emitted only when set.
func (p Prompt) Messages() []Message {
	var msgs []Message
	if p.System != "" {
		msgs = append(msgs, Message{Role: "system", Content: p.System})
	}
	return append(msgs, Message{Role: "user", Content: p.User})
}
