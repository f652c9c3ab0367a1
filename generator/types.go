package generator

// Message is one chat message as it appears on the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RequestOptions carries the optional chat-completion parameters.
type RequestOptions struct {
	Temperature *float64
	MaxTokens   int
}

// Extraction is the outcome of looking for the reply text in a response body.
// Found is false when the body was malformed or had an unexpected shape;
// Reason then says what was missing.
type Extraction struct {
	Content string
	Found   bool
	Reason  string
}
