package generator

import "github.com/tidwall/gjson"

// ExtractContent returns choices[0].message.content from a chat-completion
// response. It never fails: any shape mismatch yields Found=false.
func ExtractContent(raw []byte) Extraction {
	if !gjson.ValidBytes(raw) {
		return Extraction{Reason: "malformed json"}
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return Extraction{Reason: "response is not an object"}
	}
	choices := root.Get("choices")
	if !choices.IsArray() {
		return Extraction{Reason: "missing choices"}
	}
	first := choices.Get("0")
	if !first.Exists() {
		return Extraction{Reason: "empty choices"}
	}
	msg := first.Get("message")
	if !msg.IsObject() {
		return Extraction{Reason: "missing message"}
	}
	content := msg.Get("content")
	if content.Type != gjson.String {
		return Extraction{Reason: "missing content"}
	}
	return Extraction{Content: content.String(), Found: true}
}
