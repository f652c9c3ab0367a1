package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContent(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		want   string
		found  bool
		reason string
	}{
		{"ok", `{"choices":[{"message":{"role":"assistant","content":"Plants convert light..."}}]}`, "Plants convert light...", true, ""},
		{"keeps whitespace", `{"choices":[{"message":{"content":"  X\n"}}]}`, "  X\n", true, ""},
		{"empty string content", `{"choices":[{"message":{"content":""}}]}`, "", true, ""},
		{"first choice only", `{"choices":[{"message":{"content":"a"}},{"message":{"content":"b"}}]}`, "a", true, ""},
		{"malformed", `{"choices":[`, "", false, "malformed json"},
		{"empty body", ``, "", false, "malformed json"},
		{"array root", `[1,2]`, "", false, "response is not an object"},
		{"no choices", `{"error":{"message":"invalid api key"}}`, "", false, "missing choices"},
		{"choices not array", `{"choices":{"0":{"message":{"content":"x"}}}}`, "", false, "missing choices"},
		{"empty choices", `{"choices":[]}`, "", false, "empty choices"},
		{"message not object", `{"choices":[{"message":"x"}]}`, "", false, "missing message"},
		{"content null", `{"choices":[{"message":{"content":null}}]}`, "", false, "missing content"},
		{"content number", `{"choices":[{"message":{"content":42}}]}`, "", false, "missing content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractContent([]byte(tc.raw))
			assert.Equal(t, tc.found, got.Found)
			assert.Equal(t, tc.want, got.Content)
			assert.Equal(t, tc.reason, got.Reason)
		})
	}
}
