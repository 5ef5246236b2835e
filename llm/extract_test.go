package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_FencedBlock(t *testing.T) {
	content := "Here is my evaluation:\n```json\n{\"score\": 4.5, \"evaluation\": \"准确\"}\n```\nHope that helps!"

	raw, err := ExtractJSON(content)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, 4.5, result["score"])
}

func TestExtractJSON_FenceWithoutLanguageTag(t *testing.T) {
	content := "```\n{\"score\": 3}\n```"

	raw, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 3}`, string(raw))
}

func TestExtractJSON_BareObjectWithProse(t *testing.T) {
	content := `Sure! The result is {"score": 2.5, "evaluation": "partially correct"} as requested.`

	raw, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 2.5, "evaluation": "partially correct"}`, string(raw))
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	content := `{"outer": {"inner": {"deep": 1}}, "list": [1, 2]}`

	raw, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.JSONEq(t, content, string(raw))
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	content := `{"evaluation": "uses } and { inside text", "score": 4}`

	raw, err := ExtractJSON(content)
	require.NoError(t, err)

	var result struct {
		Evaluation string `json:"evaluation"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "uses } and { inside text", result.Evaluation)
}

func TestExtractJSON_EscapedQuotes(t *testing.T) {
	content := `{"evaluation": "he said \"yes\" twice", "score": 5}`

	raw, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}

func TestExtractJSON_TrailingComma(t *testing.T) {
	content := "```json\n{\"score\": 4, \"evaluation\": \"fine\",}\n```"

	raw, err := ExtractJSON(content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 4, "evaluation": "fine"}`, string(raw))
}

func TestExtractJSON_LineComments(t *testing.T) {
	content := `{
		"score": 4, // quality is high
		"evaluation": "see https://example.com/doc" // keep the URL
	}`

	raw, err := ExtractJSON(content)
	require.NoError(t, err)

	var result struct {
		Score      float64 `json:"score"`
		Evaluation string  `json:"evaluation"`
	}
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, 4.0, result.Score)
	assert.Equal(t, "see https://example.com/doc", result.Evaluation)
}

func TestExtractJSON_NoPayload(t *testing.T) {
	_, err := ExtractJSON("I'm sorry, I cannot answer that.")
	require.Error(t, err)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestExtractJSON_UnbalancedSpan(t *testing.T) {
	_, err := ExtractJSON(`{"score": 4, "evaluation": "truncated`)
	require.Error(t, err)

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestExtractJSONArray(t *testing.T) {
	content := "Generated questions:\n```json\n[\"问题一？\", \"问题二？\"]\n```"

	raw, err := ExtractJSONArray(content)
	require.NoError(t, err)

	var questions []string
	require.NoError(t, json.Unmarshal(raw, &questions))
	assert.Equal(t, []string{"问题一？", "问题二？"}, questions)
}

func TestExtractJSONArray_BareWithProse(t *testing.T) {
	content := `The tags are ["1.1 品牌", "1.2 价格"] based on the parent.`

	raw, err := ExtractJSONArray(content)
	require.NoError(t, err)
	assert.JSONEq(t, `["1.1 品牌", "1.2 价格"]`, string(raw))
}

func TestExtractJSONArray_NestedObjects(t *testing.T) {
	content := "```json\n[{\"label\": \"1 汽车\", \"child\": [{\"label\": \"1.1 品牌\"}]}]\n```"

	raw, err := ExtractJSONArray(content)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}

func TestExtractJSONArray_TrailingCommaMultiline(t *testing.T) {
	content := `[
		"first question?",
		"second question?",
	]`

	raw, err := ExtractJSONArray(content)
	require.NoError(t, err)
	assert.JSONEq(t, `["first question?", "second question?"]`, string(raw))
}

func TestExtractJSONArray_NestedInObject(t *testing.T) {
	// The first balanced array wins even when it is nested in an object.
	raw, err := ExtractJSONArray(`{"questions": ["q"]}`)
	require.NoError(t, err)
	assert.JSONEq(t, `["q"]`, string(raw))
}

func TestStripLineComment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain comment", `"score": 4, // high`, `"score": 4,`},
		{"url preserved", `"link": "http://x.com/a"`, `"link": "http://x.com/a"`},
		{"no comment", `"score": 4,`, `"score": 4,`},
		{"slashes inside string", `"path": "a//b"`, `"path": "a//b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripLineComment(tt.in))
		})
	}
}
