package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazing83/easy-dataset/dataset"
	"github.com/amazing83/easy-dataset/llm"
	_ "github.com/amazing83/easy-dataset/llm/providers" // Register providers
	"github.com/amazing83/easy-dataset/model"
	"github.com/amazing83/easy-dataset/prompt"
)

// newTestService wires a service against a fake OpenAI-compatible server
// that returns the given content for every completion.
func newTestService(t *testing.T, content string, opts ...ServiceOption) *Service {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": "test-model",
			"choices": []map[string]any{
				{
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]int{"prompt_tokens": 5, "completion_tokens": 5, "total_tokens": 10},
		})
	}))
	t.Cleanup(server.Close)

	caps := make(map[model.Capability]*model.CapabilityConfig)
	for _, c := range []model.Capability{
		model.CapabilityEvaluation,
		model.CapabilityQuestion,
		model.CapabilityDistill,
		model.CapabilityRevision,
		model.CapabilityGA,
		model.CapabilityClean,
	} {
		caps[c] = &model.CapabilityConfig{Preferred: []string{"test-model"}}
	}
	registry := model.NewRegistry(caps, map[string]*model.EndpointConfig{
		"test-model": {Provider: "ollama", URL: server.URL, Model: "test-model"},
	})

	builder := prompt.NewBuilder(nil, nil)
	client := llm.NewClient(registry)

	return NewService(builder, client, "test-project", prompt.LangZH, opts...)
}

func TestService_Evaluate(t *testing.T) {
	svc := newTestService(t, "评估如下：\n```json\n{\"score\": 4.3, \"evaluation\": \"答案准确完整\"}\n```")

	result, err := svc.Evaluate(context.Background(), EvaluateInput{
		ChunkContent: "原始文本",
		Question:     "什么是微积分？",
		Answer:       "微积分是研究变化的数学分支。",
	})

	require.NoError(t, err)
	assert.Equal(t, 4.5, result.Score)
	assert.Equal(t, "答案准确完整", result.Evaluation)
}

func TestService_Evaluate_ScoreOutOfRange(t *testing.T) {
	svc := newTestService(t, `{"score": 7, "evaluation": "x"}`)

	_, err := svc.Evaluate(context.Background(), EvaluateInput{
		Question: "q",
		Answer:   "a",
	})

	require.Error(t, err)
	assert.True(t, dataset.IsValidation(err, ""))
}

func TestService_Evaluate_NoJSONPayload(t *testing.T) {
	svc := newTestService(t, "I could not evaluate this record.")

	_, err := svc.Evaluate(context.Background(), EvaluateInput{
		Question: "q",
		Answer:   "a",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluation response")
}

func TestService_GenerateQuestions(t *testing.T) {
	svc := newTestService(t, "生成的问题：\n```json\n[\"问题一？\", \"问题二？\"]\n```")

	questions, err := svc.GenerateQuestions(context.Background(), QuestionInput{
		Text:   "源文本",
		Number: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"问题一？", "问题二？"}, questions)
}

func TestService_GenerateQuestions_UnderCount(t *testing.T) {
	svc := newTestService(t, `["问题一？", "问题二？"]`)

	_, err := svc.GenerateQuestions(context.Background(), QuestionInput{
		Text:   "源文本",
		Number: 3,
	})

	require.Error(t, err)
	assert.True(t, dataset.IsValidation(err, dataset.KindInsufficientQuestions))
}

func TestService_GenerateGA(t *testing.T) {
	pairs := make([]map[string]map[string]string, 5)
	for i := range pairs {
		pairs[i] = map[string]map[string]string{
			"genre":    {"title": "体裁" + string(rune('A'+i)), "description": "描述"},
			"audience": {"title": "受众" + string(rune('A'+i)), "description": "描述"},
		}
	}
	payload, err := json.Marshal(pairs)
	require.NoError(t, err)

	svc := newTestService(t, string(payload))

	got, err := svc.GenerateGA(context.Background(), "源文本")
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "体裁A", got[0].Genre.Title)
}

func TestService_GenerateGA_WrongCount(t *testing.T) {
	svc := newTestService(t, `[{"genre": {"title": "t", "description": "d"}, "audience": {"title": "t", "description": "d"}}]`)

	_, err := svc.GenerateGA(context.Background(), "源文本")
	require.Error(t, err)
	assert.True(t, dataset.IsValidation(err, dataset.KindMalformedGAPairs))
}

func TestService_DistillTags(t *testing.T) {
	svc := newTestService(t, "```json\n[\"2.1 足球\", \"2.2 篮球\"]\n```")

	tags, err := svc.DistillTags(context.Background(), prompt.DistillTagsParams{
		ParentTag: "体育",
		Count:     2,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"2.1 足球", "2.2 篮球"}, tags)
}

func TestService_DistillQuestions_ToleratesUnderCount(t *testing.T) {
	svc := newTestService(t, `["谁是足球先生？", "足球先生如何评选？"]`)

	questions, err := svc.DistillQuestions(context.Background(), prompt.DistillQuestionsParams{
		CurrentTag: "足球先生",
		Count:      5,
	})

	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestService_ReviseTree(t *testing.T) {
	svc := newTestService(t, "```json\n[{\"label\": \"1 体育\", \"child\": [{\"label\": \"1.1 足球\"}]}]\n```")

	tree, err := svc.ReviseTree(context.Background(), prompt.LabelReviseParams{
		Text: "# 目录",
	})

	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "1 体育", tree[0].Label)
	require.Len(t, tree[0].Child, 1)
	assert.Equal(t, "1.1 足球", tree[0].Child[0].Label)
}

func TestService_Clean(t *testing.T) {
	svc := newTestService(t, "\n清洗后的文本。\n")

	cleaned, err := svc.Clean(context.Background(), "原始   文本")
	require.NoError(t, err)
	assert.Equal(t, "清洗后的文本。", cleaned)
}

func TestService_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	svc := newTestService(t, `{"score": 3.0, "evaluation": "ok"}`, WithMetrics(metrics))

	_, err := svc.Evaluate(context.Background(), EvaluateInput{Question: "q", Answer: "a"})
	require.NoError(t, err)

	ok := promtestutil.ToFloat64(metrics.operations.WithLabelValues("evaluate", "ok"))
	assert.Equal(t, 1.0, ok)

	// A validation failure counts as invalid, not error.
	svcBad := newTestService(t, `{"score": 9, "evaluation": "x"}`, WithMetrics(metrics))
	_, err = svcBad.Evaluate(context.Background(), EvaluateInput{Question: "q", Answer: "a"})
	require.Error(t, err)

	invalid := promtestutil.ToFloat64(metrics.operations.WithLabelValues("evaluate", "invalid"))
	assert.Equal(t, 1.0, invalid)
}
