package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amazing83/easy-dataset/dataset"
)

func defaultBuilder() *Builder {
	return NewBuilder(nil, nil)
}

func TestEvaluation(t *testing.T) {
	b := defaultBuilder()

	got := b.Evaluation(context.Background(), "", LangEN, EvaluationParams{
		ChunkContent: "The mitochondria is the powerhouse of the cell.",
		Question:     "What is the mitochondria?",
		Answer:       "The powerhouse of the cell.",
	})

	assert.Contains(t, got, "The mitochondria is the powerhouse of the cell.")
	assert.Contains(t, got, "What is the mitochondria?")
	assert.NotContains(t, got, "{{chunkContent}}")
	assert.NotContains(t, got, "{{question}}")
	assert.NotContains(t, got, "{{answer}}")
}

func TestEvaluation_DistilledSentinel(t *testing.T) {
	b := defaultBuilder()

	tests := []struct {
		name   string
		params EvaluationParams
	}{
		{"empty chunk", EvaluationParams{ChunkContent: "", Question: "q", Answer: "a"}},
		{"whitespace chunk", EvaluationParams{ChunkContent: "   ", Question: "q", Answer: "a"}},
		{"distilled flag", EvaluationParams{ChunkContent: "real text", Distilled: true, Question: "q", Answer: "a"}},
		{"distilled marker in chunk", EvaluationParams{ChunkContent: "Distilled Content - xyz", Question: "q", Answer: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Evaluation(context.Background(), "", LangZH, tt.params)
			assert.Contains(t, got, DistilledContentSentinel)
		})
	}
}

func TestQuestion_DerivedCount(t *testing.T) {
	b := defaultBuilder()

	// 720 runes derive a count of 3
	text := strings.Repeat("字", 720)
	got := b.Question(context.Background(), "", LangEN, QuestionParams{Text: text})

	assert.Contains(t, got, "length: 720 characters")
	assert.Contains(t, got, "no less than 3 high-quality questions")
	assert.Contains(t, got, text)
}

func TestQuestion_ExplicitCount(t *testing.T) {
	b := defaultBuilder()

	got := b.Question(context.Background(), "", LangEN, QuestionParams{Text: "short text", Number: 12})
	assert.Contains(t, got, "no less than 12 high-quality questions")
}

func TestQuestion_GASplice(t *testing.T) {
	b := defaultBuilder()

	params := QuestionParams{
		Text:   "some source text",
		Number: 3,
		GA: GAPair{
			Active:   true,
			Genre:    "Science popularization",
			Audience: "High school students",
		},
	}

	got := b.Question(context.Background(), "", LangEN, params)
	assert.Contains(t, got, "**Target Genre**: Science popularization")
	assert.Contains(t, got, "**Target Audience**: High school students")
	assert.Contains(t, got, "genre-audience perspective")
	assert.NotContains(t, got, "{{gaPrompt}}")
}

func TestQuestion_GAInactive(t *testing.T) {
	b := defaultBuilder()

	got := b.Question(context.Background(), "", LangEN, QuestionParams{
		Text:   "some source text",
		Number: 3,
		GA:     GAPair{Genre: "ignored", Audience: "ignored"},
	})

	// Inactive pairs collapse the GA placeholders to empty strings.
	assert.NotContains(t, got, "Target Genre")
	assert.NotContains(t, got, "genre-audience perspective")
	assert.NotContains(t, got, "{{gaPrompt}}")
	assert.NotContains(t, got, "{{gaPromptNote}}")
	assert.NotContains(t, got, "{{gaPromptCheck}}")
}

func TestDistillTags(t *testing.T) {
	b := defaultBuilder()

	got := b.DistillTags(context.Background(), "", LangEN, DistillTagsParams{
		TagPath:      "知识库->体育",
		ParentTag:    "体育",
		ExistingTags: []string{"1.1 足球", "1.2 篮球"},
		Count:        8,
	})

	assert.Contains(t, got, `generate 8 sub-tags for the parent tag "体育"`)
	assert.Contains(t, got, "The full tag chain is: 知识库->体育")
	assert.Contains(t, got, "1.1 足球")
	assert.Contains(t, got, "1.2 篮球")
}

func TestDistillTags_Defaults(t *testing.T) {
	b := defaultBuilder()

	// No path falls back to the parent tag; no count uses the default.
	got := b.DistillTags(context.Background(), "", LangEN, DistillTagsParams{ParentTag: "体育"})
	assert.Contains(t, got, "generate 10 sub-tags")
	assert.Contains(t, got, "The full tag chain is: 体育")
	assert.NotContains(t, got, "{{existingTagsText}}")
}

func TestDistillQuestions(t *testing.T) {
	b := defaultBuilder()

	got := b.DistillQuestions(context.Background(), "", LangEN, DistillQuestionsParams{
		TagPath:           "体育->足球->足球先生",
		CurrentTag:        "2.3 足球先生",
		Count:             5,
		ExistingQuestions: []string{"谁是第一位足球先生？"},
	})

	// The leading ordinal is stripped before substitution.
	assert.Contains(t, got, `proficient in the field of 足球先生`)
	assert.NotContains(t, got, "2.3 足球先生")
	assert.Contains(t, got, "generate 5 high-quality")
	assert.Contains(t, got, "The complete tag path is: 体育->足球->足球先生")
	assert.Contains(t, got, "谁是第一位足球先生？")
	assert.Contains(t, got, "do not generate duplicate")
}

func TestDistillQuestions_NoExisting(t *testing.T) {
	b := defaultBuilder()

	got := b.DistillQuestions(context.Background(), "", LangEN, DistillQuestionsParams{
		CurrentTag: "足球",
	})
	assert.NotContains(t, got, "{{existingQuestions}}")
	assert.NotContains(t, got, "Existing questions include")
}

func TestLabelRevise(t *testing.T) {
	b := defaultBuilder()

	got := b.LabelRevise(context.Background(), "", LangEN, LabelReviseParams{
		Text: "1 Introduction\n2 Methods",
		ExistingTags: []dataset.TagNode{
			{Label: "1 汽车", Child: []dataset.TagNode{{Label: "1.1 品牌"}}},
		},
		DeletedContent: "3 Legacy chapter",
		NewContent:     "4 New chapter",
	})

	assert.Contains(t, got, `"label": "1 汽车"`)
	assert.Contains(t, got, `"label": "1.1 品牌"`)
	assert.Contains(t, got, "## Deleted Content")
	assert.Contains(t, got, "3 Legacy chapter")
	assert.Contains(t, got, "## New Content")
	assert.Contains(t, got, "4 New chapter")
	assert.Contains(t, got, "1 Introduction")
}

func TestLabelRevise_OmitsEmptySections(t *testing.T) {
	b := defaultBuilder()

	got := b.LabelRevise(context.Background(), "", LangEN, LabelReviseParams{
		Text:         "1 Introduction",
		ExistingTags: []dataset.TagNode{{Label: "1 汽车"}},
	})

	assert.NotContains(t, got, "Deleted Content")
	assert.NotContains(t, got, "New Content")
	assert.NotContains(t, got, "{{deletedContent}}")
	assert.NotContains(t, got, "{{newContent}}")
}

func TestGAGeneration(t *testing.T) {
	b := defaultBuilder()

	got := b.GAGeneration(context.Background(), "", LangEN, GAGenerationParams{Text: "source material"})
	assert.Contains(t, got, "source material")
	assert.NotContains(t, got, "{{text}}")
}

func TestDataClean(t *testing.T) {
	b := defaultBuilder()

	got := b.DataClean(context.Background(), "", LangEN, DataCleanParams{Text: strings.Repeat("字", 100)})
	assert.Contains(t, got, "length: 100 characters")
	assert.NotContains(t, got, "{{text}}")
}

func TestBuilder_OverrideApplied(t *testing.T) {
	store := &stubStore{override: &Override{
		ProjectID: "p1",
		Content:   "CUSTOM: {{text}}",
		IsActive:  true,
	}}
	b := NewBuilder(nil, NewResolver(store))

	got := b.GAGeneration(context.Background(), "p1", LangZH, GAGenerationParams{Text: "素材"})
	assert.Equal(t, "CUSTOM: 素材", got)
}

func TestBuilder_Template(t *testing.T) {
	b := defaultBuilder()

	tpl, err := b.Template(context.Background(), "", TypeQuestion, KeyQuestionPrompt, LangZH)
	require.NoError(t, err)
	assert.Contains(t, tpl, "{{text}}")

	_, err = b.Template(context.Background(), "", TypeQuestion, "NO_SUCH_KEY", LangZH)
	assert.Error(t, err)
}
