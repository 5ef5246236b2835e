package prompt

import (
	"context"
	"strings"

	"github.com/amazing83/easy-dataset/dataset"
)

// defaultDistillCount is the tag/question count used when none is given.
const defaultDistillCount = 10

// DistillTagsParams are the inputs for sub-tag distillation.
type DistillTagsParams struct {
	// TagPath is the full chain to the parent tag ("知识库->体育").
	// Empty falls back to ParentTag.
	TagPath string

	// ParentTag is the topic to generate sub-tags for.
	ParentTag string

	// ExistingTags are already-created sub-tags the model must not repeat.
	ExistingTags []string

	// Count is the number of sub-tags to request. Zero or negative uses
	// the default.
	Count int
}

// DistillTags builds the sub-tag distillation prompt.
func (b *Builder) DistillTags(ctx context.Context, projectID string, lang Language, p DistillTagsParams) string {
	count := p.Count
	if count <= 0 {
		count = defaultDistillCount
	}

	path := p.TagPath
	if path == "" {
		path = p.ParentTag
	}

	var existingText string
	if len(p.ExistingTags) > 0 {
		if lang == LangEN {
			existingText = "Existing sub-tags include: " + strings.Join(p.ExistingTags, ", ") + ", please do not generate duplicate tags."
		} else {
			existingText = "已有的子标签包括：" + strings.Join(p.ExistingTags, "、") + "，请不要生成与这些重复的标签。"
		}
	}

	tpl := b.template(ctx, projectID, TypeDistillTags, KeyDistillTagsPrompt, lang)
	return Render(tpl, Values{
		"parentTag":        p.ParentTag,
		"count":            count,
		"tagPath":          p.TagPath,
		"path":             path,
		"existingTagsText": existingText,
	})
}

// DistillQuestionsParams are the inputs for tag-driven question
// distillation.
type DistillQuestionsParams struct {
	// TagPath is the full chain to the current tag ("体育->足球->足球先生").
	TagPath string

	// CurrentTag is the leaf tag to generate questions for. A leading
	// ordinal is stripped before substitution.
	CurrentTag string

	// Count is the number of questions to request. Zero or negative uses
	// the default.
	Count int

	// ExistingQuestions are already-generated questions the model must
	// not repeat.
	ExistingQuestions []string
}

// DistillQuestions builds the tag-driven question distillation prompt.
func (b *Builder) DistillQuestions(ctx context.Context, projectID string, lang Language, p DistillQuestionsParams) string {
	count := p.Count
	if count <= 0 {
		count = defaultDistillCount
	}

	currentTag := dataset.RemoveLeadingOrdinal(p.CurrentTag)

	var existingText string
	if len(p.ExistingQuestions) > 0 {
		var sb strings.Builder
		if lang == LangEN {
			sb.WriteString("Existing questions include: \n")
		} else {
			sb.WriteString("已有的问题包括：\n")
		}
		for _, q := range p.ExistingQuestions {
			sb.WriteString("- ")
			sb.WriteString(q)
			sb.WriteString("\n")
		}
		if lang == LangEN {
			sb.WriteString("Please do not generate duplicate or highly similar questions.")
		} else {
			sb.WriteString("请不要生成与这些重复或高度相似的问题。")
		}
		existingText = sb.String()
	}

	tpl := b.template(ctx, projectID, TypeDistillQuestions, KeyDistillQuestionsPrompt, lang)
	return Render(tpl, Values{
		"currentTag":        currentTag,
		"count":             count,
		"tagPath":           p.TagPath,
		"existingQuestions": existingText,
	})
}
