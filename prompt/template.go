// Package prompt implements the prompt-templating half of the curation
// pipeline: built-in default templates, project-scoped overrides,
// placeholder substitution, and one builder per LLM use case.
package prompt

import "context"

// PromptType identifies a prompt use case. Values match the type strings
// stored alongside project overrides.
type PromptType string

const (
	TypeQuestion          PromptType = "question"
	TypeDatasetEvaluation PromptType = "datasetEvaluation"
	TypeDistillTags       PromptType = "distillTags"
	TypeDistillQuestions  PromptType = "distillQuestions"
	TypeLabelRevise       PromptType = "labelRevise"
	TypeGAGeneration      PromptType = "gaGeneration"
	TypeDataClean         PromptType = "dataClean"
)

// Language selects the template language.
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
)

// ParseLanguage normalizes the language spellings used across the app
// ("en", "zh", "zh-CN", "中文"). Anything not recognizably English is
// Chinese, matching the original behavior of the settings UI.
func ParseLanguage(s string) Language {
	switch s {
	case "en", "EN", "english", "English":
		return LangEN
	default:
		return LangZH
	}
}

// Template keys. One key can exist in both languages; together with the
// prompt type and language a key identifies exactly one default template
// and at most one active override.
const (
	KeyQuestionPrompt          = "QUESTION_PROMPT"
	KeyGAQuestionPrompt        = "GA_QUESTION_PROMPT"
	KeyDatasetEvaluationPrompt = "DATASET_EVALUATION_PROMPT"
	KeyDistillTagsPrompt       = "DISTILL_TAGS_PROMPT"
	KeyDistillQuestionsPrompt  = "DISTILL_QUESTIONS_PROMPT"
	KeyLabelRevisePrompt       = "LABEL_REVISE_PROMPT"
	KeyGAGenerationPrompt      = "GA_GENERATION_PROMPT"
	KeyDataCleanPrompt         = "DATA_CLEAN_PROMPT"
)

// TemplateKey identifies one template.
type TemplateKey struct {
	Type PromptType
	Key  string
	Lang Language
}

// Override is a project-scoped template customization. Overrides are
// mutated by an external settings UI and read-only here.
type Override struct {
	ProjectID string     `json:"project_id"`
	Type      PromptType `json:"prompt_type"`
	Key       string     `json:"prompt_key"`
	Lang      Language   `json:"language"`
	Content   string     `json:"content"`
	IsActive  bool       `json:"is_active"`
}

// OverrideStore looks up project-scoped template overrides. A nil result
// with nil error means no override exists for the key.
type OverrideStore interface {
	GetOverride(ctx context.Context, projectID string, typ PromptType, key string, lang Language) (*Override, error)
}
