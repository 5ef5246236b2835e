package prompt

// Registry holds the built-in default templates. It is populated once at
// construction and never mutated, so it is safe for concurrent use.
type Registry struct {
	templates map[TemplateKey]string
}

// NewRegistry creates a registry from an explicit template map. The map is
// copied; later changes to the argument do not affect the registry.
func NewRegistry(templates map[TemplateKey]string) *Registry {
	m := make(map[TemplateKey]string, len(templates))
	for k, v := range templates {
		m[k] = v
	}
	return &Registry{templates: m}
}

// DefaultRegistry returns a registry with the built-in templates for every
// prompt type in both languages.
func DefaultRegistry() *Registry {
	return NewRegistry(map[TemplateKey]string{
		{TypeQuestion, KeyQuestionPrompt, LangZH}:                   questionPromptZH,
		{TypeQuestion, KeyQuestionPrompt, LangEN}:                   questionPromptEN,
		{TypeQuestion, KeyGAQuestionPrompt, LangZH}:                 gaQuestionPromptZH,
		{TypeQuestion, KeyGAQuestionPrompt, LangEN}:                 gaQuestionPromptEN,
		{TypeDatasetEvaluation, KeyDatasetEvaluationPrompt, LangZH}: datasetEvaluationPromptZH,
		{TypeDatasetEvaluation, KeyDatasetEvaluationPrompt, LangEN}: datasetEvaluationPromptEN,
		{TypeDistillTags, KeyDistillTagsPrompt, LangZH}:             distillTagsPromptZH,
		{TypeDistillTags, KeyDistillTagsPrompt, LangEN}:             distillTagsPromptEN,
		{TypeDistillQuestions, KeyDistillQuestionsPrompt, LangZH}:   distillQuestionsPromptZH,
		{TypeDistillQuestions, KeyDistillQuestionsPrompt, LangEN}:   distillQuestionsPromptEN,
		{TypeLabelRevise, KeyLabelRevisePrompt, LangZH}:             labelRevisePromptZH,
		{TypeLabelRevise, KeyLabelRevisePrompt, LangEN}:             labelRevisePromptEN,
		{TypeGAGeneration, KeyGAGenerationPrompt, LangZH}:           gaGenerationPromptZH,
		{TypeGAGeneration, KeyGAGenerationPrompt, LangEN}:           gaGenerationPromptEN,
		{TypeDataClean, KeyDataCleanPrompt, LangZH}:                 dataCleanPromptZH,
		{TypeDataClean, KeyDataCleanPrompt, LangEN}:                 dataCleanPromptEN,
	})
}

// Lookup returns the default template for a key.
func (r *Registry) Lookup(key TemplateKey) (string, bool) {
	tpl, ok := r.templates[key]
	return tpl, ok
}

// Keys returns all registered template keys. Order is unspecified.
func (r *Registry) Keys() []TemplateKey {
	keys := make([]TemplateKey, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	return keys
}
