package prompt

import "context"

// GAGenerationParams are the inputs for genre/audience pair generation.
type GAGenerationParams struct {
	// Text is the source text to generate framings for.
	Text string
}

// GAGeneration builds the genre/audience pair generation prompt.
func (b *Builder) GAGeneration(ctx context.Context, projectID string, lang Language, p GAGenerationParams) string {
	tpl := b.template(ctx, projectID, TypeGAGeneration, KeyGAGenerationPrompt, lang)
	return Render(tpl, Values{"text": p.Text})
}
