package prompt

import (
	"context"
	"strings"
)

// DistilledContentSentinel replaces the chunk content in evaluation
// prompts when no original text exists. Downstream validation treats the
// sentinel as a valid no-reference mode, not missing data. The string is
// part of the template contract (the evaluation notes reference it) and
// must match what the distillation flow stores as the chunk name.
const DistilledContentSentinel = "Distilled Content - 没有原始文本参考"

// distilledChunkMarker flags a chunk as synthetically distilled content.
const distilledChunkMarker = "Distilled Content"

// EvaluationParams are the inputs for a dataset quality evaluation prompt.
type EvaluationParams struct {
	// ChunkContent is the original text chunk the Q&A was generated from.
	// Empty or distilled content is replaced with the sentinel.
	ChunkContent string

	// Distilled marks the record as distilled content regardless of what
	// ChunkContent holds.
	Distilled bool

	Question string
	Answer   string
}

// Evaluation builds the dataset quality evaluation prompt.
func (b *Builder) Evaluation(ctx context.Context, projectID string, lang Language, p EvaluationParams) string {
	chunk := p.ChunkContent
	if p.Distilled || strings.TrimSpace(chunk) == "" || strings.Contains(chunk, distilledChunkMarker) {
		chunk = DistilledContentSentinel
	}

	tpl := b.template(ctx, projectID, TypeDatasetEvaluation, KeyDatasetEvaluationPrompt, lang)
	return Render(tpl, Values{
		"chunkContent": chunk,
		"question":     p.Question,
		"answer":       p.Answer,
	})
}
