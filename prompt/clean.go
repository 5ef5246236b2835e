package prompt

import (
	"context"
	"unicode/utf8"
)

// DataCleanParams are the inputs for a data cleaning prompt.
type DataCleanParams struct {
	// Text is the raw chunk text to clean.
	Text string
}

// DataClean builds the data cleaning prompt. The cleaned text comes back
// as plain prose, so this use case has no extraction stage downstream.
func (b *Builder) DataClean(ctx context.Context, projectID string, lang Language, p DataCleanParams) string {
	tpl := b.template(ctx, projectID, TypeDataClean, KeyDataCleanPrompt, lang)
	return Render(tpl, Values{
		"textLength": utf8.RuneCountInString(p.Text),
		"text":       p.Text,
	})
}
