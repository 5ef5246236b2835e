package prompt

import (
	"context"
	"unicode/utf8"
)

// questionsPerChars controls the default question count: one question per
// this many characters of source text.
const questionsPerChars = 240

// GAPair is the genre/audience framing for question generation. The
// zero value is the inactive variant; the sub-prompt and its processing
// notes are spliced in only when Active is set.
type GAPair struct {
	Active   bool
	Genre    string
	Audience string
}

// QuestionParams are the inputs for a question generation prompt.
type QuestionParams struct {
	// Text is the source chunk to generate questions from.
	Text string

	// Number is the requested question count. Zero or negative derives
	// the count from the text length.
	Number int

	// GA optionally frames the questions for a genre/audience pair.
	GA GAPair
}

// Question builds the question generation prompt. When a genre/audience
// pair is active, the GA sub-template is rendered and spliced into the
// main template along with the matching processing-flow fragments;
// otherwise all three placeholders collapse to empty strings.
func (b *Builder) Question(ctx context.Context, projectID string, lang Language, p QuestionParams) string {
	textLength := utf8.RuneCountInString(p.Text)

	number := p.Number
	if number <= 0 {
		number = textLength / questionsPerChars
	}

	gaPrompt := b.gaSubPrompt(ctx, projectID, lang, p.GA)
	var gaNote, gaCheck string
	if gaPrompt != "" {
		if lang == LangEN {
			gaNote = ", and incorporate the specified genre-audience perspective"
			gaCheck = "- Question style matches the specified genre and audience"
		} else {
			gaNote = "，并结合指定的体裁受众视角"
			gaCheck = "- 问题风格与指定的体裁受众匹配"
		}
	}

	tpl := b.template(ctx, projectID, TypeQuestion, KeyQuestionPrompt, lang)
	return Render(tpl, Values{
		"textLength":    textLength,
		"number":        number,
		"gaPrompt":      gaPrompt,
		"gaPromptNote":  gaNote,
		"gaPromptCheck": gaCheck,
		"text":          p.Text,
	})
}

// gaSubPrompt renders the genre/audience sub-block, or an empty string
// when the pair is inactive.
func (b *Builder) gaSubPrompt(ctx context.Context, projectID string, lang Language, ga GAPair) string {
	if !ga.Active {
		return ""
	}
	tpl := b.template(ctx, projectID, TypeQuestion, KeyGAQuestionPrompt, lang)
	return Render(tpl, Values{
		"genre":    ga.Genre,
		"audience": ga.Audience,
	})
}
