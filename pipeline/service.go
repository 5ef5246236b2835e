// Package pipeline runs the dataset curation operations end to end:
// prompt construction, LLM invocation, structured extraction, and result
// validation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amazing83/easy-dataset/dataset"
	"github.com/amazing83/easy-dataset/llm"
	"github.com/amazing83/easy-dataset/model"
	"github.com/amazing83/easy-dataset/prompt"
)

// questionsPerChars mirrors the prompt builder's derivation of the
// default question count from text length.
const questionsPerChars = 240

// Service runs curation operations for one project and language.
type Service struct {
	builder *prompt.Builder
	client  *llm.Client
	logger  *slog.Logger
	metrics *Metrics

	projectID   string
	lang        prompt.Language
	temperature *float64
	maxTokens   int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics enables metric collection.
func WithMetrics(m *Metrics) ServiceOption {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTemperature overrides the endpoint default temperature.
func WithTemperature(t float64) ServiceOption {
	return func(s *Service) {
		s.temperature = &t
	}
}

// WithMaxTokens limits response length.
func WithMaxTokens(n int) ServiceOption {
	return func(s *Service) {
		s.maxTokens = n
	}
}

// NewService creates a curation service. The project ID scopes prompt
// overrides; empty means defaults only.
func NewService(builder *prompt.Builder, client *llm.Client, projectID string, lang prompt.Language, opts ...ServiceOption) *Service {
	s := &Service{
		builder:   builder,
		client:    client,
		logger:    slog.Default(),
		projectID: projectID,
		lang:      lang,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// complete sends a single-user-message request for the given capability.
func (s *Service) complete(ctx context.Context, capability model.Capability, promptText string) (string, error) {
	resp, err := s.client.Complete(ctx, llm.Request{
		Capability:  string(capability),
		Messages:    []llm.Message{{Role: "user", Content: promptText}},
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// finish records the operation outcome and normalizes validation metrics.
func (s *Service) finish(operation string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		var verr *dataset.ValidationError
		if errors.As(err, &verr) {
			status = "invalid"
			s.metrics.observeValidationFailure(string(verr.Kind))
		}
	}
	s.metrics.observeOperation(operation, status, time.Since(started).Seconds())
}

// EvaluateInput describes one Q&A record to score.
type EvaluateInput struct {
	// ChunkContent is the source chunk; empty or distilled content is
	// evaluated against the no-reference rules.
	ChunkContent string
	Distilled    bool
	Question     string
	Answer       string
}

// Evaluate scores a Q&A record. The returned score is quantized to 0.5
// steps within [0,5].
func (s *Service) Evaluate(ctx context.Context, in EvaluateInput) (result *dataset.EvaluationResult, err error) {
	started := time.Now()
	defer func() { s.finish("evaluate", started, err) }()

	promptText := s.builder.Evaluation(ctx, s.projectID, s.lang, prompt.EvaluationParams{
		ChunkContent: in.ChunkContent,
		Distilled:    in.Distilled,
		Question:     in.Question,
		Answer:       in.Answer,
	})

	content, err := s.complete(ctx, model.CapabilityEvaluation, promptText)
	if err != nil {
		return nil, fmt.Errorf("evaluation call: %w", err)
	}

	raw, err := llm.ExtractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("evaluation response: %w", err)
	}

	result, err = dataset.ValidateEvaluation(raw)
	if err != nil {
		return nil, err
	}

	s.metrics.observeScore(result.Score)
	s.logger.Debug("Evaluated record",
		"score", result.Score,
		"band", dataset.BandForScore(result.Score))
	return result, nil
}

// QuestionInput describes a chunk to generate questions from.
type QuestionInput struct {
	// Text is the source chunk.
	Text string

	// Number is the requested question count. Zero or negative derives
	// the count from the text length.
	Number int

	// GA optionally frames the questions for a genre/audience pair.
	GA prompt.GAPair
}

// GenerateQuestions generates questions from a chunk. Fewer questions
// than requested fails the whole batch.
func (s *Service) GenerateQuestions(ctx context.Context, in QuestionInput) (questions []string, err error) {
	started := time.Now()
	defer func() { s.finish("questions", started, err) }()

	// Same derivation the builder substitutes into the template, so the
	// validator requires exactly what the prompt asked for.
	expected := in.Number
	if expected <= 0 {
		expected = utf8.RuneCountInString(in.Text) / questionsPerChars
	}

	promptText := s.builder.Question(ctx, s.projectID, s.lang, prompt.QuestionParams{
		Text:   in.Text,
		Number: in.Number,
		GA:     in.GA,
	})

	content, err := s.complete(ctx, model.CapabilityQuestion, promptText)
	if err != nil {
		return nil, fmt.Errorf("question call: %w", err)
	}

	raw, err := llm.ExtractJSONArray(content)
	if err != nil {
		return nil, fmt.Errorf("question response: %w", err)
	}

	questions, err = dataset.ValidateQuestions(raw, expected)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Generated questions", "count", len(questions), "expected", expected)
	return questions, nil
}

// GenerateGA generates exactly five genre/audience pairs for a text.
func (s *Service) GenerateGA(ctx context.Context, text string) (pairs []dataset.GenreAudiencePair, err error) {
	started := time.Now()
	defer func() { s.finish("ga", started, err) }()

	promptText := s.builder.GAGeneration(ctx, s.projectID, s.lang, prompt.GAGenerationParams{Text: text})

	content, err := s.complete(ctx, model.CapabilityGA, promptText)
	if err != nil {
		return nil, fmt.Errorf("ga call: %w", err)
	}

	raw, err := llm.ExtractJSONArray(content)
	if err != nil {
		return nil, fmt.Errorf("ga response: %w", err)
	}

	pairs, err = dataset.ValidateGAPairs(raw)
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// DistillTags generates sub-tags under a parent tag.
func (s *Service) DistillTags(ctx context.Context, in prompt.DistillTagsParams) (tags []string, err error) {
	started := time.Now()
	defer func() { s.finish("distill_tags", started, err) }()

	promptText := s.builder.DistillTags(ctx, s.projectID, s.lang, in)

	content, err := s.complete(ctx, model.CapabilityDistill, promptText)
	if err != nil {
		return nil, fmt.Errorf("distill tags call: %w", err)
	}

	raw, err := llm.ExtractJSONArray(content)
	if err != nil {
		return nil, fmt.Errorf("distill tags response: %w", err)
	}

	tags, err = dataset.ValidateTagLabels(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Distilled tags", "parent", in.ParentTag, "count", len(tags))
	return tags, nil
}

// DistillQuestions generates questions for a leaf tag without source text.
func (s *Service) DistillQuestions(ctx context.Context, in prompt.DistillQuestionsParams) (questions []string, err error) {
	started := time.Now()
	defer func() { s.finish("distill_questions", started, err) }()

	promptText := s.builder.DistillQuestions(ctx, s.projectID, s.lang, in)

	content, err := s.complete(ctx, model.CapabilityDistill, promptText)
	if err != nil {
		return nil, fmt.Errorf("distill questions call: %w", err)
	}

	raw, err := llm.ExtractJSONArray(content)
	if err != nil {
		return nil, fmt.Errorf("distill questions response: %w", err)
	}

	// Distillation tolerates an under-count: partial batches still add
	// coverage, unlike chunk-driven generation.
	questions, err = dataset.ValidateQuestions(raw, 0)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Distilled questions", "tag", in.CurrentTag, "count", len(questions))
	return questions, nil
}

// ReviseTree revises the domain tag tree against changed literature.
func (s *Service) ReviseTree(ctx context.Context, in prompt.LabelReviseParams) (tree []dataset.TagNode, err error) {
	started := time.Now()
	defer func() { s.finish("revise_tree", started, err) }()

	promptText := s.builder.LabelRevise(ctx, s.projectID, s.lang, in)

	content, err := s.complete(ctx, model.CapabilityRevision, promptText)
	if err != nil {
		return nil, fmt.Errorf("revise tree call: %w", err)
	}

	raw, err := llm.ExtractJSONArray(content)
	if err != nil {
		return nil, fmt.Errorf("revise tree response: %w", err)
	}

	tree, err = dataset.ValidateTagTree(raw)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Revised tag tree", "top_level", len(tree))
	return tree, nil
}

// Clean removes noise from raw chunk text. The model returns prose, not
// JSON, so the response is used as-is.
func (s *Service) Clean(ctx context.Context, text string) (cleaned string, err error) {
	started := time.Now()
	defer func() { s.finish("clean", started, err) }()

	promptText := s.builder.DataClean(ctx, s.projectID, s.lang, prompt.DataCleanParams{Text: text})

	content, err := s.complete(ctx, model.CapabilityClean, promptText)
	if err != nil {
		return "", fmt.Errorf("clean call: %w", err)
	}

	cleaned = strings.TrimSpace(content)
	if cleaned == "" {
		return "", fmt.Errorf("clean response was empty")
	}
	return cleaned, nil
}
