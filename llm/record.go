package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// CallSubject is the JetStream subject LLM call records are published to.
const CallSubject = "dataset.llm.calls"

// CallRecord is the audit record of a single LLM invocation, successful
// or not. Records are published as plain JSON so downstream consumers
// (cost dashboards, dataset provenance) need no shared Go types.
type CallRecord struct {
	RequestID     string     `json:"request_id"`
	Capability    string     `json:"capability"`
	Model         string     `json:"model,omitempty"`
	Provider      string     `json:"provider,omitempty"`
	PromptChars   int        `json:"prompt_chars"`
	Usage         TokenUsage `json:"usage,omitempty"`
	FinishReason  string     `json:"finish_reason,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	CompletedAt   time.Time  `json:"completed_at"`
	DurationMs    int64      `json:"duration_ms"`
	Error         string     `json:"error,omitempty"`
	Retries       int        `json:"retries"`
	FallbacksUsed []string   `json:"fallbacks_used,omitempty"`
}

// CallRecorder publishes call records to JetStream. Publish failures are
// reported to the caller; the Client treats them as log-and-continue so
// auditing never blocks generation.
type CallRecorder struct {
	js      nats.JetStreamContext
	subject string
	logger  *slog.Logger
}

// RecorderOption configures a CallRecorder.
type RecorderOption func(*CallRecorder)

// WithRecorderSubject overrides the publish subject.
func WithRecorderSubject(subject string) RecorderOption {
	return func(r *CallRecorder) {
		r.subject = subject
	}
}

// WithRecorderLogger sets the logger for the recorder.
func WithRecorderLogger(logger *slog.Logger) RecorderOption {
	return func(r *CallRecorder) {
		r.logger = logger
	}
}

// NewCallRecorder creates a recorder publishing to CallSubject on the
// given JetStream context.
func NewCallRecorder(js nats.JetStreamContext, opts ...RecorderOption) (*CallRecorder, error) {
	if js == nil {
		return nil, fmt.Errorf("jetstream context is required")
	}

	r := &CallRecorder{
		js:      js,
		subject: CallSubject,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Record publishes a call record. The context bounds the publish ack wait.
func (r *CallRecorder) Record(ctx context.Context, record *CallRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling call record: %w", err)
	}

	if _, err := r.js.Publish(r.subject, data, nats.Context(ctx)); err != nil {
		return fmt.Errorf("publishing call record: %w", err)
	}

	r.logger.Debug("Recorded LLM call",
		"request_id", record.RequestID,
		"capability", record.Capability,
		"model", record.Model,
		"duration_ms", record.DurationMs)
	return nil
}
