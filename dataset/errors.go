package dataset

import (
	"errors"
	"fmt"
)

// ValidationKind classifies validation failures so callers can surface
// a precise retry hint to the user.
type ValidationKind string

const (
	// KindInvalidScore means the evaluation score was missing, non-finite,
	// or outside the [0,5] range.
	KindInvalidScore ValidationKind = "invalid_score"

	// KindMissingEvaluation means the evaluation text was absent or empty.
	KindMissingEvaluation ValidationKind = "missing_evaluation"

	// KindInsufficientQuestions means fewer non-empty questions survived
	// trimming than the caller required.
	KindInsufficientQuestions ValidationKind = "insufficient_questions"

	// KindMalformedTagTree means a tag label or the tree shape violated
	// the ordinal/depth rules.
	KindMalformedTagTree ValidationKind = "malformed_tag_tree"

	// KindMalformedGAPairs means the genre/audience batch had the wrong
	// size or an empty field.
	KindMalformedGAPairs ValidationKind = "malformed_ga_pairs"
)

// ValidationError is a terminal, caller-surfaced failure of a result
// validator. It is never retried inside the pipeline.
type ValidationError struct {
	Kind   ValidationKind
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Kind, e.Detail)
}

// NewValidationError creates a validation error with a formatted detail.
func NewValidationError(kind ValidationKind, format string, args ...any) error {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError, optionally of a
// specific kind. An empty kind matches any validation error.
func IsValidation(err error, kind ValidationKind) bool {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	return kind == "" || verr.Kind == kind
}
