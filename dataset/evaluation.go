// Package dataset defines the structured results produced by the curation
// pipeline and the validators that enforce their invariants. Validators are
// total functions over extracted JSON: they return either a typed result or
// a *ValidationError, never a partially repaired value.
package dataset

import (
	"encoding/json"
	"math"
	"strings"
)

// EvaluationResult is the quality verdict for a single Q&A record.
// The field names are part of the persistence contract and must not change.
type EvaluationResult struct {
	// Score is the quality score in [0,5], quantized to 0.5 steps.
	Score float64 `json:"score"`

	// Evaluation is the model's rationale, kept verbatim.
	Evaluation string `json:"evaluation"`
}

// QuantizeScore rounds a score to the nearest 0.5 step, half away from
// zero. Quantization is a post-condition of validation, not a display
// rule: the quantized value is what gets persisted. Idempotent.
func QuantizeScore(s float64) float64 {
	return math.Round(s*2) / 2
}

// ValidateEvaluation parses and validates an extracted evaluation payload.
// The score must be finite and within [0,5]; it is quantized before being
// returned. The evaluation text must be non-empty.
func ValidateEvaluation(raw []byte) (*EvaluationResult, error) {
	var parsed struct {
		Score      *float64 `json:"score"`
		Evaluation string   `json:"evaluation"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, NewValidationError(KindInvalidScore, "evaluation payload is not an object: %v", err)
	}

	if parsed.Score == nil {
		return nil, NewValidationError(KindInvalidScore, "score is missing")
	}
	score := *parsed.Score
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return nil, NewValidationError(KindInvalidScore, "score is not a finite number")
	}
	if score < 0 || score > 5 {
		return nil, NewValidationError(KindInvalidScore, "score %g outside [0,5]", score)
	}

	if strings.TrimSpace(parsed.Evaluation) == "" {
		return nil, NewValidationError(KindMissingEvaluation, "evaluation text is empty")
	}

	return &EvaluationResult{
		Score:      QuantizeScore(score),
		Evaluation: parsed.Evaluation,
	}, nil
}

// ScoreBand labels a quantized score for display grouping.
type ScoreBand string

const (
	BandExcellent ScoreBand = "excellent"
	BandGood      ScoreBand = "good"
	BandAverage   ScoreBand = "average"
	BandPoor      ScoreBand = "poor"
	BandVeryPoor  ScoreBand = "very-poor"
	BandUnrated   ScoreBand = "unrated"
)

// BandForScore maps a score to its rating band. Zero means unrated.
func BandForScore(score float64) ScoreBand {
	switch {
	case score >= 4.5:
		return BandExcellent
	case score >= 3.5:
		return BandGood
	case score >= 2.5:
		return BandAverage
	case score >= 1.5:
		return BandPoor
	case score > 0:
		return BandVeryPoor
	default:
		return BandUnrated
	}
}
