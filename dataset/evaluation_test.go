package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantizeScore(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"already quantized", 4.5, 4.5},
		{"rounds up", 4.3, 4.5},
		{"rounds down", 4.2, 4.0},
		{"half step up", 3.25, 3.5},
		{"zero", 0, 0},
		{"five", 5, 5},
		{"near zero", 0.2, 0},
		{"just above quarter", 0.26, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuantizeScore(tt.in))
		})
	}
}

func TestQuantizeScoreIdempotent(t *testing.T) {
	for s := 0.0; s <= 5.0; s += 0.1 {
		q := QuantizeScore(s)
		assert.Equal(t, q, QuantizeScore(q), "score %g", s)
	}
}

func TestValidateEvaluation(t *testing.T) {
	result, err := ValidateEvaluation([]byte(`{"score": 4.3, "evaluation": "准确且完整"}`))
	require.NoError(t, err)
	assert.Equal(t, 4.5, result.Score)
	assert.Equal(t, "准确且完整", result.Evaluation)
}

func TestValidateEvaluation_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ValidationKind
	}{
		{"missing score", `{"evaluation": "fine"}`, KindInvalidScore},
		{"null score", `{"score": null, "evaluation": "fine"}`, KindInvalidScore},
		{"score too high", `{"score": 5.5, "evaluation": "fine"}`, KindInvalidScore},
		{"negative score", `{"score": -1, "evaluation": "fine"}`, KindInvalidScore},
		{"non-numeric score", `{"score": "four", "evaluation": "fine"}`, KindInvalidScore},
		{"missing evaluation", `{"score": 4}`, KindMissingEvaluation},
		{"blank evaluation", `{"score": 4, "evaluation": "  "}`, KindMissingEvaluation},
		{"not an object", `[1,2]`, KindInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateEvaluation([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, IsValidation(err, tt.kind), "want kind %s, got %v", tt.kind, err)
		})
	}
}

func TestValidateEvaluation_ZeroScoreIsValid(t *testing.T) {
	result, err := ValidateEvaluation([]byte(`{"score": 0, "evaluation": "答案完全错误"}`))
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
}

func TestBandForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  ScoreBand
	}{
		{5, BandExcellent},
		{4.5, BandExcellent},
		{4, BandGood},
		{3.5, BandGood},
		{3, BandAverage},
		{2.5, BandAverage},
		{2, BandPoor},
		{1.5, BandPoor},
		{1, BandVeryPoor},
		{0.5, BandVeryPoor},
		{0, BandUnrated},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandForScore(tt.score), "score %g", tt.score)
	}
}
