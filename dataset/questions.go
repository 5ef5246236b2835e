package dataset

import (
	"encoding/json"
	"strings"
)

// ValidateQuestions parses an extracted JSON array of question strings.
// Questions are trimmed and empties dropped. If fewer than minCount
// questions survive, the whole set is rejected with InsufficientQuestions:
// an under-count is surfaced to the caller rather than silently truncated.
// minCount <= 0 disables the count check.
func ValidateQuestions(raw []byte, minCount int) ([]string, error) {
	var parsed []string
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, NewValidationError(KindInsufficientQuestions, "question payload is not a string array: %v", err)
	}

	questions := make([]string, 0, len(parsed))
	for _, q := range parsed {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		questions = append(questions, q)
	}

	if minCount > 0 && len(questions) < minCount {
		return nil, NewValidationError(KindInsufficientQuestions,
			"got %d non-empty questions, need at least %d", len(questions), minCount)
	}
	if len(questions) == 0 {
		return nil, NewValidationError(KindInsufficientQuestions, "no non-empty questions in response")
	}

	return questions, nil
}
