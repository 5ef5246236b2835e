package dataset

import (
	"encoding/json"
	"strings"
)

// gaBatchSize is the fixed number of genre/audience pairs per generation.
const gaBatchSize = 5

// GADescriptor is one half of a genre/audience pair.
type GADescriptor struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GenreAudiencePair couples a stylistic framing with a target-reader
// profile. Pairs are generated in batches of five; mutual distinctness
// within a batch is a model-output contract, not checked here.
type GenreAudiencePair struct {
	Genre    GADescriptor `json:"genre"`
	Audience GADescriptor `json:"audience"`
}

// ValidateGAPairs parses an extracted JSON array of genre/audience pairs.
// The batch must contain exactly five entries, each with non-empty titles
// and descriptions on both sides.
func ValidateGAPairs(raw []byte) ([]GenreAudiencePair, error) {
	var pairs []GenreAudiencePair
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, NewValidationError(KindMalformedGAPairs, "GA payload is not a pair array: %v", err)
	}

	if len(pairs) != gaBatchSize {
		return nil, NewValidationError(KindMalformedGAPairs, "got %d pairs, want exactly %d", len(pairs), gaBatchSize)
	}

	for i, pair := range pairs {
		for _, field := range []struct {
			name  string
			value string
		}{
			{"genre.title", pair.Genre.Title},
			{"genre.description", pair.Genre.Description},
			{"audience.title", pair.Audience.Title},
			{"audience.description", pair.Audience.Description},
		} {
			if strings.TrimSpace(field.value) == "" {
				return nil, NewValidationError(KindMalformedGAPairs, "pair %d: %s is empty", i, field.name)
			}
		}
	}

	return pairs, nil
}
