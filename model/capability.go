// Package model provides capability-based model selection for the
// curation pipeline. Instead of hardcoding model names, pipeline services
// specify capabilities ("evaluation", "question") and the registry
// resolves them to available endpoints with fallback chains.
package model

// Capability represents a semantic capability for model selection. Each
// pipeline use case maps to one capability so projects can route, say,
// evaluation to a stronger model than bulk question generation.
type Capability string

const (
	// CapabilityEvaluation is for dataset quality scoring.
	CapabilityEvaluation Capability = "evaluation"

	// CapabilityQuestion is for question generation from chunks.
	CapabilityQuestion Capability = "question"

	// CapabilityDistill is for tag and question distillation.
	CapabilityDistill Capability = "distill"

	// CapabilityRevision is for domain-tree revision.
	CapabilityRevision Capability = "revision"

	// CapabilityGA is for genre/audience pair generation.
	CapabilityGA Capability = "ga"

	// CapabilityClean is for data cleaning passes.
	CapabilityClean Capability = "clean"
)

// IsValid checks if a capability string is a known capability.
func (c Capability) IsValid() bool {
	switch c {
	case CapabilityEvaluation, CapabilityQuestion, CapabilityDistill,
		CapabilityRevision, CapabilityGA, CapabilityClean:
		return true
	}
	return false
}

// String returns the string representation of the capability.
func (c Capability) String() string {
	return string(c)
}

// ParseCapability converts a string to a Capability, returning empty for
// invalid values.
func ParseCapability(s string) Capability {
	c := Capability(s)
	if c.IsValid() {
		return c
	}
	return ""
}
