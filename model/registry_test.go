package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapability(t *testing.T) {
	tests := []struct {
		input string
		want  Capability
	}{
		{"evaluation", CapabilityEvaluation},
		{"question", CapabilityQuestion},
		{"distill", CapabilityDistill},
		{"revision", CapabilityRevision},
		{"ga", CapabilityGA},
		{"clean", CapabilityClean},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCapability(tt.input))
		})
	}
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry(
		map[Capability]*CapabilityConfig{
			CapabilityEvaluation: {Preferred: []string{"strong", "medium"}},
		},
		map[string]*EndpointConfig{
			"strong": {Provider: "openai", Model: "gpt-4o"},
		},
	)

	assert.Equal(t, "strong", r.Resolve(CapabilityEvaluation))

	// Unknown capabilities fall back to the default endpoint name.
	assert.Equal(t, "default", r.Resolve(CapabilityClean))
}

func TestRegistry_GetFallbackChain(t *testing.T) {
	r := NewRegistry(
		map[Capability]*CapabilityConfig{
			CapabilityQuestion: {
				Preferred: []string{"a", "b"},
				Fallback:  []string{"c"},
			},
		},
		nil,
	)

	assert.Equal(t, []string{"a", "b", "c"}, r.GetFallbackChain(CapabilityQuestion))
	assert.Equal(t, []string{"default"}, r.GetFallbackChain(CapabilityGA))
}

func TestRegistry_GetEndpoint(t *testing.T) {
	r := NewDefaultRegistry()

	ep := r.GetEndpoint("qwen")
	require.NotNil(t, ep)
	assert.Equal(t, "ollama", ep.Provider)

	assert.Nil(t, r.GetEndpoint("nonexistent"))
}

func TestRegistry_SetCapabilityAndEndpoint(t *testing.T) {
	r := NewRegistry(nil, nil)

	r.SetCapability(CapabilityClean, &CapabilityConfig{Preferred: []string{"local"}})
	r.SetEndpoint("local", &EndpointConfig{Provider: "ollama", Model: "qwen2.5:7b"})

	assert.Equal(t, "local", r.Resolve(CapabilityClean))
	require.NotNil(t, r.GetEndpoint("local"))
	assert.Equal(t, "qwen2.5:7b", r.GetEndpoint("local").Model)
}

func TestGlobalRegistry(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	custom := NewRegistry(
		map[Capability]*CapabilityConfig{
			CapabilityClean: {Preferred: []string{"custom"}},
		},
		map[string]*EndpointConfig{
			"custom": {Provider: "ollama", Model: "custom"},
		},
	)
	InitGlobal(custom)

	assert.Same(t, custom, Global())

	// Later initializations are ignored.
	InitGlobal(NewDefaultRegistry())
	assert.Same(t, custom, Global())
}

func TestDefaultRegistry_AllCapabilitiesRoutable(t *testing.T) {
	r := NewDefaultRegistry()

	for _, c := range []Capability{
		CapabilityEvaluation, CapabilityQuestion, CapabilityDistill,
		CapabilityRevision, CapabilityGA, CapabilityClean,
	} {
		chain := r.GetFallbackChain(c)
		require.NotEmpty(t, chain, "capability %s has no chain", c)
		for _, name := range chain {
			assert.NotNil(t, r.GetEndpoint(name), "endpoint %s for %s not configured", name, c)
		}
	}
}
