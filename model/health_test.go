package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	r := NewRegistry(nil, nil)

	assert.True(t, r.IsEndpointAvailable("ep"))

	// Below threshold the endpoint stays available.
	r.MarkEndpointFailure("ep")
	r.MarkEndpointFailure("ep")
	assert.True(t, r.IsEndpointAvailable("ep"))

	// Third consecutive failure trips the circuit.
	r.MarkEndpointFailure("ep")
	assert.False(t, r.IsEndpointAvailable("ep"))

	health := r.GetEndpointHealth("ep")
	require.NotNil(t, health)
	assert.True(t, health.CircuitOpen)
	assert.Equal(t, 3, health.FailureCount)
}

func TestCircuitBreaker_SuccessResets(t *testing.T) {
	r := NewRegistry(nil, nil)

	r.MarkEndpointFailure("ep")
	r.MarkEndpointFailure("ep")
	r.MarkEndpointSuccess("ep")

	health := r.GetEndpointHealth("ep")
	require.NotNil(t, health)
	assert.Equal(t, 0, health.FailureCount)
	assert.True(t, health.Available)

	// A fresh failure streak has to reach the threshold again.
	r.MarkEndpointFailure("ep")
	r.MarkEndpointFailure("ep")
	assert.True(t, r.IsEndpointAvailable("ep"))
}

func TestCircuitBreaker_HalfOpenAfterRecoveryTimeout(t *testing.T) {
	r := NewRegistry(nil, nil)
	r.health = newHealthState(HealthConfig{
		FailureThreshold: 1,
		RecoveryTimeout:  10 * time.Millisecond,
	})

	r.MarkEndpointFailure("ep")
	assert.False(t, r.IsEndpointAvailable("ep"))

	// After the recovery timeout one probe gets through.
	time.Sleep(20 * time.Millisecond)
	assert.True(t, r.IsEndpointAvailable("ep"))

	r.MarkEndpointSuccess("ep")
	health := r.GetEndpointHealth("ep")
	require.NotNil(t, health)
	assert.False(t, health.CircuitOpen)
}

func TestGetAvailableFallbackChain_FiltersTripped(t *testing.T) {
	r := NewRegistry(
		map[Capability]*CapabilityConfig{
			CapabilityQuestion: {
				Preferred: []string{"primary"},
				Fallback:  []string{"secondary"},
			},
		},
		nil,
	)

	assert.Equal(t, []string{"primary", "secondary"}, r.GetAvailableFallbackChain(CapabilityQuestion))

	for i := 0; i < 3; i++ {
		r.MarkEndpointFailure("primary")
	}

	assert.Equal(t, []string{"secondary"}, r.GetAvailableFallbackChain(CapabilityQuestion))
}

func TestGetEndpointHealth_Unknown(t *testing.T) {
	r := NewRegistry(nil, nil)
	assert.Nil(t, r.GetEndpointHealth("never-seen"))
}
