package promptstore

import (
	"context"
	"sync"

	"github.com/amazing83/easy-dataset/prompt"
)

// MemoryStore is an in-memory prompt.OverrideStore for tests and
// single-shot CLI runs without a NATS connection.
type MemoryStore struct {
	mu        sync.RWMutex
	overrides map[string]*prompt.Override
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		overrides: make(map[string]*prompt.Override),
	}
}

// GetOverride returns the stored override, or nil when none exists.
func (s *MemoryStore) GetOverride(ctx context.Context, projectID string, typ prompt.PromptType, key string, lang prompt.Language) (*prompt.Override, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ov, ok := s.overrides[overrideKey(projectID, typ, key, lang)]
	if !ok {
		return nil, nil
	}
	copied := *ov
	return &copied, nil
}

// PutOverride stores an override, replacing any existing entry.
func (s *MemoryStore) PutOverride(ctx context.Context, ov *prompt.Override) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *ov
	s.overrides[overrideKey(ov.ProjectID, ov.Type, ov.Key, ov.Lang)] = &copied
	return nil
}

// DeleteOverride removes an override. Deleting a missing key is not an error.
func (s *MemoryStore) DeleteOverride(ctx context.Context, projectID string, typ prompt.PromptType, key string, lang prompt.Language) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.overrides, overrideKey(projectID, typ, key, lang))
	return nil
}
