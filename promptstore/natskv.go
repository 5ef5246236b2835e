// Package promptstore provides prompt override storage backends. The
// NATS-backed store is the production path; the memory store serves
// tests and offline CLI use.
package promptstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/amazing83/easy-dataset/prompt"
)

// BucketName is the KV bucket holding prompt overrides.
const BucketName = "prompt-overrides"

// KVStore stores prompt overrides in a NATS JetStream KV bucket, keyed
// by project, prompt type, template key, and language. It implements
// prompt.OverrideStore.
type KVStore struct {
	kv     nats.KeyValue
	logger *slog.Logger
}

// KVStoreOption configures a KVStore.
type KVStoreOption func(*KVStore)

// WithKVLogger sets the logger for the store.
func WithKVLogger(logger *slog.Logger) KVStoreOption {
	return func(s *KVStore) {
		s.logger = logger
	}
}

// NewKVStore opens (or creates) the prompt override bucket on the given
// JetStream context.
func NewKVStore(js nats.JetStreamContext, opts ...KVStoreOption) (*KVStore, error) {
	kv, err := js.KeyValue(BucketName)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket:      BucketName,
			Description: "Project-scoped prompt template overrides",
			History:     5,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("opening bucket %s: %w", BucketName, err)
	}

	s := &KVStore{
		kv:     kv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// overrideKey builds the KV key for an override. NATS KV keys use dots
// as hierarchy separators, so project IDs are sanitized.
func overrideKey(projectID string, typ prompt.PromptType, key string, lang prompt.Language) string {
	return fmt.Sprintf("%s.%s.%s.%s", sanitizeKeyPart(projectID), typ, key, lang)
}

// sanitizeKeyPart replaces characters NATS KV keys disallow.
func sanitizeKeyPart(part string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, part)
}

// GetOverride returns the stored override, or nil when none exists.
func (s *KVStore) GetOverride(ctx context.Context, projectID string, typ prompt.PromptType, key string, lang prompt.Language) (*prompt.Override, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, err := s.kv.Get(overrideKey(projectID, typ, key, lang))
	if errors.Is(err, nats.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading override: %w", err)
	}

	var ov prompt.Override
	if err := json.Unmarshal(entry.Value(), &ov); err != nil {
		return nil, fmt.Errorf("decoding override: %w", err)
	}
	return &ov, nil
}

// PutOverride stores an override, replacing any existing entry.
func (s *KVStore) PutOverride(ctx context.Context, ov *prompt.Override) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ov.ProjectID == "" {
		return fmt.Errorf("override requires a project ID")
	}

	data, err := json.Marshal(ov)
	if err != nil {
		return fmt.Errorf("encoding override: %w", err)
	}

	k := overrideKey(ov.ProjectID, ov.Type, ov.Key, ov.Lang)
	if _, err := s.kv.Put(k, data); err != nil {
		return fmt.Errorf("storing override: %w", err)
	}

	s.logger.Debug("Stored prompt override",
		"project_id", ov.ProjectID,
		"prompt_type", ov.Type,
		"prompt_key", ov.Key,
		"language", ov.Lang,
		"active", ov.IsActive)
	return nil
}

// DeleteOverride removes an override. Deleting a missing key is not an error.
func (s *KVStore) DeleteOverride(ctx context.Context, projectID string, typ prompt.PromptType, key string, lang prompt.Language) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.kv.Delete(overrideKey(projectID, typ, key, lang))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("deleting override: %w", err)
	}
	return nil
}

// ListOverrides returns all overrides stored for a project.
func (s *KVStore) ListOverrides(ctx context.Context, projectID string) ([]*prompt.Override, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keys, err := s.kv.Keys()
	if errors.Is(err, nats.ErrNoKeysFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}

	prefix := sanitizeKeyPart(projectID) + "."
	var result []*prompt.Override
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		entry, err := s.kv.Get(k)
		if errors.Is(err, nats.ErrKeyNotFound) {
			continue // deleted between Keys and Get
		}
		if err != nil {
			return nil, fmt.Errorf("reading override %s: %w", k, err)
		}
		var ov prompt.Override
		if err := json.Unmarshal(entry.Value(), &ov); err != nil {
			s.logger.Warn("Skipping undecodable override", "key", k, "error", err)
			continue
		}
		result = append(result, &ov)
	}
	return result, nil
}
