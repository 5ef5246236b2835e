package prompt

import (
	"context"
	"log/slog"
)

// Resolver resolves the effective template content for a project, letting
// active project overrides take precedence over built-in defaults.
type Resolver struct {
	store  OverrideStore
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver backed by the given override store.
// A nil store always resolves to the default content.
func NewResolver(store OverrideStore, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveTemplate returns the template content to use for the given
// project and key. The override is used only when it exists, is active,
// and has non-empty content. Lookup failures degrade to the default
// content: prompt generation must never be blocked by a broken override
// store, so the error is logged and swallowed.
func (r *Resolver) ResolveTemplate(ctx context.Context, projectID string, typ PromptType, key string, lang Language, defaultContent string) string {
	if projectID == "" || r.store == nil {
		return defaultContent
	}

	override, err := r.store.GetOverride(ctx, projectID, typ, key, lang)
	if err != nil {
		r.logger.Warn("Override lookup failed, using default template",
			"project_id", projectID,
			"prompt_type", string(typ),
			"prompt_key", key,
			"language", string(lang),
			"error", err)
		return defaultContent
	}

	if override != nil && override.IsActive && override.Content != "" {
		return override.Content
	}

	return defaultContent
}
