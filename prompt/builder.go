package prompt

import (
	"context"
	"fmt"
)

// Builder composes final prompt strings for every pipeline use case. Each
// build method selects the base template by language, lets an active
// project override replace it, resolves derived placeholders, splices
// conditional sub-blocks, and runs the final substitution pass. Builders
// carry no mutable state and are safe for concurrent use.
type Builder struct {
	registry *Registry
	resolver *Resolver
}

// NewBuilder creates a builder. A nil resolver disables overrides, so
// every prompt renders from the built-in defaults.
func NewBuilder(registry *Registry, resolver *Resolver) *Builder {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Builder{registry: registry, resolver: resolver}
}

// template returns the effective template content for a key: the project
// override when one is active, the registry default otherwise.
func (b *Builder) template(ctx context.Context, projectID string, typ PromptType, key string, lang Language) string {
	def, _ := b.registry.Lookup(TemplateKey{Type: typ, Key: key, Lang: lang})
	if b.resolver == nil {
		return def
	}
	return b.resolver.ResolveTemplate(ctx, projectID, typ, key, lang, def)
}

// Template returns the effective template for a key with placeholders
// intact, for inspection tooling. Unknown keys are an error here, unlike
// the build methods which only use keys the registry is known to hold.
func (b *Builder) Template(ctx context.Context, projectID string, typ PromptType, key string, lang Language) (string, error) {
	if _, ok := b.registry.Lookup(TemplateKey{Type: typ, Key: key, Lang: lang}); !ok {
		return "", fmt.Errorf("unknown template %s/%s (%s)", typ, key, lang)
	}
	return b.template(ctx, projectID, typ, key, lang), nil
}
