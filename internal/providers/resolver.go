// Package providers resolves parsed provider identifiers to their registered
// backend adapters and manages the cached embedding instance.
package providers

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/gemini"
	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/ollama"
	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

// Resolver maps provider identifiers to the static set of backend adapters.
type Resolver struct {
	gemini *gemini.Adapter
	ollama *ollama.Adapter
}

// NewResolver creates a new resolver
func NewResolver(geminiAdapter *gemini.Adapter, ollamaAdapter *ollama.Adapter) *Resolver {
	return &Resolver{gemini: geminiAdapter, ollama: ollamaAdapter}
}

// Chat implements domain.ProviderResolver.Chat
func (r *Resolver) Chat(provider domain.Provider) (domain.ChatClient, error) {
	return r.adapter(provider)
}

// Embedder implements domain.ProviderResolver.Embedder
func (r *Resolver) Embedder(provider domain.Provider) (domain.Embedder, error) {
	return r.adapter(provider)
}

// Catalogs implements domain.ProviderResolver.Catalogs. Every adapter is a
// catalog regardless of credentials; an unusable backend reports no models.
func (r *Resolver) Catalogs() []domain.ModelCatalog {
	return []domain.ModelCatalog{r.gemini, r.ollama}
}

func (r *Resolver) adapter(provider domain.Provider) (domain.ProviderAdapter, error) {
	switch provider {
	case domain.Provider_Gemini:
		if !r.gemini.HasCredential() {
			return nil, domain.NewMissingCredentialErr("gemini API key is not configured")
		}
		return r.gemini, nil
	case domain.Provider_Ollama:
		return r.ollama, nil
	default:
		return nil, domain.NewUnknownProviderErr(fmt.Sprintf("no adapter registered for provider %q", provider))
	}
}

// InitResolver initializes the provider resolver dependency.
type InitResolver struct {
	Gemini *gemini.Adapter `resolve:""`
	Ollama *ollama.Adapter `resolve:""`
}

// Initialize registers the resolver
func (i InitResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ProviderResolver](NewResolver(i.Gemini, i.Ollama))
	return ctx, nil
}
