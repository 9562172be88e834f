package providers

import (
	"context"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

// EmbeddingFactory caches at most one live embedder, keyed by the registry's
// active embedding selection. Ingest and query paths must share one instance
// so stored vectors and query vectors always come from the same model.
type EmbeddingFactory struct {
	registry domain.ModelRegistry
	resolver domain.ProviderResolver

	mu        sync.Mutex
	cached    domain.BoundEmbedder
	cachedURN string
}

// NewEmbeddingFactory creates a new factory
func NewEmbeddingFactory(registry domain.ModelRegistry, resolver domain.ProviderResolver) *EmbeddingFactory {
	return &EmbeddingFactory{registry: registry, resolver: resolver}
}

// ActiveEmbedder implements domain.EmbeddingSource.ActiveEmbedder
func (f *EmbeddingFactory) ActiveEmbedder(ctx context.Context) (domain.BoundEmbedder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	urn := f.registry.ActiveEmbedding()
	if urn == "" {
		return nil, domain.NewNotFoundErr("no embedding model selected")
	}
	if f.cached != nil && f.cachedURN == urn {
		return f.cached, nil
	}

	provider, model, err := domain.ParseModelURN(urn)
	if err != nil {
		return nil, err
	}
	embedder, err := f.resolver.Embedder(provider)
	if err != nil {
		return nil, err
	}

	f.cached = boundEmbedder{provider: provider, model: model, embedder: embedder}
	f.cachedURN = urn
	return f.cached, nil
}

// Reset implements domain.EmbeddingSource.Reset
func (f *EmbeddingFactory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cached = nil
	f.cachedURN = ""
}

// boundEmbedder fixes an embedder to one provider and model.
type boundEmbedder struct {
	provider domain.Provider
	model    string
	embedder domain.Embedder
}

func (b boundEmbedder) Provider() domain.Provider {
	return b.provider
}

func (b boundEmbedder) Model() string {
	return b.model
}

func (b boundEmbedder) EmbedText(ctx context.Context, text string) ([]float64, error) {
	return b.embedder.EmbedText(ctx, b.model, text)
}

func (b boundEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	return b.embedder.EmbedBatch(ctx, b.model, texts)
}

// InitEmbeddingFactory initializes the embedding source dependency.
type InitEmbeddingFactory struct {
	Registry domain.ModelRegistry    `resolve:""`
	Resolver domain.ProviderResolver `resolve:""`
}

// Initialize registers the embedding factory
func (i InitEmbeddingFactory) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EmbeddingSource](NewEmbeddingFactory(i.Registry, i.Resolver))
	return ctx, nil
}
