package domain

import (
	"context"
	"time"
)

// CurrentTimeProvider abstracts the clock so discovery timestamps are
// testable.
type CurrentTimeProvider interface {
	Now() time.Time
}

// ChatClient generates an assistant response for a prompt against a concrete
// model. Implementations must translate every transport-level failure into a
// GenerationErr or TimeoutErr; a raw transport error never escapes the
// adapter boundary.
type ChatClient interface {
	Chat(ctx context.Context, req PromptRequest, model string) (AIResponse, error)
}

// Embedder generates embedding vectors against a concrete model. On backends
// without native batch support, EmbedBatch is a sequential loop.
type Embedder interface {
	EmbedText(ctx context.Context, model, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, model string, texts []string) ([][]float64, error)
}

// ModelCatalog enumerates the models a backend offers. Discovery failures
// degrade to an empty list and are logged, never raised, so one unreachable
// backend does not block use of another.
type ModelCatalog interface {
	ProviderName() Provider
	DiscoverModels(ctx context.Context) []ModelInfo
}

// ProviderAdapter is the full capability surface of one backend.
type ProviderAdapter interface {
	ChatClient
	Embedder
	ModelCatalog
}

// ProviderResolver maps a parsed provider segment to a registered adapter.
// Resolution fails with UnknownProviderErr for an unregistered provider and
// MissingCredentialErr when the provider's required secret is absent.
type ProviderResolver interface {
	Chat(provider Provider) (ChatClient, error)
	Embedder(provider Provider) (Embedder, error)
	Catalogs() []ModelCatalog
}

// BoundEmbedder is an embedder fixed to one provider and model, as resolved
// from the registry's active embedding selection.
type BoundEmbedder interface {
	Provider() Provider
	Model() string
	EmbedText(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// EmbeddingSource supplies the adapter for the currently selected embedding
// model, caching at most one live instance. Reset drops the cache and must be
// called whenever the active embedding selection changes, because a stale
// instance would silently serve the wrong backend.
type EmbeddingSource interface {
	ActiveEmbedder(ctx context.Context) (BoundEmbedder, error)
	Reset()
}

// ModelRegistry is the per-process model selection state machine. Initialize
// is idempotent; RefreshModels repeats discovery without the idempotent guard.
type ModelRegistry interface {
	Initialize(ctx context.Context) error
	RefreshModels(ctx context.Context) error
	AvailableLLMs() []ModelInfo
	AvailableEmbeddings() []ModelInfo
	AllModels() []ModelInfo
	ActiveLLM(slot int) (string, error)
	ActiveEmbedding() string
	SetActiveLLM(ctx context.Context, slot int, urn string) error
	SetActiveEmbedding(ctx context.Context, urn string) error
	ModelInfo(urn string) (ModelInfo, bool)
	HasProvider(provider Provider) bool
}
