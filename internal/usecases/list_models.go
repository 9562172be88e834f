package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/registry"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// ModelOverview is the discovered model set grouped by kind, plus the
// current selections. Unset selections are empty strings.
type ModelOverview struct {
	LLMs            []domain.ModelInfo
	Embeddings      []domain.ModelInfo
	ActiveLLMSlot1  string
	ActiveLLMSlot2  string
	ActiveEmbedding string
}

// ListModels defines the interface for the model overview query.
type ListModels interface {
	Query(ctx context.Context) (ModelOverview, error)
}

// ListModelsImpl is the implementation of the ListModels use case.
type ListModelsImpl struct {
	registry domain.ModelRegistry
}

// NewListModelsImpl creates a new instance of ListModelsImpl.
func NewListModelsImpl(reg domain.ModelRegistry) ListModelsImpl {
	return ListModelsImpl{registry: reg}
}

// Query returns the current discovery snapshot and active selections.
func (lm ListModelsImpl) Query(ctx context.Context) (ModelOverview, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return buildModelOverview(lm.registry), nil
}

// buildModelOverview assembles the overview from a registry snapshot. A slot
// without a selection contributes an empty string rather than an error; the
// overview is a status report, not a dispatch path.
func buildModelOverview(reg domain.ModelRegistry) ModelOverview {
	overview := ModelOverview{
		LLMs:            reg.AvailableLLMs(),
		Embeddings:      reg.AvailableEmbeddings(),
		ActiveEmbedding: reg.ActiveEmbedding(),
	}
	if urn, err := reg.ActiveLLM(registry.SlotPrimary); err == nil {
		overview.ActiveLLMSlot1 = urn
	}
	if urn, err := reg.ActiveLLM(registry.SlotSecondary); err == nil {
		overview.ActiveLLMSlot2 = urn
	}
	return overview
}

// InitListModels initializes the ListModels use case.
type InitListModels struct {
	Registry domain.ModelRegistry `resolve:""`
}

// Initialize registers the ListModels use case implementation.
func (i InitListModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListModels](NewListModelsImpl(i.Registry))
	return ctx, nil
}
