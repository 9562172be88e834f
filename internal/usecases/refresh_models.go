package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// RefreshModels defines the interface for forcing a model rediscovery pass.
type RefreshModels interface {
	Execute(ctx context.Context) (ModelOverview, error)
}

// RefreshModelsImpl is the implementation of the RefreshModels use case.
type RefreshModelsImpl struct {
	registry domain.ModelRegistry
}

// NewRefreshModelsImpl creates a new instance of RefreshModelsImpl.
func NewRefreshModelsImpl(reg domain.ModelRegistry) RefreshModelsImpl {
	return RefreshModelsImpl{registry: reg}
}

// Execute rediscovers models across every provider and returns the
// resulting overview.
func (rm RefreshModelsImpl) Execute(ctx context.Context) (ModelOverview, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := rm.registry.RefreshModels(spanCtx); telemetry.RecordErrorAndStatus(span, err) {
		return ModelOverview{}, err
	}
	return buildModelOverview(rm.registry), nil
}

// InitRefreshModels initializes the RefreshModels use case.
type InitRefreshModels struct {
	Registry domain.ModelRegistry `resolve:""`
}

// Initialize registers the RefreshModels use case implementation.
func (i InitRefreshModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RefreshModels](NewRefreshModelsImpl(i.Registry))
	return ctx, nil
}
