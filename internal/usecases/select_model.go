package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/registry"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// Selection targets accepted by SelectModel.
const (
	TargetLLMSlot1  = "llm_slot_1"
	TargetLLMSlot2  = "llm_slot_2"
	TargetEmbedding = "embedding"
)

// SelectModel defines the interface for changing an active model selection.
type SelectModel interface {
	Execute(ctx context.Context, target string, urn string) error
}

// SelectModelImpl is the implementation of the SelectModel use case.
type SelectModelImpl struct {
	registry   domain.ModelRegistry
	embeddings domain.EmbeddingSource
}

// NewSelectModelImpl creates a new instance of SelectModelImpl.
func NewSelectModelImpl(reg domain.ModelRegistry, embeddings domain.EmbeddingSource) SelectModelImpl {
	return SelectModelImpl{registry: reg, embeddings: embeddings}
}

// Execute assigns the given model URN to the named target. Changing the
// embedding selection invalidates the cached embedder so the next RAG or
// QA operation binds the new model.
func (sm SelectModelImpl) Execute(ctx context.Context, target string, urn string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(
		attribute.String("target", target),
		attribute.String("model_urn", urn),
	)

	var err error
	switch target {
	case TargetLLMSlot1:
		err = sm.registry.SetActiveLLM(spanCtx, registry.SlotPrimary, urn)
	case TargetLLMSlot2:
		err = sm.registry.SetActiveLLM(spanCtx, registry.SlotSecondary, urn)
	case TargetEmbedding:
		err = sm.registry.SetActiveEmbedding(spanCtx, urn)
		if err == nil {
			sm.embeddings.Reset()
		}
	default:
		err = domain.NewValidationErr(fmt.Sprintf("unknown selection target: %q", target))
	}
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// InitSelectModel initializes the SelectModel use case.
type InitSelectModel struct {
	Registry   domain.ModelRegistry   `resolve:""`
	Embeddings domain.EmbeddingSource `resolve:""`
}

// Initialize registers the SelectModel use case implementation.
func (i InitSelectModel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SelectModel](NewSelectModelImpl(i.Registry, i.Embeddings))
	return ctx, nil
}
