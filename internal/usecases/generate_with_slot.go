package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// GenerateWithSlot defines the interface for dispatching a prompt to the
// model selected in a numbered LLM slot.
type GenerateWithSlot interface {
	// Execute sends the prompt to the slot's active model and returns the response.
	Execute(ctx context.Context, slot int, req domain.PromptRequest) (domain.AIResponse, error)
}

// GenerateWithSlotImpl is the implementation of the GenerateWithSlot use case.
type GenerateWithSlotImpl struct {
	registry domain.ModelRegistry
	resolver domain.ProviderResolver
}

// NewGenerateWithSlotImpl creates a new instance of GenerateWithSlotImpl.
func NewGenerateWithSlotImpl(registry domain.ModelRegistry, resolver domain.ProviderResolver) GenerateWithSlotImpl {
	return GenerateWithSlotImpl{registry: registry, resolver: resolver}
}

// Execute resolves the slot's active model to a provider adapter and
// dispatches the prompt. Every generation records token usage.
func (g GenerateWithSlotImpl) Execute(ctx context.Context, slot int, req domain.PromptRequest) (domain.AIResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("llm_slot", slot),
	))
	defer span.End()

	if err := req.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}

	urn, err := g.registry.ActiveLLM(slot)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}
	span.SetAttributes(attribute.String("model_urn", urn))

	provider, model, err := domain.ParseModelURN(urn)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}

	chat, err := g.resolver.Chat(provider)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}

	resp, err := chat.Chat(spanCtx, req, model)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}

	RecordLLMTokensUsed(spanCtx, resp.ModelName, resp.TokensUsed)
	return resp, nil
}

// InitGenerateWithSlot initializes the GenerateWithSlot use case.
type InitGenerateWithSlot struct {
	Registry domain.ModelRegistry    `resolve:""`
	Resolver domain.ProviderResolver `resolve:""`
}

// Initialize registers the GenerateWithSlot use case implementation.
func (i InitGenerateWithSlot) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateWithSlot](NewGenerateWithSlotImpl(i.Registry, i.Resolver))
	return ctx, nil
}
