package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

const (
	// Slot routing for the two reasoning stages: the secondary model analyzes,
	// the primary model synthesizes.
	COT_ANALYSIS_SLOT  = 2
	COT_SYNTHESIS_SLOT = 1

	// Minimum analysis length, after trimming, required to proceed to
	// synthesis. Anything shorter is no basis for a final answer.
	COT_MIN_ANALYSIS_LENGTH = 40

	// Step labels preserved in AIResponse.Steps for display.
	COT_STEP_ANALYSIS  = "Analysis"
	COT_STEP_SYNTHESIS = "Synthesis"
)

const analysisPromptTemplate = `Analyze the following question step by step. Break it down into its parts, identify what is being asked and what knowledge is needed. Do not solve it yet, only analyze.

Question: %s`

const synthesisPromptTemplate = `Using the analysis below, give a final comprehensive answer to the original question.

Original Question: %s

Analysis:
%s

Final Answer:`

// ChainOfThought defines the interface for the two-stage reasoning pipeline.
type ChainOfThought interface {
	// Execute runs analysis then synthesis and returns the combined response.
	Execute(ctx context.Context, req domain.PromptRequest) (domain.AIResponse, error)
}

// ChainOfThoughtImpl is the implementation of the ChainOfThought use case.
type ChainOfThoughtImpl struct {
	generate GenerateWithSlot
}

// NewChainOfThoughtImpl creates a new instance of ChainOfThoughtImpl.
func NewChainOfThoughtImpl(generate GenerateWithSlot) ChainOfThoughtImpl {
	return ChainOfThoughtImpl{generate: generate}
}

// Execute runs the analysis stage on the secondary slot, then the synthesis
// stage on the primary slot. A failed or insufficient analysis aborts the
// pipeline; the synthesis stage is never invoked on an empty basis. Neither
// stage is retried.
func (c ChainOfThoughtImpl) Execute(ctx context.Context, req domain.PromptRequest) (domain.AIResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := req.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}

	analysisResp, err := c.generate.Execute(spanCtx, COT_ANALYSIS_SLOT, domain.PromptRequest{
		SystemRole:  "You are a careful analytical thinker.",
		UserQuery:   fmt.Sprintf(analysisPromptTemplate, req.UserQuery),
		Temperature: req.Temperature,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}

	analysis := strings.TrimSpace(analysisResp.Content)
	if len(analysis) < COT_MIN_ANALYSIS_LENGTH {
		err := domain.NewAnalysisFailureErr(fmt.Sprintf(
			"analysis stage produced %d characters, need at least %d", len(analysis), COT_MIN_ANALYSIS_LENGTH,
		))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AIResponse{}, err
	}

	synthesisResp, err := c.generate.Execute(spanCtx, COT_SYNTHESIS_SLOT, domain.PromptRequest{
		SystemRole:  req.EffectiveSystemRole(),
		UserQuery:   fmt.Sprintf(synthesisPromptTemplate, req.UserQuery, analysis),
		Temperature: req.Temperature,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}

	return domain.AIResponse{
		Content:    synthesisResp.Content,
		TokensUsed: analysisResp.TokensUsed + synthesisResp.TokensUsed,
		ModelName:  synthesisResp.ModelName,
		Steps: []domain.PipelineStep{
			{Label: COT_STEP_ANALYSIS, Content: analysis},
			{Label: COT_STEP_SYNTHESIS, Content: synthesisResp.Content},
		},
	}, nil
}

// InitChainOfThought initializes the ChainOfThought use case.
type InitChainOfThought struct {
	Generate GenerateWithSlot `resolve:""`
}

// Initialize registers the ChainOfThought use case implementation.
func (i InitChainOfThought) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ChainOfThought](NewChainOfThoughtImpl(i.Generate))
	return ctx, nil
}
