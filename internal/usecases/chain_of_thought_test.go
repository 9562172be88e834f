package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

// slotCall records one dispatch through the stub generator.
type slotCall struct {
	slot int
	req  domain.PromptRequest
}

// stubGenerator replays scripted responses per slot and records every call.
type stubGenerator struct {
	calls     []slotCall
	responses map[int]domain.AIResponse
	errs      map[int]error
}

func (s *stubGenerator) Execute(_ context.Context, slot int, req domain.PromptRequest) (domain.AIResponse, error) {
	s.calls = append(s.calls, slotCall{slot: slot, req: req})
	if err := s.errs[slot]; err != nil {
		return domain.AIResponse{}, err
	}
	return s.responses[slot], nil
}

func TestChainOfThoughtImpl_Execute(t *testing.T) {
	longAnalysis := "The question asks about the boiling point of water at standard atmospheric pressure."

	t.Run("runs-analysis-then-synthesis", func(t *testing.T) {
		generate := &stubGenerator{
			responses: map[int]domain.AIResponse{
				COT_ANALYSIS_SLOT:  {Content: longAnalysis, TokensUsed: 30, ModelName: "ollama/llama3:latest"},
				COT_SYNTHESIS_SLOT: {Content: "Water boils at 100C.", TokensUsed: 12, ModelName: "gemini/gemini-flash-latest"},
			},
		}
		uc := NewChainOfThoughtImpl(generate)

		got, err := uc.Execute(context.Background(), domain.PromptRequest{
			UserQuery:   "At what temperature does water boil?",
			Temperature: 0.5,
		})
		require.NoError(t, err)

		require.Len(t, generate.calls, 2)
		assert.Equal(t, COT_ANALYSIS_SLOT, generate.calls[0].slot)
		assert.Equal(t, COT_SYNTHESIS_SLOT, generate.calls[1].slot)

		analysisReq := generate.calls[0].req
		assert.Equal(t, "You are a careful analytical thinker.", analysisReq.SystemRole)
		assert.Contains(t, analysisReq.UserQuery, "At what temperature does water boil?")
		assert.Contains(t, analysisReq.UserQuery, "Do not solve it yet")
		assert.Equal(t, 0.5, analysisReq.Temperature)

		synthesisReq := generate.calls[1].req
		assert.Equal(t, domain.DefaultSystemRole, synthesisReq.SystemRole)
		assert.Contains(t, synthesisReq.UserQuery, "At what temperature does water boil?")
		assert.Contains(t, synthesisReq.UserQuery, longAnalysis)

		assert.Equal(t, "Water boils at 100C.", got.Content)
		assert.Equal(t, 42, got.TokensUsed)
		assert.Equal(t, "gemini/gemini-flash-latest", got.ModelName)
		assert.Equal(t, []domain.PipelineStep{
			{Label: COT_STEP_ANALYSIS, Content: longAnalysis},
			{Label: COT_STEP_SYNTHESIS, Content: "Water boils at 100C."},
		}, got.Steps)
	})

	t.Run("short-analysis-skips-synthesis", func(t *testing.T) {
		generate := &stubGenerator{
			responses: map[int]domain.AIResponse{
				COT_ANALYSIS_SLOT: {Content: "   too short   ", TokensUsed: 3},
			},
		}
		uc := NewChainOfThoughtImpl(generate)

		_, err := uc.Execute(context.Background(), domain.PromptRequest{UserQuery: "Why?"})

		var failure *domain.AnalysisFailureErr
		require.ErrorAs(t, err, &failure)
		assert.Len(t, generate.calls, 1)
	})

	t.Run("analysis-exactly-at-threshold-proceeds", func(t *testing.T) {
		analysis := strings.Repeat("a", COT_MIN_ANALYSIS_LENGTH)
		generate := &stubGenerator{
			responses: map[int]domain.AIResponse{
				COT_ANALYSIS_SLOT:  {Content: analysis},
				COT_SYNTHESIS_SLOT: {Content: "answer"},
			},
		}
		uc := NewChainOfThoughtImpl(generate)

		got, err := uc.Execute(context.Background(), domain.PromptRequest{UserQuery: "Why?"})
		require.NoError(t, err)
		assert.Len(t, generate.calls, 2)
		assert.Equal(t, "answer", got.Content)
	})

	t.Run("analysis-error-skips-synthesis", func(t *testing.T) {
		generate := &stubGenerator{
			errs: map[int]error{
				COT_ANALYSIS_SLOT: domain.NewGenerationErr("backend down", nil),
			},
		}
		uc := NewChainOfThoughtImpl(generate)

		_, err := uc.Execute(context.Background(), domain.PromptRequest{UserQuery: "Why?"})

		var genErr *domain.GenerationErr
		require.ErrorAs(t, err, &genErr)
		assert.Len(t, generate.calls, 1)
	})

	t.Run("synthesis-error-propagates", func(t *testing.T) {
		generate := &stubGenerator{
			responses: map[int]domain.AIResponse{
				COT_ANALYSIS_SLOT: {Content: longAnalysis},
			},
			errs: map[int]error{
				COT_SYNTHESIS_SLOT: domain.NewTimeoutErr("deadline exceeded", nil),
			},
		}
		uc := NewChainOfThoughtImpl(generate)

		_, err := uc.Execute(context.Background(), domain.PromptRequest{UserQuery: "Why?"})

		var timeoutErr *domain.TimeoutErr
		require.ErrorAs(t, err, &timeoutErr)
		assert.Len(t, generate.calls, 2)
	})

	t.Run("invalid-request-calls-nothing", func(t *testing.T) {
		generate := &stubGenerator{}
		uc := NewChainOfThoughtImpl(generate)

		_, err := uc.Execute(context.Background(), domain.PromptRequest{UserQuery: ""})

		var validationErr *domain.ValidationErr
		require.ErrorAs(t, err, &validationErr)
		assert.Empty(t, generate.calls)
	})

	t.Run("custom-system-role-reaches-synthesis-only", func(t *testing.T) {
		generate := &stubGenerator{
			responses: map[int]domain.AIResponse{
				COT_ANALYSIS_SLOT:  {Content: longAnalysis},
				COT_SYNTHESIS_SLOT: {Content: "answer"},
			},
		}
		uc := NewChainOfThoughtImpl(generate)

		_, err := uc.Execute(context.Background(), domain.PromptRequest{
			UserQuery:  "Why?",
			SystemRole: "You are a pirate.",
		})
		require.NoError(t, err)
		require.Len(t, generate.calls, 2)
		assert.Equal(t, "You are a careful analytical thinker.", generate.calls[0].req.SystemRole)
		assert.Equal(t, "You are a pirate.", generate.calls[1].req.SystemRole)
	})
}

func TestInitChainOfThought_Initialize(t *testing.T) {
	init := InitChainOfThought{Generate: &stubGenerator{}}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[ChainOfThought]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
