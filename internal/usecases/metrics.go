package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter         = otel.Meter("usecases")
	LLMTokensUsed metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed per generation, best-effort as reported by the backend.
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the tokens consumed by one generation call.
func RecordLLMTokensUsed(ctx context.Context, model string, totalTokens int) {
	if totalTokens <= 0 {
		return
	}
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("model", model),
	))
}
