package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// Retrieval and generation parameters for the RAG pipeline.
const (
	ragTopK        = 3
	ragTemperature = 0.3
	ragSystemRole  = "You are a RAG assistant. Use the provided context."

	ragEmptyContext   = "No relevant context found in knowledge base."
	ragChunkSeparator = "\n\n---\n\n"
)

// ragPromptTemplate grounds the model on retrieved context before the
// question is asked.
const ragPromptTemplate = `
You are a helpful AI assistant. Answer the user's question based strictly on the provided context.
If the answer is not in the context, say "I don't have enough information in my knowledge base."

Context:
%s

User Question: %s

Answer:
`

// GenerateRAGAnswer defines the interface for answering a question grounded
// on the ingested knowledge base.
type GenerateRAGAnswer interface {
	Execute(ctx context.Context, query string, slot int) (domain.AIResponse, error)
}

// GenerateRAGAnswerImpl is the implementation of the GenerateRAGAnswer use case.
type GenerateRAGAnswerImpl struct {
	embeddings domain.EmbeddingSource
	store      domain.DocumentStore
	generate   GenerateWithSlot
}

// NewGenerateRAGAnswerImpl creates a new instance of GenerateRAGAnswerImpl.
func NewGenerateRAGAnswerImpl(embeddings domain.EmbeddingSource, store domain.DocumentStore, generate GenerateWithSlot) GenerateRAGAnswerImpl {
	return GenerateRAGAnswerImpl{embeddings: embeddings, store: store, generate: generate}
}

// Execute embeds the query, retrieves the most similar chunks from the active
// embedding provider's collection and asks the slot's LLM to answer from that
// context only. An empty retrieval still reaches the model, with a sentinel
// context, so the model can say it does not know.
func (gr GenerateRAGAnswerImpl) Execute(ctx context.Context, query string, slot int) (domain.AIResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.Int("llm_slot", slot))

	if strings.TrimSpace(query) == "" {
		err := domain.NewValidationErr("query must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AIResponse{}, err
	}

	embedder, err := gr.embeddings.ActiveEmbedder(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}
	vector, err := embedder.EmbedText(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}

	collection := domain.CollectionName(domain.CollectionPrefix_Docs, embedder.Provider())
	chunks, err := gr.store.Query(spanCtx, collection, vector, ragTopK)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}
	span.SetAttributes(attribute.Int("retrieved_chunks", len(chunks)))

	contextText := ragEmptyContext
	if len(chunks) > 0 {
		texts := make([]string, len(chunks))
		for i, chunk := range chunks {
			texts[i] = chunk.Text
		}
		contextText = strings.Join(texts, ragChunkSeparator)
	}

	req := domain.PromptRequest{
		SystemRole:  ragSystemRole,
		UserQuery:   fmt.Sprintf(ragPromptTemplate, contextText, query),
		Temperature: ragTemperature,
	}
	resp, err := gr.generate.Execute(spanCtx, slot, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AIResponse{}, err
	}
	return resp, nil
}

// InitGenerateRAGAnswer initializes the GenerateRAGAnswer use case.
type InitGenerateRAGAnswer struct {
	Embeddings domain.EmbeddingSource `resolve:""`
	Store      domain.DocumentStore   `resolve:""`
	Generate   GenerateWithSlot       `resolve:""`
}

// Initialize registers the GenerateRAGAnswer use case implementation.
func (i InitGenerateRAGAnswer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateRAGAnswer](NewGenerateRAGAnswerImpl(i.Embeddings, i.Store, i.Generate))
	return ctx, nil
}
