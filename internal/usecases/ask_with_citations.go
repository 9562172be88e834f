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

// Retrieval and generation parameters for the citation-aware Q&A pipeline.
const (
	qaTopK          = 3
	qaTemperature   = 0.3
	qaSystemRole    = "You are a Q&A assistant. Answer based on the provided context and cite your sources."
	qaExcerptLength = 80

	qaEmptyKnowledgeBaseAnswer = "I don't have any documents in my knowledge base yet. Please ingest some PDFs first."
	qaEmptyModelName           = "N/A"
)

// qaPromptTemplate instructs the model to cite the numbered context blocks.
const qaPromptTemplate = `Answer the question based on the following context.
Include citations in your answer using the format [1], [2], etc.
If you don't know the answer, say "I don't have enough information."

Context:
%s

Question: %s

Answer (with citations):`

// AskWithCitations defines the interface for answering a question with
// numbered source citations.
type AskWithCitations interface {
	Execute(ctx context.Context, question string, slot int) (domain.QAAnswer, error)
}

// AskWithCitationsImpl is the implementation of the AskWithCitations use case.
type AskWithCitationsImpl struct {
	embeddings domain.EmbeddingSource
	store      domain.DocumentStore
	generate   GenerateWithSlot
}

// NewAskWithCitationsImpl creates a new instance of AskWithCitationsImpl.
func NewAskWithCitationsImpl(embeddings domain.EmbeddingSource, store domain.DocumentStore, generate GenerateWithSlot) AskWithCitationsImpl {
	return AskWithCitationsImpl{embeddings: embeddings, store: store, generate: generate}
}

// Execute retrieves the most similar chunks from the Q&A collection, numbers
// them as citation markers and asks the slot's LLM to answer with citations.
// An empty knowledge base short-circuits with a canned answer; no model is
// called in that case.
func (aw AskWithCitationsImpl) Execute(ctx context.Context, question string, slot int) (domain.QAAnswer, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.Int("llm_slot", slot))

	if strings.TrimSpace(question) == "" {
		err := domain.NewValidationErr("question must not be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.QAAnswer{}, err
	}

	embedder, err := aw.embeddings.ActiveEmbedder(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.QAAnswer{}, err
	}
	vector, err := embedder.EmbedText(spanCtx, question)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.QAAnswer{}, err
	}

	collection := domain.CollectionName(domain.CollectionPrefix_QA, embedder.Provider())
	chunks, err := aw.store.Query(spanCtx, collection, vector, qaTopK)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.QAAnswer{}, err
	}
	span.SetAttributes(attribute.Int("retrieved_chunks", len(chunks)))

	if len(chunks) == 0 {
		return domain.QAAnswer{
			Answer:    qaEmptyKnowledgeBaseAnswer,
			Citations: []domain.Citation{},
			ModelName: qaEmptyModelName,
		}, nil
	}

	contextParts := make([]string, len(chunks))
	citations := make([]domain.Citation, len(chunks))
	for i, chunk := range chunks {
		index := i + 1
		contextParts[i] = fmt.Sprintf("[%d] Source: %s, Page %d\n%s",
			index, chunk.Metadata.Filename, chunk.Metadata.Page, chunk.Text)
		citations[i] = domain.Citation{
			Index:   index,
			Source:  chunk.Metadata.Filename,
			Page:    chunk.Metadata.Page,
			Excerpt: citationExcerpt(chunk.Text),
		}
	}

	req := domain.PromptRequest{
		SystemRole:  qaSystemRole,
		UserQuery:   fmt.Sprintf(qaPromptTemplate, strings.Join(contextParts, "\n\n"), question),
		Temperature: qaTemperature,
	}
	resp, err := aw.generate.Execute(spanCtx, slot, req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.QAAnswer{}, err
	}

	return domain.QAAnswer{
		Answer:    resp.Content,
		Citations: citations,
		ModelName: resp.ModelName,
	}, nil
}

// citationExcerpt condenses chunk text into a short single-line preview.
// Truncation counts runes so a multibyte character is never cut in half.
func citationExcerpt(text string) string {
	runes := []rune(text)
	truncated := len(runes) > qaExcerptLength
	if truncated {
		text = string(runes[:qaExcerptLength])
	}
	excerpt := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if truncated {
		excerpt += "..."
	}
	return excerpt
}

// InitAskWithCitations initializes the AskWithCitations use case.
type InitAskWithCitations struct {
	Embeddings domain.EmbeddingSource `resolve:""`
	Store      domain.DocumentStore   `resolve:""`
	Generate   GenerateWithSlot       `resolve:""`
}

// Initialize registers the AskWithCitations use case implementation.
func (i InitAskWithCitations) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AskWithCitations](NewAskWithCitationsImpl(i.Embeddings, i.Store, i.Generate))
	return ctx, nil
}
