package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// ListQASourceFiles defines the interface for listing PDF source files
// together with their ingestion status in the Q&A knowledge base.
type ListQASourceFiles interface {
	Query(ctx context.Context) ([]domain.SourceFile, error)
}

// ListQASourceFilesImpl is the implementation of the ListQASourceFiles use case.
type ListQASourceFilesImpl struct {
	embeddings domain.EmbeddingSource
	store      domain.DocumentStore
	dir        string
}

// NewListQASourceFilesImpl creates a new instance of ListQASourceFilesImpl.
func NewListQASourceFilesImpl(embeddings domain.EmbeddingSource, store domain.DocumentStore, dir string) ListQASourceFilesImpl {
	return ListQASourceFilesImpl{embeddings: embeddings, store: store, dir: dir}
}

// Query lists the PDF files in the Q&A documents directory and marks each one
// NEW or INGESTED against the Q&A collection of the active embedding provider.
func (ls ListQASourceFilesImpl) Query(ctx context.Context) ([]domain.SourceFile, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	embedder, err := ls.embeddings.ActiveEmbedder(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	collection := domain.CollectionName(domain.CollectionPrefix_QA, embedder.Provider())

	ingested, err := ls.store.ListIngestedFilenames(spanCtx, collection)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	ingestedSet := make(map[string]struct{}, len(ingested))
	for _, name := range ingested {
		ingestedSet[name] = struct{}{}
	}

	names, err := listDirFiles(ls.dir)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	var files []domain.SourceFile
	for _, name := range names {
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			continue
		}
		status := domain.SourceFileStatus_New
		if _, ok := ingestedSet[name]; ok {
			status = domain.SourceFileStatus_Ingested
		}
		files = append(files, domain.SourceFile{Name: name, Status: status})
	}
	return files, nil
}

// InitListQASourceFiles initializes the ListQASourceFiles use case.
type InitListQASourceFiles struct {
	Embeddings domain.EmbeddingSource `resolve:""`
	Store      domain.DocumentStore   `resolve:""`
	Dir        string                 `config:"QA_DOCUMENTS_DIR" default:"qa_documents"`
}

// Initialize registers the ListQASourceFiles use case implementation.
func (i InitListQASourceFiles) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListQASourceFiles](NewListQASourceFilesImpl(i.Embeddings, i.Store, i.Dir))
	return ctx, nil
}
