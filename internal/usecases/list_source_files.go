package usecases

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// ListSourceFiles defines the interface for listing plain-text source files
// together with their ingestion status.
type ListSourceFiles interface {
	Query(ctx context.Context) ([]domain.SourceFile, error)
}

// ListSourceFilesImpl is the implementation of the ListSourceFiles use case.
type ListSourceFilesImpl struct {
	embeddings domain.EmbeddingSource
	store      domain.DocumentStore
	dir        string
}

// NewListSourceFilesImpl creates a new instance of ListSourceFilesImpl.
func NewListSourceFilesImpl(embeddings domain.EmbeddingSource, store domain.DocumentStore, dir string) ListSourceFilesImpl {
	return ListSourceFilesImpl{embeddings: embeddings, store: store, dir: dir}
}

// Query lists the files in the source-documents directory and marks each one
// NEW or INGESTED against the collection of the active embedding provider.
// A missing directory yields an empty listing, not an error.
func (ls ListSourceFilesImpl) Query(ctx context.Context) ([]domain.SourceFile, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	embedder, err := ls.embeddings.ActiveEmbedder(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	collection := domain.CollectionName(domain.CollectionPrefix_Docs, embedder.Provider())

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

	files := make([]domain.SourceFile, 0, len(names))
	for _, name := range names {
		status := domain.SourceFileStatus_New
		if _, ok := ingestedSet[name]; ok {
			status = domain.SourceFileStatus_Ingested
		}
		files = append(files, domain.SourceFile{Name: name, Status: status})
	}
	return files, nil
}

// listDirFiles returns the sorted regular-file names in dir, skipping hidden
// entries. A missing directory is treated as empty.
func listDirFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// InitListSourceFiles initializes the ListSourceFiles use case.
type InitListSourceFiles struct {
	Embeddings domain.EmbeddingSource `resolve:""`
	Store      domain.DocumentStore   `resolve:""`
	Dir        string                 `config:"SOURCE_DOCUMENTS_DIR" default:"source_documents"`
}

// Initialize registers the ListSourceFiles use case implementation.
func (i InitListSourceFiles) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListSourceFiles](NewListSourceFilesImpl(i.Embeddings, i.Store, i.Dir))
	return ctx, nil
}
