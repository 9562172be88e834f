package usecases

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/splitter"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// Chunking parameters for plain-text ingestion.
const (
	ragChunkSize    = 1000
	ragChunkOverlap = 100
)

// Per-file ingestion outcome messages.
const (
	IngestOutcome_Success    = "Success"
	IngestOutcome_EmptySplit = "Empty file or split error"
	IngestOutcome_NotText    = "Failed: Not a generic text file"
)

// IngestDocuments defines the interface for ingesting plain-text files into
// the RAG knowledge base.
type IngestDocuments interface {
	Execute(ctx context.Context, filenames []string) (map[string]string, error)
}

// IngestDocumentsImpl is the implementation of the IngestDocuments use case.
type IngestDocumentsImpl struct {
	embeddings domain.EmbeddingSource
	store      domain.DocumentStore
	logger     *log.Logger
	dir        string
}

// NewIngestDocumentsImpl creates a new instance of IngestDocumentsImpl.
func NewIngestDocumentsImpl(embeddings domain.EmbeddingSource, store domain.DocumentStore, logger *log.Logger, dir string) IngestDocumentsImpl {
	return IngestDocumentsImpl{embeddings: embeddings, store: store, logger: logger, dir: dir}
}

// Execute ingests each named file independently and reports a per-file
// outcome. One bad file never aborts the batch; only a failure to bind the
// active embedder is a hard error.
func (id IngestDocumentsImpl) Execute(ctx context.Context, filenames []string) (map[string]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.Int("file_count", len(filenames)))

	embedder, err := id.embeddings.ActiveEmbedder(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	collection := domain.CollectionName(domain.CollectionPrefix_Docs, embedder.Provider())
	split := splitter.New(ragChunkSize, ragChunkOverlap)

	outcomes := make(map[string]string, len(filenames))
	for _, filename := range filenames {
		outcome := id.ingestFile(spanCtx, embedder, split, collection, filename)
		if outcome != IngestOutcome_Success {
			id.logger.Printf("WARN: ingestion of %q did not succeed: %s", filename, outcome)
		}
		outcomes[filename] = outcome
	}
	return outcomes, nil
}

// ingestFile reads, splits, embeds and stores one file, returning its outcome
// message.
func (id IngestDocumentsImpl) ingestFile(
	ctx context.Context,
	embedder domain.BoundEmbedder,
	split *splitter.RecursiveCharacterSplitter,
	collection string,
	filename string,
) string {
	data, err := os.ReadFile(filepath.Join(id.dir, filename))
	if err != nil {
		return "Failed: " + err.Error()
	}
	if !utf8.Valid(data) {
		return IngestOutcome_NotText
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return IngestOutcome_EmptySplit
	}
	chunks := split.Split(text)
	if len(chunks) == 0 {
		return IngestOutcome_EmptySplit
	}

	vectors, err := embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		return "Failed: " + err.Error()
	}

	records := make([]domain.VectorRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = domain.VectorRecord{
			ID:        uuid.New().String(),
			Text:      chunk,
			Embedding: vectors[i],
			Metadata:  domain.ChunkMetadata{Filename: filename, Sequence: i},
		}
	}
	if err := id.store.Upsert(ctx, collection, records); err != nil {
		return "Failed: " + err.Error()
	}
	return IngestOutcome_Success
}

// InitIngestDocuments initializes the IngestDocuments use case.
type InitIngestDocuments struct {
	Embeddings domain.EmbeddingSource `resolve:""`
	Store      domain.DocumentStore   `resolve:""`
	Logger     *log.Logger            `resolve:""`
	Dir        string                 `config:"SOURCE_DOCUMENTS_DIR" default:"source_documents"`
}

// Initialize registers the IngestDocuments use case implementation.
func (i InitIngestDocuments) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IngestDocuments](NewIngestDocumentsImpl(i.Embeddings, i.Store, i.Logger, i.Dir))
	return ctx, nil
}
