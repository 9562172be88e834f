package usecases

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/splitter"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// Chunking parameters for PDF ingestion. Pages are smaller than plain-text
// files, so the chunks are too.
const (
	qaChunkSize     = 500
	qaChunkOverlap  = 50
	qaMinChunkChars = 20
)

// IngestOutcome_EmptyParse reports a PDF that yielded no usable chunks.
const IngestOutcome_EmptyParse = "Empty file or parse error"

// IngestQADocuments defines the interface for ingesting PDF files into the
// Q&A knowledge base.
type IngestQADocuments interface {
	Execute(ctx context.Context, filenames []string) (map[string]string, error)
}

// IngestQADocumentsImpl is the implementation of the IngestQADocuments use case.
type IngestQADocumentsImpl struct {
	embeddings domain.EmbeddingSource
	store      domain.DocumentStore
	reader     domain.PDFReader
	logger     *log.Logger
	dir        string
}

// NewIngestQADocumentsImpl creates a new instance of IngestQADocumentsImpl.
func NewIngestQADocumentsImpl(
	embeddings domain.EmbeddingSource,
	store domain.DocumentStore,
	reader domain.PDFReader,
	logger *log.Logger,
	dir string,
) IngestQADocumentsImpl {
	return IngestQADocumentsImpl{embeddings: embeddings, store: store, reader: reader, logger: logger, dir: dir}
}

// Execute ingests each named PDF independently and reports a per-file
// outcome. One bad file never aborts the batch; only a failure to bind the
// active embedder is a hard error.
func (iq IngestQADocumentsImpl) Execute(ctx context.Context, filenames []string) (map[string]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.Int("file_count", len(filenames)))

	embedder, err := iq.embeddings.ActiveEmbedder(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	collection := domain.CollectionName(domain.CollectionPrefix_QA, embedder.Provider())
	split := splitter.New(qaChunkSize, qaChunkOverlap)

	outcomes := make(map[string]string, len(filenames))
	for _, filename := range filenames {
		outcome := iq.ingestPDF(spanCtx, embedder, split, collection, filename)
		if !strings.HasPrefix(outcome, IngestOutcome_Success) {
			iq.logger.Printf("WARN: ingestion of %q did not succeed: %s", filename, outcome)
		}
		outcomes[filename] = outcome
	}
	return outcomes, nil
}

// ingestPDF extracts, splits, embeds and stores one PDF, returning its
// outcome message.
func (iq IngestQADocumentsImpl) ingestPDF(
	ctx context.Context,
	embedder domain.BoundEmbedder,
	split *splitter.RecursiveCharacterSplitter,
	collection string,
	filename string,
) string {
	pages, err := iq.reader.ExtractPages(filepath.Join(iq.dir, filename))
	if err != nil {
		return "Failed: " + err.Error()
	}
	chunks := chunkPages(split, filename, pages)
	if len(chunks) == 0 {
		return IngestOutcome_EmptyParse
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}
	vectors, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return "Failed: " + err.Error()
	}

	records := make([]domain.VectorRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = domain.VectorRecord{
			ID:        uuid.New().String(),
			Text:      chunk.Text,
			Embedding: vectors[i],
			Metadata:  chunk.Metadata,
		}
	}
	if err := iq.store.Upsert(ctx, collection, records); err != nil {
		return "Failed: " + err.Error()
	}
	return fmt.Sprintf("%s (%d chunks)", IngestOutcome_Success, len(chunks))
}

// chunkPages splits every non-empty page and keeps only chunks with enough
// substance to be worth citing.
func chunkPages(split *splitter.RecursiveCharacterSplitter, filename string, pages []domain.PageText) []domain.Chunk {
	var chunks []domain.Chunk
	for _, page := range pages {
		text := strings.TrimSpace(page.Text)
		if text == "" {
			continue
		}
		sequence := 0
		for _, chunkText := range split.Split(text) {
			chunkText = strings.TrimSpace(chunkText)
			if len(chunkText) <= qaMinChunkChars {
				continue
			}
			sequence++
			chunks = append(chunks, domain.Chunk{
				Text: chunkText,
				Metadata: domain.ChunkMetadata{
					Filename: filename,
					Page:     page.Number,
					Sequence: sequence,
				},
			})
		}
	}
	return chunks
}

// InitIngestQADocuments initializes the IngestQADocuments use case.
type InitIngestQADocuments struct {
	Embeddings domain.EmbeddingSource `resolve:""`
	Store      domain.DocumentStore   `resolve:""`
	Reader     domain.PDFReader       `resolve:""`
	Logger     *log.Logger            `resolve:""`
	Dir        string                 `config:"QA_DOCUMENTS_DIR" default:"qa_documents"`
}

// Initialize registers the IngestQADocuments use case implementation.
func (i InitIngestQADocuments) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IngestQADocuments](NewIngestQADocumentsImpl(i.Embeddings, i.Store, i.Reader, i.Logger, i.Dir))
	return ctx, nil
}
