package domain

import "context"

// ChunkMetadata locates a chunk within its source document. Page is zero for
// plain-text sources.
type ChunkMetadata struct {
	Filename string `json:"filename"`
	Page     int    `json:"page,omitempty"`
	Sequence int    `json:"sequence"`
}

// Chunk is a unit of ingested text. Chunks are never mutated after creation;
// re-ingestion creates new records.
type Chunk struct {
	Text     string
	Metadata ChunkMetadata
}

// VectorRecord is a stored (text, embedding, metadata) triple. The embedding
// dimension is fixed by the owning embedding provider.
type VectorRecord struct {
	ID        string
	Text      string
	Embedding []float64
	Metadata  ChunkMetadata
}

// RetrievedChunk is a similarity-search result. Ranking semantics are
// delegated entirely to the underlying vector engine.
type RetrievedChunk struct {
	Text     string
	Metadata ChunkMetadata
}

// SourceFileStatus reports whether a file on disk has been ingested.
type SourceFileStatus string

const (
	SourceFileStatus_New      SourceFileStatus = "NEW"
	SourceFileStatus_Ingested SourceFileStatus = "INGESTED"
)

// SourceFile pairs a source-directory entry with its ingestion status.
type SourceFile struct {
	Name   string
	Status SourceFileStatus
}

// Citation binds a numbered context marker to its source document.
type Citation struct {
	Index   int
	Source  string
	Page    int
	Excerpt string
}

// QAAnswer is the citation-aware response of the Q&A engine. The citation
// list is returned untouched; the pipeline does not verify that the model
// actually cited correctly.
type QAAnswer struct {
	Answer    string
	Citations []Citation
	ModelName string
}

// Collection name prefixes. Basic RAG and citation-style Q&A never share a
// collection, and one collection exists per embedding-provider identity
// because embedding dimensions are provider-specific.
const (
	CollectionPrefix_Docs = "docs"
	CollectionPrefix_QA   = "qa_docs"
)

// CollectionName derives the vector collection name for a provider.
func CollectionName(prefix string, provider Provider) string {
	return prefix + "_" + string(provider)
}

// DocumentStore wraps one persistent vector collection per embedding-provider
// identity.
type DocumentStore interface {
	// Upsert stores records, overwriting on id collision. Idempotent per id.
	Upsert(ctx context.Context, collection string, records []VectorRecord) error
	// Query returns the top-k most similar chunks for the given embedding.
	Query(ctx context.Context, collection string, embedding []float64, k int) ([]RetrievedChunk, error)
	// ListIngestedFilenames scans stored metadata and returns the deduplicated,
	// sorted filenames. Not O(1); acceptable for small local corpora.
	ListIngestedFilenames(ctx context.Context, collection string) ([]string, error)
}

// PageText is the extracted text of one document page.
type PageText struct {
	Number int
	Text   string
}

// PDFReader extracts per-page plain text from a PDF file.
type PDFReader interface {
	ExtractPages(path string) ([]PageText, error)
}
