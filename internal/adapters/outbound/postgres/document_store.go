package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

// collectionNamePattern guards the identifiers interpolated into DDL.
// Collection names are built from fixed prefixes and provider names, so
// anything outside this shape is a programming error.
var collectionNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// collectionDDL is the per-collection table shape. The embedding column is
// deliberately dimensionless; each collection stores vectors from exactly one
// embedding model.
const collectionDDL = "CREATE TABLE IF NOT EXISTS %s (id uuid PRIMARY KEY, content text NOT NULL, embedding vector NOT NULL, metadata jsonb NOT NULL DEFAULT '{}')"

// DocumentStore implements domain.DocumentStore on Postgres with pgvector.
// Each collection is its own table with an untyped vector column, because
// embedding dimensions differ per provider and pgvector only enforces a
// dimension when one is declared.
type DocumentStore struct {
	db *sql.DB
	sb squirrel.StatementBuilderType

	mu       sync.Mutex
	prepared map[string]bool
}

// NewDocumentStore creates a new store
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{
		db:       db,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
		prepared: map[string]bool{},
	}
}

// Upsert implements domain.DocumentStore.Upsert
func (ds *DocumentStore) Upsert(ctx context.Context, collection string, records []domain.VectorRecord) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := ds.ensureCollection(spanCtx, collection); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	for _, record := range records {
		metadata, err := json.Marshal(record.Metadata)
		if telemetry.RecordErrorAndStatus(span, err) {
			return fmt.Errorf("marshal chunk metadata: %w", err)
		}

		_, err = ds.sb.
			Insert(collection).
			Columns("id", "content", "embedding", "metadata").
			Values(
				record.ID,
				record.Text,
				pgvector.NewVector(toFloat32(record.Embedding)),
				metadata,
			).
			Suffix("ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content, embedding = EXCLUDED.embedding, metadata = EXCLUDED.metadata").
			ExecContext(spanCtx)
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
	}
	return nil
}

// Query implements domain.DocumentStore.Query. Ranking is delegated entirely
// to pgvector's cosine distance operator.
func (ds *DocumentStore) Query(ctx context.Context, collection string, embedding []float64, k int) ([]domain.RetrievedChunk, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if k <= 0 {
		return nil, domain.NewValidationErr("k must be greater than 0")
	}
	if err := ds.ensureCollection(spanCtx, collection); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	queryVector := pgvector.NewVector(toFloat32(embedding))
	rows, err := ds.sb.
		Select("content", "metadata").
		From(collection).
		OrderByClause(squirrel.Expr("embedding <=> ?", queryVector)).
		Limit(uint64(k)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var chunks []domain.RetrievedChunk
	for rows.Next() {
		var chunk domain.RetrievedChunk
		var metadata []byte
		if err := rows.Scan(&chunk.Text, &metadata); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if err := json.Unmarshal(metadata, &chunk.Metadata); telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("unmarshal chunk metadata: %w", err)
		}
		chunks = append(chunks, chunk)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return chunks, nil
}

// ListIngestedFilenames implements domain.DocumentStore.ListIngestedFilenames
func (ds *DocumentStore) ListIngestedFilenames(ctx context.Context, collection string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := ds.ensureCollection(spanCtx, collection); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	rows, err := ds.sb.
		Select("DISTINCT metadata->>'filename'").
		From(collection).
		OrderBy("metadata->>'filename'").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var filenames []string
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if name.Valid && name.String != "" {
			filenames = append(filenames, name.String)
		}
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return filenames, nil
}

// ensureCollection creates the collection table on first touch. Creation is
// idempotent, so the in-process cache is only a round-trip saver.
func (ds *DocumentStore) ensureCollection(ctx context.Context, collection string) error {
	if !collectionNamePattern.MatchString(collection) {
		return domain.NewValidationErr(fmt.Sprintf("invalid collection name %q", collection))
	}

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.prepared[collection] {
		return nil
	}

	if _, err := ds.db.ExecContext(ctx, fmt.Sprintf(collectionDDL, collection)); err != nil {
		return fmt.Errorf("create collection %s: %w", collection, err)
	}

	ds.prepared[collection] = true
	return nil
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}

// InitDocumentStore is a Symbiont initializer for DocumentStore.
type InitDocumentStore struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the DocumentStore in the dependency container.
func (i InitDocumentStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.DocumentStore](NewDocumentStore(i.DB))
	return ctx, nil
}
