package usecases

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

// newOllamaBoundEmbedder builds a bound-embedder mock for the default local
// provider. Expectations beyond Provider are left to each test.
func newOllamaBoundEmbedder(t *testing.T) *domain.MockBoundEmbedder {
	embedder := domain.NewMockBoundEmbedder(t)
	embedder.On("Provider").Return(domain.Provider_Ollama).Maybe()
	return embedder
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestListSourceFilesImpl_Query(t *testing.T) {
	t.Run("marks-ingested-and-new-files", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, dir, "alpha.txt", "alpha")
		writeTestFile(t, dir, "beta.txt", "beta")
		writeTestFile(t, dir, ".hidden", "secret")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

		embedder := newOllamaBoundEmbedder(t)
		embeddings := domain.NewMockEmbeddingSource(t)
		embeddings.On("ActiveEmbedder", mock.Anything).Return(embedder, nil).Once()

		store := domain.NewMockDocumentStore(t)
		store.On("ListIngestedFilenames", mock.Anything, "docs_ollama").
			Return([]string{"alpha.txt"}, nil).
			Once()

		uc := NewListSourceFilesImpl(embeddings, store, dir)
		got, err := uc.Query(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []domain.SourceFile{
			{Name: "alpha.txt", Status: domain.SourceFileStatus_Ingested},
			{Name: "beta.txt", Status: domain.SourceFileStatus_New},
		}, got)
	})

	t.Run("missing-directory-is-empty", func(t *testing.T) {
		embedder := newOllamaBoundEmbedder(t)
		embeddings := domain.NewMockEmbeddingSource(t)
		embeddings.On("ActiveEmbedder", mock.Anything).Return(embedder, nil).Once()

		store := domain.NewMockDocumentStore(t)
		store.On("ListIngestedFilenames", mock.Anything, "docs_ollama").
			Return([]string{}, nil).
			Once()

		uc := NewListSourceFilesImpl(embeddings, store, filepath.Join(t.TempDir(), "does-not-exist"))
		got, err := uc.Query(context.Background())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("embedder-binding-failure-propagates", func(t *testing.T) {
		embeddings := domain.NewMockEmbeddingSource(t)
		embeddings.On("ActiveEmbedder", mock.Anything).
			Return(nil, domain.NewMissingCredentialErr("gemini API key is not configured")).
			Once()

		uc := NewListSourceFilesImpl(embeddings, domain.NewMockDocumentStore(t), t.TempDir())
		_, err := uc.Query(context.Background())

		var credErr *domain.MissingCredentialErr
		assert.ErrorAs(t, err, &credErr)
	})

	t.Run("store-failure-propagates", func(t *testing.T) {
		embedder := newOllamaBoundEmbedder(t)
		embeddings := domain.NewMockEmbeddingSource(t)
		embeddings.On("ActiveEmbedder", mock.Anything).Return(embedder, nil).Once()

		store := domain.NewMockDocumentStore(t)
		store.On("ListIngestedFilenames", mock.Anything, "docs_ollama").
			Return(nil, domain.NewGenerationErr("database unreachable", nil)).
			Once()

		uc := NewListSourceFilesImpl(embeddings, store, t.TempDir())
		_, err := uc.Query(context.Background())

		var genErr *domain.GenerationErr
		assert.ErrorAs(t, err, &genErr)
	})
}

func TestInitListSourceFiles_Initialize(t *testing.T) {
	init := InitListSourceFiles{
		Embeddings: domain.NewMockEmbeddingSource(t),
		Store:      domain.NewMockDocumentStore(t),
		Dir:        "source_documents",
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[ListSourceFiles]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
