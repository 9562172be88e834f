package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

func TestAskWithCitationsImpl_Execute(t *testing.T) {
	t.Run("answers-with-numbered-citations", func(t *testing.T) {
		queryVector := []float64{0.5}

		embedder := newOllamaBoundEmbedder(t)
		embedder.On("EmbedText", mock.Anything, "How do I install it?").
			Return(queryVector, nil).
			Once()
		embeddings := domain.NewMockEmbeddingSource(t)
		embeddings.On("ActiveEmbedder", mock.Anything).Return(embedder, nil).Once()

		store := domain.NewMockDocumentStore(t)
		store.On("Query", mock.Anything, "qa_docs_ollama", queryVector, 3).
			Return([]domain.RetrievedChunk{
				{Text: "Run the installer as administrator.", Metadata: domain.ChunkMetadata{Filename: "manual.pdf", Page: 4, Sequence: 1}},
				{Text: "Reboot after installation completes.", Metadata: domain.ChunkMetadata{Filename: "manual.pdf", Page: 5, Sequence: 2}},
			}, nil).
			Once()

		generate := &stubGenerator{
			responses: map[int]domain.AIResponse{
				1: {Content: "Run the installer as administrator [1], then reboot [2].", ModelName: "gemini/gemini-flash-latest"},
			},
		}

		uc := NewAskWithCitationsImpl(embeddings, store, generate)
		got, err := uc.Execute(context.Background(), "How do I install it?", 1)

		require.NoError(t, err)
		assert.Equal(t, "Run the installer as administrator [1], then reboot [2].", got.Answer)
		assert.Equal(t, "gemini/gemini-flash-latest", got.ModelName)
		assert.Equal(t, []domain.Citation{
			{Index: 1, Source: "manual.pdf", Page: 4, Excerpt: "Run the installer as administrator."},
			{Index: 2, Source: "manual.pdf", Page: 5, Excerpt: "Reboot after installation completes."},
		}, got.Citations)

		require.Len(t, generate.calls, 1)
		req := generate.calls[0].req
		assert.Equal(t, qaSystemRole, req.SystemRole)
		assert.Equal(t, qaTemperature, req.Temperature)
		assert.Contains(t, req.UserQuery, "[1] Source: manual.pdf, Page 4\nRun the installer as administrator.")
		assert.Contains(t, req.UserQuery, "[2] Source: manual.pdf, Page 5\nReboot after installation completes.")
		assert.Contains(t, req.UserQuery, "Question: How do I install it?")
	})

	t.Run("long-chunks-get-truncated-excerpts", func(t *testing.T) {
		longText := strings.Repeat("installation ", 20)

		embedder := newOllamaBoundEmbedder(t)
		embedder.On("EmbedText", mock.Anything, "How?").Return([]float64{1}, nil).Once()
		embeddings := domain.NewMockEmbeddingSource(t)
		embeddings.On("ActiveEmbedder", mock.Anything).Return(embedder, nil).Once()

		store := domain.NewMockDocumentStore(t)
		store.On("Query", mock.Anything, "qa_docs_ollama", []float64{1}, 3).
			Return([]domain.RetrievedChunk{
				{Text: longText, Metadata: domain.ChunkMetadata{Filename: "manual.pdf", Page: 1}},
			}, nil).
			Once()

		generate := &stubGenerator{
			responses: map[int]domain.AIResponse{1: {Content: "See [1]."}},
		}

		uc := NewAskWithCitationsImpl(embeddings, store, generate)
		got, err := uc.Execute(context.Background(), "How?", 1)

		require.NoError(t, err)
		require.Len(t, got.Citations, 1)
		excerpt := got.Citations[0].Excerpt
		assert.True(t, strings.HasSuffix(excerpt, "..."))
		assert.LessOrEqual(t, len(excerpt), qaExcerptLength+len("..."))
	})

	t.Run("empty-knowledge-base-short-circuits", func(t *testing.T) {
		embedder := newOllamaBoundEmbedder(t)
		embedder.On("EmbedText", mock.Anything, "Anything there?").Return([]float64{1}, nil).Once()
		embeddings := domain.NewMockEmbeddingSource(t)
		embeddings.On("ActiveEmbedder", mock.Anything).Return(embedder, nil).Once()

		store := domain.NewMockDocumentStore(t)
		store.On("Query", mock.Anything, "qa_docs_ollama", []float64{1}, 3).
			Return([]domain.RetrievedChunk{}, nil).
			Once()

		generate := &stubGenerator{}
		uc := NewAskWithCitationsImpl(embeddings, store, generate)
		got, err := uc.Execute(context.Background(), "Anything there?", 1)

		require.NoError(t, err)
		assert.Equal(t, qaEmptyKnowledgeBaseAnswer, got.Answer)
		assert.Equal(t, qaEmptyModelName, got.ModelName)
		assert.Empty(t, got.Citations)
		assert.Empty(t, generate.calls, "no model call on an empty knowledge base")
	})

	t.Run("blank-question-is-rejected", func(t *testing.T) {
		uc := NewAskWithCitationsImpl(domain.NewMockEmbeddingSource(t), domain.NewMockDocumentStore(t), &stubGenerator{})

		_, err := uc.Execute(context.Background(), "", 1)

		var validationErr *domain.ValidationErr
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("generation-failure-propagates", func(t *testing.T) {
		embedder := newOllamaBoundEmbedder(t)
		embedder.On("EmbedText", mock.Anything, "How?").Return([]float64{1}, nil).Once()
		embeddings := domain.NewMockEmbeddingSource(t)
		embeddings.On("ActiveEmbedder", mock.Anything).Return(embedder, nil).Once()

		store := domain.NewMockDocumentStore(t)
		store.On("Query", mock.Anything, "qa_docs_ollama", []float64{1}, 3).
			Return([]domain.RetrievedChunk{
				{Text: "Some relevant content worth citing.", Metadata: domain.ChunkMetadata{Filename: "manual.pdf", Page: 1}},
			}, nil).
			Once()

		generate := &stubGenerator{
			errs: map[int]error{1: domain.NewGenerationErr("backend down", nil)},
		}

		uc := NewAskWithCitationsImpl(embeddings, store, generate)
		_, err := uc.Execute(context.Background(), "How?", 1)

		var genErr *domain.GenerationErr
		assert.ErrorAs(t, err, &genErr)
	})
}

func TestCitationExcerpt(t *testing.T) {
	tests := map[string]struct {
		text     string
		expected string
	}{
		"short-text-unchanged": {
			text:     "A short chunk.",
			expected: "A short chunk.",
		},
		"newlines-become-spaces": {
			text:     "First line\nsecond line",
			expected: "First line second line",
		},
		"long-text-truncated": {
			text:     strings.Repeat("a", 100),
			expected: strings.Repeat("a", 80) + "...",
		},
		"trailing-space-trimmed-before-ellipsis": {
			text:     strings.Repeat("a", 79) + " " + strings.Repeat("b", 20),
			expected: strings.Repeat("a", 79) + "...",
		},
		"multibyte-text-truncated-on-rune-boundary": {
			text:     strings.Repeat("é", 100),
			expected: strings.Repeat("é", 80) + "...",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, citationExcerpt(tt.text))
		})
	}
}

func TestInitAskWithCitations_Initialize(t *testing.T) {
	init := InitAskWithCitations{
		Embeddings: domain.NewMockEmbeddingSource(t),
		Store:      domain.NewMockDocumentStore(t),
		Generate:   &stubGenerator{},
	}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[AskWithCitations]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
