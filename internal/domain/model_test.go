package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModelURN(t *testing.T) {
	tests := map[string]struct {
		urn              string
		expectedProvider Provider
		expectedModel    string
		expectMalformed  bool
	}{
		"local-model": {
			urn:              "ollama/gemma:2b",
			expectedProvider: Provider_Ollama,
			expectedModel:    "gemma:2b",
		},
		"cloud-model": {
			urn:              "gemini/gemini-flash-latest",
			expectedProvider: Provider_Gemini,
			expectedModel:    "gemini-flash-latest",
		},
		"model-name-with-slash": {
			urn:              "ollama/library/nomic-embed-text",
			expectedProvider: Provider_Ollama,
			expectedModel:    "library/nomic-embed-text",
		},
		"uppercase-provider": {
			urn:              "Gemini/gemini-flash-latest",
			expectedProvider: Provider_Gemini,
			expectedModel:    "gemini-flash-latest",
		},
		"no-separator": {
			urn:             "gemma:2b",
			expectMalformed: true,
		},
		"empty": {
			urn:             "",
			expectMalformed: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			provider, model, err := ParseModelURN(tt.urn)
			if tt.expectMalformed {
				var malformed *MalformedIdentifierErr
				assert.ErrorAs(t, err, &malformed)
				assert.Contains(t, err.Error(), "provider/model-name")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedProvider, provider)
			assert.Equal(t, tt.expectedModel, model)
		})
	}
}

func TestParseModelURN_RoundTrip(t *testing.T) {
	urns := []string{
		"ollama/gemma:2b",
		"gemini/text-embedding-004",
		"ollama/embeddinggemma",
	}
	for _, urn := range urns {
		provider, model, err := ParseModelURN(urn)
		assert.NoError(t, err)
		assert.Equal(t, urn, BuildModelURN(provider, model))
	}
}

func TestPromptRequest_Validate(t *testing.T) {
	tests := map[string]struct {
		req         PromptRequest
		expectedErr string
	}{
		"valid": {
			req: PromptRequest{UserQuery: "hello", Temperature: 0.7},
		},
		"empty-query": {
			req:         PromptRequest{Temperature: 0.7},
			expectedErr: "user_query must not be empty",
		},
		"temperature-too-high": {
			req:         PromptRequest{UserQuery: "hello", Temperature: 1.5},
			expectedErr: "temperature must be between 0.0 and 1.0",
		},
		"temperature-negative": {
			req:         PromptRequest{UserQuery: "hello", Temperature: -0.1},
			expectedErr: "temperature must be between 0.0 and 1.0",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestPromptRequest_EffectiveSystemRole(t *testing.T) {
	assert.Equal(t, DefaultSystemRole, PromptRequest{}.EffectiveSystemRole())
	assert.Equal(t, "You are a RAG assistant.", PromptRequest{SystemRole: "You are a RAG assistant."}.EffectiveSystemRole())
}

func TestCollectionName(t *testing.T) {
	assert.Equal(t, "docs_ollama", CollectionName(CollectionPrefix_Docs, Provider_Ollama))
	assert.Equal(t, "qa_docs_gemini", CollectionName(CollectionPrefix_QA, Provider_Gemini))
}
