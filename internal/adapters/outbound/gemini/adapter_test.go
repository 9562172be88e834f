package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

func newTestAdapter(serverURL string, httpClient *http.Client) *Adapter {
	return NewAdapter(NewAPIClient(serverURL, "test-key", httpClient), true, log.New(io.Discard, "", 0))
}

func TestAdapter_Chat(t *testing.T) {
	tests := map[string]struct {
		response        string
		statusCode      int
		req             domain.PromptRequest
		expectErr       bool
		expectedContent string
		expectedTokens  int
		validateReq     func(*testing.T, *GenerateContentRequest)
	}{
		"success": {
			response:        `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello!"}]}}],"usageMetadata":{"promptTokenCount":8,"candidatesTokenCount":4,"totalTokenCount":12}}`,
			statusCode:      http.StatusOK,
			req:             domain.PromptRequest{UserQuery: "hi", Temperature: 0.3},
			expectedContent: "Hello!",
			expectedTokens:  12,
			validateReq: func(t *testing.T, req *GenerateContentRequest) {
				assert.Len(t, req.Contents, 1)
				assert.Equal(t, "user", req.Contents[0].Role)
				assert.Equal(t, "hi", req.Contents[0].Parts[0].Text)
				assert.NotNil(t, req.SystemInstruction)
				assert.Equal(t, domain.DefaultSystemRole, req.SystemInstruction.Parts[0].Text)
				assert.NotNil(t, req.GenerationConfig)
				assert.InDelta(t, 0.3, req.GenerationConfig.Temperature, 1e-6)
				assert.Equal(t, maxOutputTokens, req.GenerationConfig.MaxOutputTokens)
			},
		},
		"with-history": {
			response:   `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`,
			statusCode: http.StatusOK,
			req: domain.PromptRequest{
				UserQuery: "and then?",
				History: []domain.ChatMessage{
					{Role: domain.ChatRole_User, Content: "tell me a story"},
					{Role: domain.ChatRole_Assistant, Content: "Once upon a time"},
				},
			},
			expectedContent: "ok",
			validateReq: func(t *testing.T, req *GenerateContentRequest) {
				assert.Len(t, req.Contents, 3)
				assert.Equal(t, "user", req.Contents[0].Role)
				assert.Equal(t, "model", req.Contents[1].Role)
				assert.Equal(t, "and then?", req.Contents[2].Parts[0].Text)
			},
		},
		"multi-part-candidate": {
			response:        `{"candidates":[{"content":{"parts":[{"text":"Hello"},{"text":" world"}]}}]}`,
			statusCode:      http.StatusOK,
			req:             domain.PromptRequest{UserQuery: "hi"},
			expectedContent: "Hello world",
		},
		"no-candidates": {
			response:   `{"candidates":[]}`,
			statusCode: http.StatusOK,
			req:        domain.PromptRequest{UserQuery: "hi"},
			expectErr:  true,
		},
		"server-error": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			req:        domain.PromptRequest{UserQuery: "hi"},
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var capturedReq *GenerateContentRequest
			var capturedKey string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				capturedKey = r.Header.Get("x-goog-api-key")

				var req GenerateContentRequest
				json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
				capturedReq = &req

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			adapter := newTestAdapter(server.URL, server.Client())

			resp, err := adapter.Chat(context.Background(), tt.req, "gemini-flash-latest")

			if tt.expectErr {
				assert.Error(t, err)
				var genErr *domain.GenerationErr
				assert.ErrorAs(t, err, &genErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedContent, resp.Content)
			assert.Equal(t, tt.expectedTokens, resp.TokensUsed)
			assert.Equal(t, "gemini/gemini-flash-latest", resp.ModelName)
			assert.Equal(t, "test-key", capturedKey)

			if tt.validateReq != nil && capturedReq != nil {
				tt.validateReq(t, capturedReq)
			}
		})
	}
}

func TestAdapter_Chat_MissingKey(t *testing.T) {
	adapter := NewAdapter(NewAPIClient("http://unused", "", http.DefaultClient), false, log.New(io.Discard, "", 0))

	_, err := adapter.Chat(context.Background(), domain.PromptRequest{UserQuery: "hi"}, "gemini-flash-latest")

	var credErr *domain.MissingCredentialErr
	assert.ErrorAs(t, err, &credErr)
}

func TestAdapter_EmbedBatch(t *testing.T) {
	tests := map[string]struct {
		response   string
		statusCode int
		texts      []string
		expectErr  bool
		expected   [][]float64
	}{
		"success": {
			response:   `{"embeddings":[{"values":[0.1,0.2]},{"values":[0.3,0.4]}]}`,
			statusCode: http.StatusOK,
			texts:      []string{"one", "two"},
			expected:   [][]float64{{0.1, 0.2}, {0.3, 0.4}},
		},
		"count-mismatch": {
			response:   `{"embeddings":[{"values":[0.1,0.2]}]}`,
			statusCode: http.StatusOK,
			texts:      []string{"one", "two"},
			expectErr:  true,
		},
		"server-error": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			texts:      []string{"one"},
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var capturedReq *BatchEmbedContentsRequest

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req BatchEmbedContentsRequest
				json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
				capturedReq = &req

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			adapter := newTestAdapter(server.URL, server.Client())

			vectors, err := adapter.EmbedBatch(context.Background(), "embedding-001", tt.texts)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, vectors)
			assert.Len(t, capturedReq.Requests, len(tt.texts))
			assert.Equal(t, "models/embedding-001", capturedReq.Requests[0].Model)
		})
	}
}

func TestAdapter_EmbedText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"embeddings":[{"values":[1.5,2.5]}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, server.Client())

	vec, err := adapter.EmbedText(context.Background(), "embedding-001", "A dog is an animal")

	assert.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, vec)
}

func TestAdapter_DiscoverModels(t *testing.T) {
	tests := map[string]struct {
		response   string
		statusCode int
		expected   []domain.ModelInfo
	}{
		"filters-listing": {
			statusCode: http.StatusOK,
			response: `{
                "models": [
                    { "name": "models/gemini-flash-latest", "supportedGenerationMethods": ["generateContent"] },
                    { "name": "models/gemini-1.0-pro", "supportedGenerationMethods": ["generateContent"] },
                    { "name": "models/text-embedding-004", "supportedGenerationMethods": ["embedContent"] },
                    { "name": "models/embedding-gecko-001", "supportedGenerationMethods": ["embedContent"] },
                    { "name": "models/gemini-embedding-exp", "supportedGenerationMethods": ["embedContent"] },
                    { "name": "models/aqa", "supportedGenerationMethods": ["generateAnswer"] }
                ]
            }`,
			expected: []domain.ModelInfo{
				{
					URN:      "gemini/gemini-flash-latest",
					Provider: domain.Provider_Gemini,
					Name:     "gemini-flash-latest",
					Kind:     domain.ModelKind_LLM,
				},
				{
					URN:      "gemini/text-embedding-004",
					Provider: domain.Provider_Gemini,
					Name:     "text-embedding-004",
					Kind:     domain.ModelKind_Embedding,
				},
			},
		},
		"dual-method-model-is-an-embedder": {
			statusCode: http.StatusOK,
			response: `{
                "models": [
                    { "name": "models/gemini-embedding-latest", "supportedGenerationMethods": ["generateContent", "embedContent"] }
                ]
            }`,
			expected: []domain.ModelInfo{
				{
					URN:      "gemini/gemini-embedding-latest",
					Provider: domain.Provider_Gemini,
					Name:     "gemini-embedding-latest",
					Kind:     domain.ModelKind_Embedding,
				},
			},
		},
		"server-error": {
			statusCode: http.StatusInternalServerError,
			response:   "Internal Server Error",
			expected:   nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			adapter := newTestAdapter(server.URL, server.Client())

			models := adapter.DiscoverModels(context.Background())

			assert.Equal(t, tt.expected, models)
		})
	}
}

func TestAdapter_DiscoverModels_Paginated(t *testing.T) {
	page := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page++
		if r.URL.Query().Get("pageToken") == "" {
			w.Write([]byte(`{"models":[{"name":"models/gemini-flash-latest","supportedGenerationMethods":["generateContent"]}],"nextPageToken":"page-2"}`)) //nolint:errcheck
			return
		}
		w.Write([]byte(`{"models":[{"name":"models/text-embedding-004","supportedGenerationMethods":["embedContent"]}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL, server.Client())

	models := adapter.DiscoverModels(context.Background())

	assert.Equal(t, 2, page)
	assert.Len(t, models, 2)
	assert.Equal(t, "gemini/gemini-flash-latest", models[0].URN)
	assert.Equal(t, "gemini/text-embedding-004", models[1].URN)
}

func TestAdapter_DiscoverModels_MissingKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	adapter := NewAdapter(NewAPIClient(server.URL, "", server.Client()), false, log.New(io.Discard, "", 0))

	models := adapter.DiscoverModels(context.Background())

	assert.Nil(t, models)
	assert.False(t, called)
}

func TestInitGeminiProvider_Initialize(t *testing.T) {
	i := InitGeminiProvider{
		HttpClient: http.DefaultClient,
		Logger:     log.New(io.Discard, "", 0),
		BaseURL:    "https://generativelanguage.googleapis.com",
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[*Adapter]()
	assert.NotNil(t, r)
	assert.NoError(t, err)
}
