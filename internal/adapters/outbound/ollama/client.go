// Package ollama talks to a locally hosted Ollama server over its native
// REST API. Chat always requests stream=false; embeddings are generated one
// prompt at a time because the backend has no batch endpoint.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// APIClient is a thin client for the Ollama native API.
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a new client
func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	return APIClient{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// Chat sends a non-streaming request to /api/chat.
func (c APIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return nil, errors.New("messages are required")
	}
	req.Stream = false

	httpReq, err := c.newPostRequest(ctx, "/api/chat", req)
	if err != nil {
		return nil, err
	}

	var out ChatResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Embeddings generates a single embedding via /api/embeddings.
func (c APIClient) Embeddings(ctx context.Context, req EmbeddingsRequest) (*EmbeddingsResponse, error) {
	if req.Model == "" {
		return nil, errors.New("model is required")
	}

	httpReq, err := c.newPostRequest(ctx, "/api/embeddings", req)
	if err != nil {
		return nil, err
	}

	var out EmbeddingsResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tags lists the locally installed models via /api/tags.
func (c APIClient) Tags(ctx context.Context) (*TagsResponse, error) {
	endpoint, err := url.JoinPath(c.baseURL, "/api/tags")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	var out TagsResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c APIClient) do(httpReq *http.Request, out any) error {
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-2xx response: %s: %s", resp.Status, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c APIClient) newPostRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
