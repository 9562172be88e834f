// Package gemini talks to the hosted Gemini REST API (v1beta). Requests are
// authenticated with an API key header; the key never appears in URLs so it
// cannot leak into traces or logs.
package gemini

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

// APIClient is a thin client for the Gemini generative language API.
type APIClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewAPIClient creates a new client
func NewAPIClient(baseURL string, apiKey string, httpClient *http.Client) APIClient {
	return APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// GenerateContent sends a non-streaming generation request.
func (c APIClient) GenerateContent(ctx context.Context, model string, req GenerateContentRequest) (*GenerateContentResponse, error) {
	if model == "" {
		return nil, errors.New("model is required")
	}
	if len(req.Contents) == 0 {
		return nil, errors.New("contents are required")
	}

	httpReq, err := c.newPostRequest(ctx, "/v1beta/models/"+model+":generateContent", req)
	if err != nil {
		return nil, err
	}

	var out GenerateContentResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchEmbedContents embeds a batch of texts in one round trip.
func (c APIClient) BatchEmbedContents(ctx context.Context, model string, req BatchEmbedContentsRequest) (*BatchEmbedContentsResponse, error) {
	if model == "" {
		return nil, errors.New("model is required")
	}

	httpReq, err := c.newPostRequest(ctx, "/v1beta/models/"+model+":batchEmbedContents", req)
	if err != nil {
		return nil, err
	}

	var out BatchEmbedContentsResponse
	if err := c.do(httpReq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListModels fetches every page of the hosted model listing.
func (c APIClient) ListModels(ctx context.Context) ([]ListedModel, error) {
	var models []ListedModel
	pageToken := ""

	for {
		endpoint, err := url.JoinPath(c.baseURL, "/v1beta/models")
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		query := url.Values{"pageSize": {"1000"}}
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		c.setHeaders(httpReq)

		var page ListModelsResponse
		if err := c.do(httpReq, &page); err != nil {
			return nil, err
		}
		models = append(models, page.Models...)

		if page.NextPageToken == "" {
			return models, nil
		}
		pageToken = page.NextPageToken
	}
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
	c.setHeaders(req)
	return req, nil
}

func (c APIClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}
}
