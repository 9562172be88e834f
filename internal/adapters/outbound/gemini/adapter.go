package gemini

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
)

const (
	// requestTimeout bounds every backend call.
	requestTimeout = 60 * time.Second

	// maxOutputTokens caps the completion length per generation.
	maxOutputTokens = 2048

	// modelNamePrefix is stripped from listed model names so the short name
	// round-trips through model identifiers.
	modelNamePrefix = "models/"
)

// Adapter adapts APIClient to the domain provider ports.
type Adapter struct {
	client APIClient
	hasKey bool
	logger *log.Logger
}

// NewAdapter creates a new adapter
func NewAdapter(client APIClient, hasKey bool, logger *log.Logger) *Adapter {
	return &Adapter{client: client, hasKey: hasKey, logger: logger}
}

// ProviderName implements domain.ModelCatalog.ProviderName
func (a *Adapter) ProviderName() domain.Provider {
	return domain.Provider_Gemini
}

// HasCredential reports whether an API key was configured at startup.
func (a *Adapter) HasCredential() bool {
	return a.hasKey
}

// Chat implements domain.ChatClient.Chat
func (a *Adapter) Chat(ctx context.Context, req domain.PromptRequest, model string) (domain.AIResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !a.hasKey {
		err := errMissingKey()
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AIResponse{}, err
	}

	spanCtx, cancel := context.WithTimeout(spanCtx, requestTimeout)
	defer cancel()

	contents := make([]Content, 0, len(req.History)+1)
	for _, msg := range req.History {
		contents = append(contents, Content{
			Role:  toBackendRole(msg.Role),
			Parts: []Part{{Text: msg.Content}},
		})
	}
	contents = append(contents, Content{
		Role:  "user",
		Parts: []Part{{Text: req.UserQuery}},
	})

	resp, err := a.client.GenerateContent(spanCtx, model, GenerateContentRequest{
		Contents:          contents,
		SystemInstruction: &Content{Parts: []Part{{Text: req.EffectiveSystemRole()}}},
		GenerationConfig: &GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		err = translateErr("gemini chat failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AIResponse{}, err
	}

	if len(resp.Candidates) == 0 {
		err := domain.NewGenerationErr("gemini chat failed", errors.New("no candidates in response"))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AIResponse{}, err
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	tokens := 0
	if resp.UsageMetadata != nil {
		tokens = resp.UsageMetadata.TotalTokenCount
	}

	return domain.AIResponse{
		Content:    sb.String(),
		TokensUsed: tokens,
		ModelName:  domain.BuildModelURN(domain.Provider_Gemini, model),
	}, nil
}

// EmbedText implements domain.Embedder.EmbedText
func (a *Adapter) EmbedText(ctx context.Context, model, text string) ([]float64, error) {
	vectors, err := a.EmbedBatch(ctx, model, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch implements domain.Embedder.EmbedBatch using the native batch
// endpoint in a single round trip.
func (a *Adapter) EmbedBatch(ctx context.Context, model string, texts []string) ([][]float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !a.hasKey {
		err := errMissingKey()
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	spanCtx, cancel := context.WithTimeout(spanCtx, requestTimeout)
	defer cancel()

	batchReq := BatchEmbedContentsRequest{
		Requests: make([]EmbedContentRequest, len(texts)),
	}
	for i, text := range texts {
		batchReq.Requests[i] = EmbedContentRequest{
			Model:   modelNamePrefix + model,
			Content: Content{Parts: []Part{{Text: text}}},
		}
	}

	resp, err := a.client.BatchEmbedContents(spanCtx, model, batchReq)
	if err != nil {
		err = translateErr("gemini embedding failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	if len(resp.Embeddings) != len(texts) {
		err := domain.NewGenerationErr("gemini embedding failed", errors.New("embedding count mismatch"))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vectors := make([][]float64, len(resp.Embeddings))
	for i, embedding := range resp.Embeddings {
		vectors[i] = embedding.Values
	}
	return vectors, nil
}

// DiscoverModels implements domain.ModelCatalog.DiscoverModels. Without an
// API key or with the API unreachable, the cloud provider contributes nothing
// and local models remain usable.
func (a *Adapter) DiscoverModels(ctx context.Context) []domain.ModelInfo {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if !a.hasKey {
		a.logger.Printf("INFO: gemini model discovery skipped: no API key configured")
		return nil
	}

	spanCtx, cancel := context.WithTimeout(spanCtx, requestTimeout)
	defer cancel()

	listed, err := a.client.ListModels(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		a.logger.Printf("WARN: gemini model discovery failed: %v", err)
		return nil
	}

	var models []domain.ModelInfo
	for _, m := range listed {
		name := strings.TrimPrefix(m.Name, modelNamePrefix)
		kind, ok := classifyModel(name, m.SupportedGenerationMethods)
		if !ok {
			continue
		}
		models = append(models, domain.ModelInfo{
			URN:      domain.BuildModelURN(domain.Provider_Gemini, name),
			Provider: domain.Provider_Gemini,
			Name:     name,
			Kind:     kind,
		})
	}
	return models
}

// classifyModel filters the hosted listing down to usable models.
// Embedding models support embedContent, excluding experimental and legacy
// gecko variants. Chat models support generateContent, narrowed to "latest"
// aliases so deprecated point releases do not flood the registry. A model
// advertising both methods counts as an embedding model regardless of the
// order the listing reports them in.
func classifyModel(name string, methods []string) (domain.ModelKind, bool) {
	lower := strings.ToLower(name)
	var embeds, generates bool
	for _, method := range methods {
		switch method {
		case "embedContent":
			embeds = true
		case "generateContent":
			generates = true
		}
	}
	if embeds {
		if strings.Contains(lower, "exp") || strings.Contains(lower, "gecko") {
			return "", false
		}
		return domain.ModelKind_Embedding, true
	}
	if generates && strings.Contains(lower, "latest") {
		return domain.ModelKind_LLM, true
	}
	return "", false
}

// toBackendRole maps chat roles to the backend's vocabulary, which spells
// the assistant role "model".
func toBackendRole(role domain.ChatRole) string {
	if role == domain.ChatRole_Assistant {
		return "model"
	}
	return "user"
}

func errMissingKey() error {
	return domain.NewMissingCredentialErr("gemini API key is not configured")
}

func translateErr(message string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewTimeoutErr(message, err)
	}
	return domain.NewGenerationErr(message, err)
}

// InitGeminiProvider initializes the Gemini provider adapter dependency.
// APIKey is sourced through the composite config provider, so it may come
// from the environment or from Vault.
type InitGeminiProvider struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	APIKey     string       `config:"GEMINI_API_KEY" default:""`
	BaseURL    string       `config:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
}

// Initialize registers the adapter
func (i InitGeminiProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewAdapter(
		NewAPIClient(i.BaseURL, i.APIKey, i.HttpClient),
		i.APIKey != "",
		i.Logger,
	))
	return ctx, nil
}
