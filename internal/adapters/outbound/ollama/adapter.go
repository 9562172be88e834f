package ollama

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
	// requestTimeout bounds every backend call. Local models can be slow to
	// load on first use, so the deadline is deliberately generous.
	requestTimeout = 60 * time.Second

	// maxOutputTokens caps the completion length per generation.
	maxOutputTokens = 2048
)

// Adapter adapts APIClient to the domain provider ports.
type Adapter struct {
	client APIClient
	logger *log.Logger
}

// NewAdapter creates a new adapter
func NewAdapter(client APIClient, logger *log.Logger) *Adapter {
	return &Adapter{client: client, logger: logger}
}

// ProviderName implements domain.ModelCatalog.ProviderName
func (a *Adapter) ProviderName() domain.Provider {
	return domain.Provider_Ollama
}

// Chat implements domain.ChatClient.Chat
func (a *Adapter) Chat(ctx context.Context, req domain.PromptRequest, model string) (domain.AIResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	spanCtx, cancel := context.WithTimeout(spanCtx, requestTimeout)
	defer cancel()

	messages := make([]ChatMessage, 0, len(req.History)+2)
	messages = append(messages, ChatMessage{Role: string(domain.ChatRole_System), Content: req.EffectiveSystemRole()})
	for _, msg := range req.History {
		messages = append(messages, ChatMessage{Role: string(msg.Role), Content: msg.Content})
	}
	messages = append(messages, ChatMessage{Role: string(domain.ChatRole_User), Content: req.UserQuery})

	resp, err := a.client.Chat(spanCtx, ChatRequest{
		Model:    model,
		Messages: messages,
		Options: &ChatOptions{
			Temperature: req.Temperature,
			NumPredict:  maxOutputTokens,
		},
	})
	if err != nil {
		err = translateErr("ollama chat failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AIResponse{}, err
	}

	return domain.AIResponse{
		Content:    resp.Message.Content,
		TokensUsed: resp.PromptEvalCount + resp.EvalCount,
		ModelName:  domain.BuildModelURN(domain.Provider_Ollama, model),
	}, nil
}

// EmbedText implements domain.Embedder.EmbedText
func (a *Adapter) EmbedText(ctx context.Context, model, text string) ([]float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	spanCtx, cancel := context.WithTimeout(spanCtx, requestTimeout)
	defer cancel()

	resp, err := a.client.Embeddings(spanCtx, EmbeddingsRequest{Model: model, Prompt: text})
	if err != nil {
		err = translateErr("ollama embedding failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	return resp.Embedding, nil
}

// EmbedBatch implements domain.Embedder.EmbedBatch. The backend has no batch
// endpoint, so prompts are embedded sequentially.
func (a *Adapter) EmbedBatch(ctx context.Context, model string, texts []string) ([][]float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	vectors := make([][]float64, 0, len(texts))
	for _, text := range texts {
		vector, err := a.EmbedText(spanCtx, model, text)
		if err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		vectors = append(vectors, vector)
	}
	return vectors, nil
}

// DiscoverModels implements domain.ModelCatalog.DiscoverModels. An
// unreachable backend yields an empty list so the other provider stays usable.
func (a *Adapter) DiscoverModels(ctx context.Context) []domain.ModelInfo {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	spanCtx, cancel := context.WithTimeout(spanCtx, requestTimeout)
	defer cancel()

	resp, err := a.client.Tags(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		a.logger.Printf("WARN: ollama model discovery failed: %v", err)
		return nil
	}

	models := make([]domain.ModelInfo, 0, len(resp.Models))
	for _, m := range resp.Models {
		kind := domain.ModelKind_LLM
		if isEmbeddingModel(m.Name, m.Details.Families) {
			kind = domain.ModelKind_Embedding
		}
		sizeGB := float64(m.Size) / (1 << 30)
		models = append(models, domain.ModelInfo{
			URN:      domain.BuildModelURN(domain.Provider_Ollama, m.Name),
			Provider: domain.Provider_Ollama,
			Name:     m.Name,
			Kind:     kind,
			SizeGB:   &sizeGB,
			Params:   m.Details.ParameterSize,
		})
	}
	return models
}

// isEmbeddingModel classifies a local model from its name and families.
// Embedding models either advertise a bert family or carry "embed" in the name.
func isEmbeddingModel(name string, families []string) bool {
	if strings.Contains(strings.ToLower(name), "embed") {
		return true
	}
	for _, family := range families {
		if strings.Contains(strings.ToLower(family), "bert") {
			return true
		}
	}
	return false
}

func translateErr(message string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewTimeoutErr(message, err)
	}
	return domain.NewGenerationErr(message, err)
}

// InitOllamaProvider initializes the Ollama provider adapter dependency.
type InitOllamaProvider struct {
	HttpClient *http.Client `resolve:""`
	Logger     *log.Logger  `resolve:""`
	Host       string       `config:"OLLAMA_HOST" default:"http://localhost:11434"`
}

// Initialize registers the adapter
func (i InitOllamaProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewAdapter(NewAPIClient(i.Host, i.HttpClient), i.Logger))
	return ctx, nil
}
