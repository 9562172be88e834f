package app

import (
	"github.com/cleitonmarx/symbiont"

	"github.com/Mathew005/ai-learning-repo/internal/adapters/inbound/http"
	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/config"
	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/configfile"
	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/gemini"
	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/log"
	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/ollama"
	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/pdf"
	"github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/postgres"
	timeprovider "github.com/Mathew005/ai-learning-repo/internal/adapters/outbound/time"
	"github.com/Mathew005/ai-learning-repo/internal/providers"
	"github.com/Mathew005/ai-learning-repo/internal/registry"
	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
	"github.com/Mathew005/ai-learning-repo/internal/usecases"
)

// NewAILabApp creates and returns a new instance of the AI lab application.
func NewAILabApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitDocumentStore{},
			&configfile.InitConfigStore{},
			&pdf.InitPDFReader{},
			&gemini.InitGeminiProvider{},
			&ollama.InitOllamaProvider{},
			&providers.InitResolver{},
			&timeprovider.InitCurrentTimeProvider{},
			&registry.InitRegistry{},
			&providers.InitEmbeddingFactory{},

			&usecases.InitGenerateWithSlot{},
			&usecases.InitChainOfThought{},
			&usecases.InitListModels{},
			&usecases.InitRefreshModels{},
			&usecases.InitSelectModel{},
			&usecases.InitListSourceFiles{},
			&usecases.InitIngestDocuments{},
			&usecases.InitGenerateRAGAnswer{},
			&usecases.InitListQASourceFiles{},
			&usecases.InitIngestQADocuments{},
			&usecases.InitAskWithCitations{},
		).
		Host(
			&http.AILabServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
