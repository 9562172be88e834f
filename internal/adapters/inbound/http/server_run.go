package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/Mathew005/ai-learning-repo/internal/telemetry"
	"github.com/Mathew005/ai-learning-repo/internal/usecases"
)

// AILabServer is the JSON API server of the AI lab application.
type AILabServer struct {
	Port                     int                        `config:"HTTP_PORT" default:"8080"`
	Logger                   *log.Logger                `resolve:""`
	GenerateUseCase          usecases.GenerateWithSlot  `resolve:""`
	ChainOfThoughtUseCase    usecases.ChainOfThought    `resolve:""`
	ListModelsUseCase        usecases.ListModels        `resolve:""`
	RefreshModelsUseCase     usecases.RefreshModels     `resolve:""`
	SelectModelUseCase       usecases.SelectModel       `resolve:""`
	ListSourceFilesUseCase   usecases.ListSourceFiles   `resolve:""`
	IngestDocumentsUseCase   usecases.IngestDocuments   `resolve:""`
	RAGAnswerUseCase         usecases.GenerateRAGAnswer `resolve:""`
	ListQASourceFilesUseCase usecases.ListQASourceFiles `resolve:""`
	IngestQADocumentsUseCase usecases.IngestQADocuments `resolve:""`
	AskWithCitationsUseCase  usecases.AskWithCitations  `resolve:""`
}

// Run starts the HTTP server for the AILabServer.
func (api AILabServer) Run(ctx context.Context) error {

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", api.Health)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	mux.HandleFunc("POST /api/v1/fundamentals/zero-shot", api.ZeroShot)
	mux.HandleFunc("POST /api/v1/fundamentals/chain-of-thought", api.ChainOfThought)

	mux.HandleFunc("GET /api/v1/models", api.ListModels)
	mux.HandleFunc("POST /api/v1/models/refresh", api.RefreshModels)
	mux.HandleFunc("POST /api/v1/models/select", api.SelectModel)

	mux.HandleFunc("GET /api/v1/rag/files", api.ListRAGFiles)
	mux.HandleFunc("POST /api/v1/rag/ingest", api.IngestRAGFiles)
	mux.HandleFunc("POST /api/v1/rag/query", api.RAGQuery)

	mux.HandleFunc("GET /api/v1/qa/files", api.ListQAFiles)
	mux.HandleFunc("POST /api/v1/qa/ingest", api.IngestQAFiles)
	mux.HandleFunc("POST /api/v1/qa/ask", api.QAAsk)

	h := telemetry.Middleware("ailab-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AILabServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AILabServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AILabServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// Health reports liveness.
func (api AILabServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// IsReady checks if the AILabServer is ready by performing a health check.
func (api AILabServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
