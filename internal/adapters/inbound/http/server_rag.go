package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (api AILabServer) ListRAGFiles(w http.ResponseWriter, r *http.Request) {
	files, err := api.ListSourceFilesUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing source files: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toListFiles(files))
}

func (api AILabServer) IngestRAGFiles(w http.ResponseWriter, r *http.Request) {
	var req IngestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if len(req.Filenames) == 0 {
		respondError(w, badRequest("filenames must not be empty"))
		return
	}

	results, err := api.IngestDocumentsUseCase.Execute(r.Context(), req.Filenames)
	if err != nil {
		api.Logger.Printf("Error ingesting documents: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, IngestResp{Results: results})
}

func (api AILabServer) RAGQuery(w http.ResponseWriter, r *http.Request) {
	req := RAGQueryReq{Slot: defaultSlot}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	resp, err := api.RAGAnswerUseCase.Execute(r.Context(), req.Query, req.Slot)
	if err != nil {
		api.Logger.Printf("Error answering RAG query: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toAIResponse(resp))
}
