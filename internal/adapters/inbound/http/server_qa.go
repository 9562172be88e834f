package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (api AILabServer) ListQAFiles(w http.ResponseWriter, r *http.Request) {
	files, err := api.ListQASourceFilesUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing Q&A source files: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toListFiles(files))
}

func (api AILabServer) IngestQAFiles(w http.ResponseWriter, r *http.Request) {
	var req IngestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}
	if len(req.Filenames) == 0 {
		respondError(w, badRequest("filenames must not be empty"))
		return
	}

	results, err := api.IngestQADocumentsUseCase.Execute(r.Context(), req.Filenames)
	if err != nil {
		api.Logger.Printf("Error ingesting Q&A documents: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, IngestResp{Results: results})
}

func (api AILabServer) QAAsk(w http.ResponseWriter, r *http.Request) {
	req := QAAskReq{Slot: defaultSlot}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	answer, err := api.AskWithCitationsUseCase.Execute(r.Context(), req.Question, req.Slot)
	if err != nil {
		api.Logger.Printf("Error answering question: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toQAAnswer(answer))
}
