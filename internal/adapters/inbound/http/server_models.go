package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (api AILabServer) ListModels(w http.ResponseWriter, r *http.Request) {
	overview, err := api.ListModelsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing models: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toModelOverview(overview))
}

func (api AILabServer) RefreshModels(w http.ResponseWriter, r *http.Request) {
	overview, err := api.RefreshModelsUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Printf("Error refreshing models: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toModelOverview(overview))
}

func (api AILabServer) SelectModel(w http.ResponseWriter, r *http.Request) {
	var req SelectModelReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	if err := api.SelectModelUseCase.Execute(r.Context(), req.Target, req.URN); err != nil {
		api.Logger.Printf("Error selecting model %q for %q: %v", req.URN, req.Target, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"target": req.Target, "urn": req.URN})
}
