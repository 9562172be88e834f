package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

// Request-body defaults matching the original service contract.
const (
	defaultTemperature = 0.7
	defaultSlot        = 1
)

func decodePromptReq(r *http.Request) (PromptReq, error) {
	req := PromptReq{Temperature: defaultTemperature, Slot: defaultSlot}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return PromptReq{}, fmt.Errorf("invalid request body: %w", err)
	}
	return req, nil
}

func (api AILabServer) ZeroShot(w http.ResponseWriter, r *http.Request) {
	req, err := decodePromptReq(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	resp, err := api.GenerateUseCase.Execute(r.Context(), req.Slot, domain.PromptRequest{
		SystemRole:  req.SystemRole,
		UserQuery:   req.UserQuery,
		Temperature: req.Temperature,
	})
	if err != nil {
		api.Logger.Printf("Error running zero-shot prompt: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toAIResponse(resp))
}

func (api AILabServer) ChainOfThought(w http.ResponseWriter, r *http.Request) {
	req, err := decodePromptReq(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	resp, err := api.ChainOfThoughtUseCase.Execute(r.Context(), domain.PromptRequest{
		SystemRole:  req.SystemRole,
		UserQuery:   req.UserQuery,
		Temperature: req.Temperature,
	})
	if err != nil {
		api.Logger.Printf("Error running chain-of-thought prompt: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toAIResponse(resp))
}
