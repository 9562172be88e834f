package http

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case ErrCodeBadRequest:
		statusCode = http.StatusBadRequest
	case ErrCodeNotFound:
		statusCode = http.StatusNotFound
	case ErrCodeConflict:
		statusCode = http.StatusConflict
	case ErrCodeUnavailable:
		statusCode = http.StatusServiceUnavailable
	}
	respondJSON(w, statusCode, err)
}

func badRequest(message string) ErrorResp {
	errResp := ErrorResp{}
	errResp.Error.Code = ErrCodeBadRequest
	errResp.Error.Message = message
	return errResp
}
