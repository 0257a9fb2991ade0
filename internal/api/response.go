package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nguyentantai21042004/minutes-flow/internal/pipeline"
)

type errorResponse struct {
	Category  pipeline.Category `json:"category"`
	Message   string            `json:"message"`
	Retryable bool              `json:"retryable"`
}

func statusFor(category pipeline.Category) int {
	switch category {
	case pipeline.CategoryInput:
		return http.StatusBadRequest
	case pipeline.CategoryDecode:
		return http.StatusUnprocessableEntity
	case pipeline.CategoryService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError reports err with the status of its category.
func writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Category: pipeline.CategoryOf(err), Message: err.Error()}

	var pe *pipeline.Error
	if errors.As(err, &pe) {
		resp.Retryable = pe.Retryable()
		resp.Message = pe.Err.Error()
	}
	writeJSON(w, statusFor(resp.Category), resp)
}

func inputError(err error) error {
	return &pipeline.Error{Category: pipeline.CategoryInput, State: pipeline.StateReceived, Err: err}
}
