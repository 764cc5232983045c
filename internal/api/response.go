package api

import (
	"encoding/json"
	"net/http"
	"time"

	"odr-lab/platform/internal/common"
	"odr-lab/platform/internal/models/dtos/responses"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// respondWorkflowError maps a service error onto the HTTP status it carries.
// Unclassified errors collapse to a generic 500 so internals never leak.
func respondWorkflowError(w http.ResponseWriter, err error) {
	status, message := common.StatusOf(err)
	respondWithError(w, status, message)
}

func decodeJSON[T any](r *http.Request, dst *T) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}
