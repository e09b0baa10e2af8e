package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v as the bare response body.
func JSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// JSONValidationError flattens field errors into a single message,
// one clause per invalid field.
func JSONValidationError(w http.ResponseWriter, validationErrors []ValidationError) {
	messages := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		messages = append(messages, ve.Message)
	}
	JSONError(w, http.StatusBadRequest, strings.Join(messages, "; "))
}
