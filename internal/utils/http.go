package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written when the response value itself cannot be
// encoded, so that error responses stay JSON.
const marshalFailureBody = `{"message":"error writing data to JSON"}`

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header. It returns the number of body
// bytes written.
//
// If data cannot be marshaled, the response becomes a 500 with a fixed JSON
// {"message": ...} body and the marshal error is returned wrapped.
//
// Example usage:
//
//	WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Message: "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
