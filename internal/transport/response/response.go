package response

import (
	"encoding/json"
	"net/http"
)

// Answer is the payload of POST /ask. Response holds either formatted HTML
// or a plain status message; clients render both the same way.
type Answer struct {
	Response string `json:"response"`
}

// Health is the payload of the health check.
type Health struct {
	Status string `json:"status"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

// WriteAnswer writes an Answer payload
func WriteAnswer(w http.ResponseWriter, statusCode int, text string) error {
	return WriteJSON(w, statusCode, Answer{Response: text})
}

// WriteHealth writes a 200 health payload
func WriteHealth(w http.ResponseWriter) error {
	return WriteJSON(w, http.StatusOK, Health{Status: "ok"})
}
