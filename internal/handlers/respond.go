// File: internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mentorhub/go-mentorhub/internal/dtos"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dtos.ErrorResponseDTO{Message: message})
}
