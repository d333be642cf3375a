package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"streaky/internal/db"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondError sends an error response to the user
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondStoreError maps database sentinel errors onto status codes.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, db.ErrDuplicate):
		respondError(w, http.StatusConflict, "already exists")
	default:
		log.Printf("Store error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
