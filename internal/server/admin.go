package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListUserSummaries(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	type row struct {
		ID         uuid.UUID `json:"id"`
		Username   string    `json:"username"`
		Role       string    `json:"role"`
		HabitCount int       `json:"habit_count"`
		TaskCount  int       `json:"task_count"`
	}
	rows := make([]row, 0, len(summaries))
	for _, u := range summaries {
		rows = append(rows, row{u.ID, u.Username, u.Role, u.HabitCount, u.TaskCount})
	}
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if targetID == principal(r).ID {
		respondError(w, http.StatusBadRequest, "cannot delete yourself")
		return
	}
	if err := s.store.DeleteUser(r.Context(), targetID); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleAdminResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetUserID string `json:"targetUserId"`
		NewPassword  string `json:"newPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	targetID, err := uuid.Parse(req.TargetUserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if req.NewPassword == "" {
		respondError(w, http.StatusBadRequest, "new password is required")
		return
	}
	if _, err := s.store.GetUserByID(r.Context(), targetID); err != nil {
		respondStoreError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := s.store.UpdateUserPassword(r.Context(), targetID, string(hash)); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
