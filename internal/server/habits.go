package server

import (
	"errors"
	"net/http"
	"time"

	"streaky/internal/db"
	"streaky/internal/db/models"
	"streaky/internal/stats"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type habitPayload struct {
	ID      uuid.UUID          `json:"id"`
	Text    string             `json:"text"`
	Type    models.HabitKind   `json:"type"`
	Unit    string             `json:"unit"`
	Target  float64            `json:"target"`
	History map[string]float64 `json:"history"`
}

type taskPayload struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Done bool      `json:"done"`
}

// handleData returns everything the dashboard needs: all habits with their
// embedded sparse history maps, and all tasks.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	user := principal(r)

	snapshot, err := s.store.ListHabitsWithHistory(r.Context(), user.ID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	tasks, err := s.store.ListTasks(r.Context(), user.ID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	habits := make([]habitPayload, 0, len(snapshot))
	for _, hh := range snapshot {
		habits = append(habits, habitPayload{
			ID:      hh.Habit.ID,
			Text:    hh.Habit.Text,
			Type:    hh.Habit.Kind,
			Unit:    hh.Habit.Unit,
			Target:  hh.Habit.Target,
			History: hh.History,
		})
	}
	taskList := make([]taskPayload, 0, len(tasks))
	for _, t := range tasks {
		taskList = append(taskList, taskPayload{ID: t.ID, Text: t.Text, Done: t.Done})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"habits": habits,
		"tasks":  taskList,
	})
}

func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text   string           `json:"text"`
		Type   models.HabitKind `json:"type"`
		Unit   string           `json:"unit"`
		Target float64          `json:"target"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	if !req.Type.Valid() {
		respondError(w, http.StatusBadRequest, "type must be boolean or numeric")
		return
	}

	habit := &models.Habit{
		ID:        uuid.New(),
		UserID:    principal(r).ID,
		Text:      req.Text,
		Kind:      req.Type,
		Unit:      req.Unit,
		Target:    req.Target,
		CreatedAt: time.Now(),
	}
	habit.Normalize()

	if err := s.store.CreateHabit(r.Context(), habit); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]uuid.UUID{"id": habit.ID})
}

func (s *Server) handleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid habit id")
		return
	}
	if err := s.store.DeleteHabit(r.Context(), habitID, principal(r).ID); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleHistoryWrite is the check-in endpoint. A null value clears the entry
// for that day; anything else inserts or overwrites it.
func (s *Server) handleHistoryWrite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HabitID string   `json:"habitId"`
		Date    string   `json:"date"`
		Value   *float64 `json:"value"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid habit id")
		return
	}
	if _, err := stats.ParseDateKey(req.Date); err != nil {
		respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	habit, err := s.store.GetHabitByID(r.Context(), habitID)
	if errors.Is(err, db.ErrNotFound) {
		respondError(w, http.StatusNotFound, "habit not found")
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if habit.UserID != principal(r).ID {
		respondError(w, http.StatusForbidden, "habit not owned by user")
		return
	}

	write := models.ClearValue()
	if req.Value != nil {
		write = models.SetValue(*req.Value)
	}
	if err := s.store.UpsertHistory(r.Context(), habitID, req.Date, write); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
