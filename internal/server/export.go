package server

import (
	"fmt"
	"log"
	"net/http"

	"streaky/internal/export"
)

// handleExport streams the month's habit grid as an xlsx workbook.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	user := principal(r)

	year, month, ok := monthParams(w, r, userToday(user))
	if !ok {
		return
	}

	snapshot, err := s.store.ListHabitsWithHistory(r.Context(), user.ID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	workbook, err := export.MonthlyWorkbook(snapshot, year, month)
	if err != nil {
		log.Printf("Error building export workbook: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("Streaky_Export_%s_%d.xlsx", month.String(), year)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := workbook.Write(w); err != nil {
		log.Printf("Error writing export: %v", err)
	}
}
