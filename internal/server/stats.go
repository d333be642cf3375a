package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"streaky/internal/db"
	"streaky/internal/db/models"
	"streaky/internal/stats"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// userToday is the reference "today" for all window arithmetic, taken in the
// user's timezone so day boundaries match the calendar they check in against.
func userToday(user *models.User) time.Time {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc)
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
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
	tasksDone := 0
	for _, t := range tasks {
		if t.Done {
			tasksDone++
		}
	}

	window := stats.WindowWeek
	if raw := r.URL.Query().Get("window"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || (n != stats.WindowWeek && n != stats.WindowMonth) {
			respondError(w, http.StatusBadRequest, "window must be 7 or 30")
			return
		}
		window = n
	}

	today := userToday(user)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"weeklyScore": stats.WeeklyScore(snapshot, today),
		"trend":       stats.DailyTrend(snapshot, today, window),
		"totalHabits": len(snapshot),
		"tasksDone":   tasksDone,
		"tasksTotal":  len(tasks),
	})
}

func (s *Server) handleMonthStats(w http.ResponseWriter, r *http.Request) {
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

	payload := map[string]interface{}{
		"year":        year,
		"month":       int(month),
		"daysInMonth": stats.DaysInMonth(year, month),
		"rate":        stats.MonthlyRate(snapshot, year, month),
		"bestDay":     nil,
	}
	if day, ok := stats.BestDay(snapshot, year, month); ok {
		payload["bestDay"] = day
	}
	respondJSON(w, http.StatusOK, payload)
}

func (s *Server) handleHabitStats(w http.ResponseWriter, r *http.Request) {
	user := principal(r)

	habitID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid habit id")
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
	if habit.UserID != user.ID {
		respondError(w, http.StatusForbidden, "habit not owned by user")
		return
	}
	if habit.Kind != models.KindNumeric {
		respondError(w, http.StatusBadRequest, "habit is not numeric")
		return
	}

	window := stats.WindowMonth
	if raw := r.URL.Query().Get("window"); raw != "" {
		window, err = strconv.Atoi(raw)
		if err != nil || window < 1 || window > 366 {
			respondError(w, http.StatusBadRequest, "invalid window")
			return
		}
	}

	history, err := s.store.GetHistory(r.Context(), habitID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	today := userToday(user)
	rolling := stats.RollingStats(models.HabitHistory{Habit: *habit, History: history}, today, window)

	todayValue, recorded, err := s.store.GetHistoryValue(r.Context(), habitID, stats.DateKey(today))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	payload := map[string]interface{}{
		"total":   rolling.Total,
		"max":     rolling.Max,
		"average": rolling.Average,
		"unit":    habit.Unit,
		"window":  window,
		"today":   nil,
	}
	if recorded {
		payload["today"] = todayValue
	}
	respondJSON(w, http.StatusOK, payload)
}

// monthParams reads year/month query parameters, defaulting to the current
// month in the user's calendar. An offset parameter navigates whole months
// relative to today, anchored to day 1 so end-of-month dates cannot skip a
// month. Reports false after writing an error.
func monthParams(w http.ResponseWriter, r *http.Request, today time.Time) (int, time.Month, bool) {
	if raw := r.URL.Query().Get("offset"); raw != "" {
		off, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid offset")
			return 0, 0, false
		}
		today = stats.AddMonths(today, off)
	}

	year := today.Year()
	month := today.Month()

	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 || y > 9999 {
			respondError(w, http.StatusBadRequest, "invalid year")
			return 0, 0, false
		}
		year = y
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			respondError(w, http.StatusBadRequest, "invalid month")
			return 0, 0, false
		}
		month = time.Month(m)
	}
	return year, month, true
}
