// Package server is the HTTP surface: one handler per operation, owner
// resolution up front, and all aggregation delegated to the stats engine over
// a single snapshot fetch per request.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"streaky/internal/config"
	"streaky/internal/db/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"
)

// Store is what the handlers need from the database layer.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, hash string) error
	UpdateUserTimezone(ctx context.Context, userID uuid.UUID, timezone string) error
	ListUserSummaries(ctx context.Context) ([]models.UserSummary, error)

	CreateHabit(ctx context.Context, habit *models.Habit) error
	GetHabitByID(ctx context.Context, habitID uuid.UUID) (*models.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
	ListHabitsWithHistory(ctx context.Context, userID uuid.UUID) ([]models.HabitHistory, error)
	GetHistory(ctx context.Context, habitID uuid.UUID) (map[string]float64, error)
	GetHistoryValue(ctx context.Context, habitID uuid.UUID, date string) (float64, bool, error)
	UpsertHistory(ctx context.Context, habitID uuid.UUID, date string, write models.HistoryWrite) error

	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTaskDone(ctx context.Context, taskID, userID uuid.UUID, done bool) error
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
	ListTasks(ctx context.Context, userID uuid.UUID) ([]models.Task, error)
}

type Server struct {
	config  *config.Config
	store   Store
	httpSrv *http.Server
}

func New(cfg *config.Config, store Store) *Server {
	s := &Server{config: cfg, store: store}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(100, 15*time.Minute))

		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.withPrincipal)

			r.Delete("/user/me", s.handleDeleteAccount)
			r.Put("/user/timezone", s.handleUpdateTimezone)

			r.Get("/data", s.handleData)
			r.Post("/habits", s.handleCreateHabit)
			r.Delete("/habits/{id}", s.handleDeleteHabit)
			r.Post("/history", s.handleHistoryWrite)

			r.Post("/tasks", s.handleCreateTask)
			r.Put("/tasks/{id}", s.handleUpdateTask)
			r.Delete("/tasks/{id}", s.handleDeleteTask)

			r.Get("/stats", s.handleDashboardStats)
			r.Get("/stats/month", s.handleMonthStats)
			r.Get("/stats/habits/{id}", s.handleHabitStats)
			r.Get("/export", s.handleExport)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Get("/admin/users", s.handleAdminListUsers)
				r.Delete("/admin/users/{id}", s.handleAdminDeleteUser)
				r.Post("/admin/reset-pass", s.handleAdminResetPassword)
			})
		})
	})

	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("error running server: %w", err)
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown performs a graceful shutdown of the server
func (s *Server) Shutdown() error {
	log.Println("Initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	log.Println("Shutdown completed successfully")
	return nil
}
