package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"streaky/internal/db"
	"streaky/internal/db/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type ctxKey int

const principalKey ctxKey = iota

// withPrincipal resolves the X-User header to a stored user and attaches it
// to the request context. Handlers behind it can assume a valid principal.
func (s *Server) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username := r.Header.Get("X-User")
		if username == "" {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		user, err := s.store.GetUserByUsername(r.Context(), username)
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "user not found")
			return
		}
		if err != nil {
			respondStoreError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin gates the admin routes on the principal's role.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principal(r).Role != models.RoleAdmin {
			respondError(w, http.StatusForbidden, "access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// principal returns the authenticated user. Only valid behind withPrincipal.
func principal(r *http.Request) *models.User {
	return r.Context().Value(principalKey).(*models.User)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Code     string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	role := models.RoleUser
	switch req.Code {
	case s.config.Auth.AdminCode:
		role = models.RoleAdmin
	case s.config.Auth.InviteCode:
	default:
		respondError(w, http.StatusForbidden, "invalid invite code")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		Timezone:     "UTC",
		CreatedAt:    time.Now(),
	}
	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			respondError(w, http.StatusConflict, "username already exists")
			return
		}
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.GetUserByUsername(r.Context(), req.Username)
	if errors.Is(err, db.ErrNotFound) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"username": user.Username,
		"role":     user.Role,
	})
}

// handleDeleteAccount lets a user delete their own account and all its data.
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteUser(r.Context(), principal(r).ID); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleUpdateTimezone(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Timezone string `json:"timezone"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		respondError(w, http.StatusBadRequest, "invalid timezone")
		return
	}
	if err := s.store.UpdateUserTimezone(r.Context(), principal(r).ID, req.Timezone); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
