// Package http provides HTTP handlers for sign-up, login, progress tracking
// and summary downloads.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/GrowthMindset/internal/models"
	"github.com/atinyakov/GrowthMindset/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// CreateAccount registers a new account.
	CreateAccount(ctx context.Context, username, password string) error
	// VerifyCredentials returns the session of the matching account or
	// service.ErrInvalidCredentials.
	VerifyCredentials(ctx context.Context, username, password string) (*models.Session, error)
}

// TokenIssuer signs a session into a bearer token.
type TokenIssuer interface {
	Issue(sess models.Session) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Tokens turns verified sessions into bearer tokens.
	Tokens TokenIssuer
	// Log records unexpected failures.
	Log *zap.Logger
}

// CredentialsRequest is the JSON payload for both registration and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}

// Register handles user registration requests. Usernames are not required
// to be unique.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.CreateAccount(r.Context(), req.Username, req.Password); err != nil {
		h.Log.Error("failed to create account", zap.Error(err))
		http.Error(w, "failed to save user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"status": "You have successfully signed up! Please log in.",
	})
}

// Login verifies credentials and returns a bearer token for later
// authenticated calls.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	sess, err := h.AuthService.VerifyCredentials(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		h.Log.Error("failed to verify credentials", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	token, err := h.Tokens.Issue(*sess)
	if err != nil {
		h.Log.Error("failed to issue token", zap.Error(err), zap.Int64("user_id", sess.AccountID))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, UserID: sess.AccountID})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
