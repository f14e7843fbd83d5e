package handlers

import (
	"errors"
	"net/http"

	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/middleware"
	"github.com/ChrisBaptiste/Baptiste-Urick-BudgetBackPackBackEnd-Capstone/internal/service"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		respondErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Register(r.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			respondErrors(w, http.StatusBadRequest, vErr.Messages...)
			return
		}
		h.requestLog(r).Error("registration failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error during registration")
		return
	}

	respondJSON(w, http.StatusCreated, tokenResponse{Token: token})
}

// Login handles POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		respondErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondErrors(w, http.StatusBadRequest, "Invalid credentials")
		case errors.As(err, &vErr):
			respondErrors(w, http.StatusBadRequest, vErr.Messages...)
		default:
			h.requestLog(r).Error("login failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Server error during login")
		}
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Me handles GET /api/auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Me(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		if service.IsNotFound(err) || errors.Is(err, service.ErrInvalidID) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		h.requestLog(r).Error("loading current user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error while fetching user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
