package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"srms/internal/domain/auth"
	"srms/internal/platform/requestctx"
	"srms/internal/transport/http/api"
	"srms/internal/transport/http/shared"
)

const sessionTTL = 8 * time.Hour

// MinPasswordLength is the console's new-password rule; the gate itself does
// not enforce it.
const MinPasswordLength = 6

type Handler struct {
	Gate   *auth.Gate
	Secret string
}

func NewHandler(gate *auth.Gate, secret string) *Handler {
	return &Handler{Gate: gate, Secret: secret}
}

func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/logout", h.handleLogout)
}

func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Post("/auth/change-password", h.handleChangePassword)
}

type loginRequest struct {
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	ok, err := h.Gate.Login(payload.Password)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to persist session state", requestctx.GetRequestID(r.Context()))
		return
	}
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, uuid.NewString(), sessionTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{"token": token}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.Logout(); err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to persist session state", requestctx.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"loggedOut": true}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var payload changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("currentPassword", payload.CurrentPassword, "current password is required")
	v.MinLength("newPassword", payload.NewPassword, MinPasswordLength, "new password must be at least 6 characters")
	if payload.NewPassword != payload.ConfirmPassword {
		v.Add("confirmPassword", "new password and confirmation do not match")
	}
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	ok, err := h.Gate.ChangePassword(payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "storage_error", "failed to persist password", requestctx.GetRequestID(r.Context()))
		return
	}
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]bool{"changed": true}, requestctx.GetRequestID(r.Context()))
}
