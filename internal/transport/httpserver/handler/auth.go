package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	userdomain "friendkb-go/internal/domain/user"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *userdomain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "invalid_request", "password must be at least 8 characters")
		return
	}

	created, err := h.Users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeDomainError(w, "auth.register", err, "email", req.Email)
		return
	}

	token, err := h.auth.IssueToken(created.ID)
	if err != nil {
		h.log.InternalError("auth.register: issue token failed", err, "user_id", created.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: toUserResponse(created)})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	found, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userdomain.ErrInvalidCredentials) {
			h.log.BusinessError("auth.login: invalid credentials", err)
			writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
			return
		}
		h.writeDomainError(w, "auth.login", err)
		return
	}

	token, err := h.auth.IssueToken(found.ID)
	if err != nil {
		h.log.InternalError("auth.login: issue token failed", err, "user_id", found.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: toUserResponse(found)})
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	found, err := h.Users.Get(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, "auth.me", err, "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(found))
}

// DeleteAccount removes the user and, through the store's cascades, every
// friend, group, attribute and relationship they own.
func (h *Handlers) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Users.Delete(r.Context(), userID); err != nil {
		h.writeDomainError(w, "auth.delete", err, "user_id", userID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
