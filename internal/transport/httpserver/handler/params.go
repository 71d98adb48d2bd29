package handler

import (
	"net/http"

	"friendkb-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}

// requireUser pulls the authenticated user id off the context; the auth
// middleware guarantees it is present on protected routes.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "not authenticated")
		return uuid.UUID{}, false
	}
	return userID, true
}
