package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"friendkb-go/internal/domain/repoerr"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeDomainError translates the repository error taxonomy into a
// transport response. Only Database failures are worth an error-level log;
// the rest are caller-input problems.
func (h *Handlers) writeDomainError(w http.ResponseWriter, op string, err error, args ...interface{}) {
	switch {
	case errors.Is(err, repoerr.ErrNotFound):
		h.log.BusinessError(op+": not found", err, args...)
		writeError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, repoerr.ErrDuplicate):
		h.log.BusinessError(op+": duplicate", err, args...)
		writeError(w, http.StatusConflict, "duplicate", "already exists")
	case errors.Is(err, repoerr.ErrForeignKey):
		h.log.BusinessError(op+": invalid reference", err, args...)
		writeError(w, http.StatusUnprocessableEntity, "invalid_reference", "referenced record not found")
	case errors.Is(err, repoerr.ErrSerialization):
		h.log.BusinessError(op+": serialization failure", err, args...)
		writeError(w, http.StatusUnprocessableEntity, "serialization_error", "stored value does not match its type tag")
	default:
		h.log.InternalError(op+": failed", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}
