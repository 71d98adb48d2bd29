package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	attributedomain "friendkb-go/internal/domain/attribute"
	"github.com/go-chi/chi/v5"
)

type createAttributeRequest struct {
	Key   string          `json:"key"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type setAttributeRequest struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type attributeResponse struct {
	ID        string      `json:"id"`
	FriendID  string      `json:"friend_id"`
	Key       string      `json:"key"`
	Type      string      `json:"type"`
	Value     interface{} `json:"value"`
	Error     *string     `json:"error,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// parseTypedValue converts a JSON payload into the domain's tagged value.
// The wire representation matches the tag: string for text, number for
// number, bool for boolean, "YYYY-MM-DD" string for date.
func parseTypedValue(tag string, raw json.RawMessage) (attributedomain.Value, error) {
	if len(raw) == 0 {
		return attributedomain.Value{}, fmt.Errorf("value is required")
	}

	switch attributedomain.Kind(strings.TrimSpace(tag)) {
	case attributedomain.KindText, "":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return attributedomain.Value{}, fmt.Errorf("text value must be a string")
		}
		return attributedomain.TextValue(s), nil
	case attributedomain.KindNumber:
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return attributedomain.Value{}, fmt.Errorf("number value must be numeric")
		}
		return attributedomain.NumberValue(f), nil
	case attributedomain.KindDate:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return attributedomain.Value{}, fmt.Errorf("date value must be a string")
		}
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return attributedomain.Value{}, fmt.Errorf("date value must be YYYY-MM-DD")
		}
		return attributedomain.DateValue(parsed), nil
	case attributedomain.KindBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return attributedomain.Value{}, fmt.Errorf("boolean value must be true or false")
		}
		return attributedomain.BooleanValue(b), nil
	default:
		return attributedomain.Value{}, fmt.Errorf("unknown value type %q", tag)
	}
}

func valueJSON(v attributedomain.Value) interface{} {
	if n, ok := v.Number(); ok {
		return n
	}
	if d, ok := v.Date(); ok {
		return d.Format("2006-01-02")
	}
	if b, ok := v.Boolean(); ok {
		return b
	}
	s, _ := v.Text()
	return s
}

func toAttributeResponse(d attributedomain.Decoded) attributeResponse {
	resp := attributeResponse{
		ID:        d.Attribute.ID.String(),
		FriendID:  d.Attribute.FriendID.String(),
		Key:       d.Attribute.Key,
		Type:      string(d.Attribute.ValueType),
		CreatedAt: d.Attribute.CreatedAt,
		UpdatedAt: d.Attribute.UpdatedAt,
	}
	if d.Err != nil {
		msg := "stored value does not match its type tag"
		resp.Error = &msg
		return resp
	}
	resp.Value = valueJSON(d.Value)
	return resp
}

func decodedOf(a *attributedomain.Attribute) attributedomain.Decoded {
	value, err := a.DecodedValue()
	return attributedomain.Decoded{Attribute: *a, Value: value, Err: err}
}

// ListAttributes reports every attribute of a friend; rows whose stored
// text disagrees with their tag come back with a per-item error marker
// instead of failing the listing.
func (h *Handlers) ListAttributes(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	friendID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	decoded, err := h.Attributes.ListDecoded(r.Context(), userID, friendID)
	if err != nil {
		h.writeDomainError(w, "attributes.list", err, "user_id", userID, "friend_id", friendID)
		return
	}

	result := make([]attributeResponse, 0, len(decoded))
	for _, d := range decoded {
		result = append(result, toAttributeResponse(d))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateAttribute(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	friendID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	var req createAttributeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "key is required")
		return
	}
	value, err := parseTypedValue(req.Type, req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	created, err := h.Attributes.Create(r.Context(), userID, friendID, req.Key, value)
	if err != nil {
		h.writeDomainError(w, "attributes.create", err, "user_id", userID, "friend_id", friendID, "key", req.Key)
		return
	}

	writeJSON(w, http.StatusCreated, toAttributeResponse(decodedOf(created)))
}

// SetAttribute upserts by key: the prior value and tag are replaced in
// place.
func (h *Handlers) SetAttribute(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	friendID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}
	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "key is required")
		return
	}

	var req setAttributeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	value, err := parseTypedValue(req.Type, req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	stored, err := h.Attributes.Set(r.Context(), userID, friendID, key, value)
	if err != nil {
		h.writeDomainError(w, "attributes.set", err, "user_id", userID, "friend_id", friendID, "key", key)
		return
	}

	writeJSON(w, http.StatusOK, toAttributeResponse(decodedOf(stored)))
}

func (h *Handlers) GetAttribute(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid attribute id")
		return
	}

	found, err := h.Attributes.Get(r.Context(), userID, id)
	if err != nil {
		h.writeDomainError(w, "attributes.get", err, "user_id", userID, "attribute_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toAttributeResponse(decodedOf(found)))
}

func (h *Handlers) UpdateAttribute(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid attribute id")
		return
	}

	var req setAttributeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	value, err := parseTypedValue(req.Type, req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	updated, err := h.Attributes.Update(r.Context(), userID, id, value)
	if err != nil {
		h.writeDomainError(w, "attributes.update", err, "user_id", userID, "attribute_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toAttributeResponse(decodedOf(updated)))
}

func (h *Handlers) DeleteAttribute(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid attribute id")
		return
	}

	if err := h.Attributes.Delete(r.Context(), userID, id); err != nil {
		h.writeDomainError(w, "attributes.delete", err, "user_id", userID, "attribute_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
