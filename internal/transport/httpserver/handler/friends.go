package handler

import (
	"net/http"
	"strings"
	"time"

	frienddomain "friendkb-go/internal/domain/friend"
)

type friendRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	DateOfBirth *string `json:"date_of_birth"`
	Likes       *string `json:"likes"`
	Dislikes    *string `json:"dislikes"`
	Notes       *string `json:"notes"`
}

type friendResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    *string   `json:"last_name"`
	DateOfBirth *string   `json:"date_of_birth"`
	Likes       *string   `json:"likes"`
	Dislikes    *string   `json:"dislikes"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type labelRequest struct {
	RelationshipType string `json:"relationship_type"`
}

type labelResponse struct {
	ID               string    `json:"id"`
	FriendID         string    `json:"friend_id"`
	RelationshipType string    `json:"relationship_type"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toFriendResponse(f *frienddomain.Friend) friendResponse {
	resp := friendResponse{
		ID:        f.ID.String(),
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Likes:     f.Likes,
		Dislikes:  f.Dislikes,
		Notes:     f.Notes,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
	if f.DateOfBirth != nil {
		dob := f.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	return resp
}

func toLabelResponse(l *frienddomain.UserRelationship) labelResponse {
	return labelResponse{
		ID:               l.ID.String(),
		FriendID:         l.FriendID.String(),
		RelationshipType: l.RelationshipType,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func parseBirthDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*value))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (h *Handlers) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	friends, err := h.Friends.List(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, "friends.list", err, "user_id", userID)
		return
	}

	result := make([]friendResponse, 0, len(friends))
	for i := range friends {
		result = append(result, toFriendResponse(&friends[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req friendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.FirstName == nil || strings.TrimSpace(*req.FirstName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "first_name is required")
		return
	}
	dob, err := parseBirthDate(req.DateOfBirth)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_of_birth must be YYYY-MM-DD")
		return
	}

	created, err := h.Friends.Create(r.Context(), userID, frienddomain.CreateFriend{
		FirstName:   *req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Likes:       req.Likes,
		Dislikes:    req.Dislikes,
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeDomainError(w, "friends.create", err, "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, toFriendResponse(created))
}

func (h *Handlers) GetFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	found, err := h.Friends.Get(r.Context(), userID, id)
	if err != nil {
		h.writeDomainError(w, "friends.get", err, "user_id", userID, "friend_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toFriendResponse(found))
}

func (h *Handlers) UpdateFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	var req friendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	dob, err := parseBirthDate(req.DateOfBirth)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_of_birth must be YYYY-MM-DD")
		return
	}

	updated, err := h.Friends.Update(r.Context(), userID, id, frienddomain.UpdateFriend{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Likes:       req.Likes,
		Dislikes:    req.Dislikes,
		Notes:       req.Notes,
	})
	if err != nil {
		h.writeDomainError(w, "friends.update", err, "user_id", userID, "friend_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toFriendResponse(updated))
}

func (h *Handlers) DeleteFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	if err := h.Friends.Delete(r.Context(), userID, id); err != nil {
		h.writeDomainError(w, "friends.delete", err, "user_id", userID, "friend_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListFriendLabels(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	friendID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	labels, err := h.Friends.ListLabels(r.Context(), userID, friendID)
	if err != nil {
		h.writeDomainError(w, "friends.labels.list", err, "user_id", userID, "friend_id", friendID)
		return
	}

	result := make([]labelResponse, 0, len(labels))
	for i := range labels {
		result = append(result, toLabelResponse(&labels[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) AddFriendLabel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	friendID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	var req labelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.RelationshipType) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "relationship_type is required")
		return
	}

	created, err := h.Friends.AddLabel(r.Context(), userID, friendID, req.RelationshipType)
	if err != nil {
		h.writeDomainError(w, "friends.labels.add", err, "user_id", userID, "friend_id", friendID)
		return
	}

	writeJSON(w, http.StatusCreated, toLabelResponse(created))
}

func (h *Handlers) UpdateFriendLabel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid label id")
		return
	}

	var req labelRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if strings.TrimSpace(req.RelationshipType) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "relationship_type is required")
		return
	}

	updated, err := h.Friends.UpdateLabel(r.Context(), userID, id, req.RelationshipType)
	if err != nil {
		h.writeDomainError(w, "friends.labels.update", err, "user_id", userID, "label_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toLabelResponse(updated))
}

func (h *Handlers) RemoveFriendLabel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid label id")
		return
	}

	if err := h.Friends.RemoveLabel(r.Context(), userID, id); err != nil {
		h.writeDomainError(w, "friends.labels.remove", err, "user_id", userID, "label_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
