package handler

import (
	"net/http"
	"strings"
	"time"

	relationshipdomain "friendkb-go/internal/domain/relationship"
	"github.com/google/uuid"
)

type createRelationshipRequest struct {
	FriendAID string  `json:"friend_a_id"`
	FriendBID string  `json:"friend_b_id"`
	AToB      string  `json:"a_to_b"`
	BToA      *string `json:"b_to_a"`
}

type updateRelationshipRequest struct {
	AToB *string `json:"a_to_b"`
	BToA *string `json:"b_to_a"`
}

type relationshipResponse struct {
	ID        string    `json:"id"`
	FriendAID string    `json:"friend_a_id"`
	FriendBID string    `json:"friend_b_id"`
	AToB      string    `json:"a_to_b"`
	BToA      *string   `json:"b_to_a"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type resolveResponse struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
	Label  string `json:"label"`
}

func toRelationshipResponse(rel *relationshipdomain.Relationship) relationshipResponse {
	return relationshipResponse{
		ID:        rel.ID.String(),
		FriendAID: rel.FriendAID.String(),
		FriendBID: rel.FriendBID.String(),
		AToB:      rel.AToB,
		BToA:      rel.BToA,
		CreatedAt: rel.CreatedAt,
		UpdatedAt: rel.UpdatedAt,
	}
}

func (h *Handlers) ListRelationships(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	relationships, err := h.Relationships.List(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, "relationships.list", err, "user_id", userID)
		return
	}

	result := make([]relationshipResponse, 0, len(relationships))
	for i := range relationships {
		result = append(result, toRelationshipResponse(&relationships[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) ListFriendRelationships(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	friendID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	relationships, err := h.Relationships.ListByFriend(r.Context(), userID, friendID)
	if err != nil {
		h.writeDomainError(w, "relationships.list_by_friend", err, "user_id", userID, "friend_id", friendID)
		return
	}

	result := make([]relationshipResponse, 0, len(relationships))
	for i := range relationships {
		result = append(result, toRelationshipResponse(&relationships[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateRelationship(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createRelationshipRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	friendAID, errA := uuid.Parse(req.FriendAID)
	friendBID, errB := uuid.Parse(req.FriendBID)
	if errA != nil || errB != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "friend_a_id and friend_b_id must be valid ids")
		return
	}
	if strings.TrimSpace(req.AToB) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "a_to_b is required")
		return
	}
	if friendAID == friendBID {
		writeError(w, http.StatusBadRequest, "invalid_request", "a friend cannot relate to themselves")
		return
	}

	created, err := h.Relationships.Create(r.Context(), userID, relationshipdomain.CreateRelationship{
		FriendAID: friendAID,
		FriendBID: friendBID,
		AToB:      req.AToB,
		BToA:      req.BToA,
	})
	if err != nil {
		h.writeDomainError(w, "relationships.create", err, "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, toRelationshipResponse(created))
}

func (h *Handlers) GetRelationship(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid relationship id")
		return
	}

	found, err := h.Relationships.Get(r.Context(), userID, id)
	if err != nil {
		h.writeDomainError(w, "relationships.get", err, "user_id", userID, "relationship_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toRelationshipResponse(found))
}

func (h *Handlers) UpdateRelationship(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid relationship id")
		return
	}

	var req updateRelationshipRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Relationships.Update(r.Context(), userID, id, relationshipdomain.UpdateRelationship{
		AToB: req.AToB,
		BToA: req.BToA,
	})
	if err != nil {
		h.writeDomainError(w, "relationships.update", err, "user_id", userID, "relationship_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toRelationshipResponse(updated))
}

func (h *Handlers) DeleteRelationship(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid relationship id")
		return
	}

	if err := h.Relationships.Delete(r.Context(), userID, id); err != nil {
		h.writeDomainError(w, "relationships.delete", err, "user_id", userID, "relationship_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ResolveRelationship answers "how does from relate to to" for two friend
// ids, regardless of which side the edge was stored on.
func (h *Handlers) ResolveRelationship(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	fromID, errFrom := uuid.Parse(r.URL.Query().Get("from"))
	toID, errTo := uuid.Parse(r.URL.Query().Get("to"))
	if errFrom != nil || errTo != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "from and to must be valid friend ids")
		return
	}

	label, err := h.Relationships.Resolve(r.Context(), userID, fromID, toID)
	if err != nil {
		h.writeDomainError(w, "relationships.resolve", err, "user_id", userID, "from_id", fromID, "to_id", toID)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		FromID: fromID.String(),
		ToID:   toID.String(),
		Label:  label,
	})
}
