package handler

import (
	"net/http"
	"strings"
	"time"

	groupdomain "friendkb-go/internal/domain/group"
)

type groupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type groupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toGroupResponse(g *groupdomain.Group) groupResponse {
	return groupResponse{
		ID:          g.ID.String(),
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	groups, err := h.Groups.List(r.Context(), userID)
	if err != nil {
		h.writeDomainError(w, "groups.list", err, "user_id", userID)
		return
	}

	result := make([]groupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, toGroupResponse(&groups[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req groupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}

	created, err := h.Groups.Create(r.Context(), userID, groupdomain.CreateGroup{
		Name:        *req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeDomainError(w, "groups.create", err, "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, toGroupResponse(created))
}

func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid group id")
		return
	}

	found, err := h.Groups.Get(r.Context(), userID, id)
	if err != nil {
		h.writeDomainError(w, "groups.get", err, "user_id", userID, "group_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(found))
}

func (h *Handlers) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid group id")
		return
	}

	var req groupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Groups.Update(r.Context(), userID, id, groupdomain.UpdateGroup{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeDomainError(w, "groups.update", err, "user_id", userID, "group_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toGroupResponse(updated))
}

func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid group id")
		return
	}

	if err := h.Groups.Delete(r.Context(), userID, id); err != nil {
		h.writeDomainError(w, "groups.delete", err, "user_id", userID, "group_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListGroupFriends(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid group id")
		return
	}

	friends, err := h.Groups.ListFriends(r.Context(), userID, groupID)
	if err != nil {
		h.writeDomainError(w, "groups.friends.list", err, "user_id", userID, "group_id", groupID)
		return
	}

	result := make([]friendResponse, 0, len(friends))
	for i := range friends {
		result = append(result, toFriendResponse(&friends[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) ListFriendGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	friendID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	groups, err := h.Groups.ListByFriend(r.Context(), userID, friendID)
	if err != nil {
		h.writeDomainError(w, "friends.groups.list", err, "user_id", userID, "friend_id", friendID)
		return
	}

	result := make([]groupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, toGroupResponse(&groups[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) AddGroupFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid group id")
		return
	}
	friendID, ok := pathID(r, "friend_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	if err := h.Groups.AddFriend(r.Context(), userID, groupID, friendID); err != nil {
		h.writeDomainError(w, "groups.friends.add", err, "user_id", userID, "group_id", groupID, "friend_id", friendID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) RemoveGroupFriend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid group id")
		return
	}
	friendID, ok := pathID(r, "friend_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid friend id")
		return
	}

	if err := h.Groups.RemoveFriend(r.Context(), userID, groupID, friendID); err != nil {
		h.writeDomainError(w, "groups.friends.remove", err, "user_id", userID, "group_id", groupID, "friend_id", friendID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
