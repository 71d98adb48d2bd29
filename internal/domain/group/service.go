package group

import (
	"context"
	"fmt"
	"strings"

	frienddomain "friendkb-go/internal/domain/friend"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateGroup) (*Group, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return s.repo.Create(ctx, userID, input)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Group, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Group, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, input UpdateGroup) (*Group, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("name cannot be empty")
		}
		input.Name = &trimmed
	}
	return s.repo.Update(ctx, userID, id, input)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) AddFriend(ctx context.Context, userID, groupID, friendID uuid.UUID) error {
	return s.repo.AddFriend(ctx, userID, groupID, friendID)
}

func (s *Service) RemoveFriend(ctx context.Context, userID, groupID, friendID uuid.UUID) error {
	return s.repo.RemoveFriend(ctx, userID, groupID, friendID)
}

func (s *Service) ListFriends(ctx context.Context, userID, groupID uuid.UUID) ([]frienddomain.Friend, error) {
	return s.repo.ListFriends(ctx, userID, groupID)
}

func (s *Service) ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]Group, error) {
	return s.repo.ListByFriend(ctx, userID, friendID)
}
