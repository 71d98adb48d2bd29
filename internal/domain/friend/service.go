package friend

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	labels UserRelationshipRepository
}

func NewService(repo Repository, labels UserRelationshipRepository) *Service {
	return &Service{repo: repo, labels: labels}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateFriend) (*Friend, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	if input.FirstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	return s.repo.Create(ctx, userID, input)
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Friend, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Friend, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, input UpdateFriend) (*Friend, error) {
	if input.FirstName != nil {
		trimmed := strings.TrimSpace(*input.FirstName)
		if trimmed == "" {
			return nil, fmt.Errorf("first name cannot be empty")
		}
		input.FirstName = &trimmed
	}
	return s.repo.Update(ctx, userID, id, input)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// AddLabel records one more way the user knows this friend.
func (s *Service) AddLabel(ctx context.Context, userID, friendID uuid.UUID, relationshipType string) (*UserRelationship, error) {
	relationshipType = strings.TrimSpace(relationshipType)
	if relationshipType == "" {
		return nil, fmt.Errorf("relationship type is required")
	}
	return s.labels.Create(ctx, userID, CreateUserRelationship{
		FriendID:         friendID,
		RelationshipType: relationshipType,
	})
}

func (s *Service) ListLabels(ctx context.Context, userID, friendID uuid.UUID) ([]UserRelationship, error) {
	return s.labels.ListByFriend(ctx, userID, friendID)
}

func (s *Service) UpdateLabel(ctx context.Context, userID, id uuid.UUID, relationshipType string) (*UserRelationship, error) {
	relationshipType = strings.TrimSpace(relationshipType)
	if relationshipType == "" {
		return nil, fmt.Errorf("relationship type is required")
	}
	return s.labels.Update(ctx, userID, id, UpdateUserRelationship{RelationshipType: &relationshipType})
}

func (s *Service) RemoveLabel(ctx context.Context, userID, id uuid.UUID) error {
	return s.labels.Delete(ctx, userID, id)
}
