package relationship

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"friendkb-go/internal/domain/repoerr"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create links two friends. Only one edge may exist per unordered pair:
// the pre-check and insert run in one transaction, and the store's unique
// index over (LEAST, GREATEST) is the backstop when two writers race.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateRelationship) (*Relationship, error) {
	input.AToB = strings.TrimSpace(input.AToB)
	if input.AToB == "" {
		return nil, fmt.Errorf("a_to_b label is required")
	}
	if input.FriendAID == input.FriendBID {
		return nil, fmt.Errorf("a friend cannot relate to themselves")
	}

	var created *Relationship
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		_, err := tx.FindBetween(ctx, userID, input.FriendAID, input.FriendBID)
		if err == nil {
			return fmt.Errorf("%w: pair already linked", repoerr.ErrDuplicate)
		}
		if !errors.Is(err, repoerr.ErrNotFound) {
			return err
		}

		created, err = tx.Create(ctx, userID, input)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Relationship, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Relationship, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]Relationship, error) {
	return s.repo.ListByFriend(ctx, userID, friendID)
}

// Update edits the edge labels. A blank b_to_a clears the reverse label
// back to NULL, so the edge reads symmetrically again; an empty label is
// never stored.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, input UpdateRelationship) (*Relationship, error) {
	if input.AToB != nil {
		trimmed := strings.TrimSpace(*input.AToB)
		if trimmed == "" {
			return nil, fmt.Errorf("a_to_b label cannot be empty")
		}
		input.AToB = &trimmed
	}
	if input.BToA != nil {
		trimmed := strings.TrimSpace(*input.BToA)
		if trimmed == "" {
			input.BToA = nil
			input.ClearBToA = true
		} else {
			input.BToA = &trimmed
		}
	}
	return s.repo.Update(ctx, userID, id, input)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// Resolve answers "how does from relate to to", honoring storage order and
// the symmetric fallback.
func (s *Service) Resolve(ctx context.Context, userID, fromID, toID uuid.UUID) (string, error) {
	rel, err := s.repo.FindBetween(ctx, userID, fromID, toID)
	if err != nil {
		return "", err
	}
	return DirectedLabel(rel, fromID), nil
}

// DirectedLabel selects the label for the requested direction. When the
// querying friend is stored as friend_a the forward label applies;
// otherwise the reverse label, falling back to the forward one when the
// edge is symmetric.
func DirectedLabel(rel *Relationship, fromID uuid.UUID) string {
	if rel.FriendAID == fromID {
		return rel.AToB
	}
	if rel.BToA != nil {
		return *rel.BToA
	}
	return rel.AToB
}
