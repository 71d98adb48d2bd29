package attribute

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Decoded pairs an attribute row with its parse result. A corrupt row
// carries its error instead of failing the whole listing.
type Decoded struct {
	Attribute Attribute
	Value     Value
	Err       error
}

// Create inserts a new attribute. A second value for the same
// (friend, key) fails with ErrDuplicate; use Set to replace.
func (s *Service) Create(ctx context.Context, userID, friendID uuid.UUID, key string, value Value) (*Attribute, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	return s.repo.Create(ctx, userID, CreateAttribute{FriendID: friendID, Key: key, Value: value})
}

// Set upserts by (friend, key): the prior value and tag are replaced
// atomically, the row keeps its identity.
func (s *Service) Set(ctx context.Context, userID, friendID uuid.UUID, key string, value Value) (*Attribute, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}
	return s.repo.Upsert(ctx, userID, CreateAttribute{FriendID: friendID, Key: key, Value: value})
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Attribute, error) {
	return s.repo.FindByID(ctx, userID, id)
}

// GetValue returns the typed value stored under key.
func (s *Service) GetValue(ctx context.Context, userID, friendID uuid.UUID, key string) (Value, error) {
	found, err := s.repo.FindByFriendAndKey(ctx, userID, friendID, key)
	if err != nil {
		return Value{}, err
	}
	return found.DecodedValue()
}

func (s *Service) List(ctx context.Context, userID, friendID uuid.UUID) ([]Attribute, error) {
	return s.repo.ListByFriend(ctx, userID, friendID)
}

// ListDecoded decodes every attribute of a friend. A row whose text does
// not parse under its tag is reported per item, not as a listing failure.
func (s *Service) ListDecoded(ctx context.Context, userID, friendID uuid.UUID) ([]Decoded, error) {
	rows, err := s.repo.ListByFriend(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}

	result := make([]Decoded, 0, len(rows))
	for _, row := range rows {
		value, err := row.DecodedValue()
		result = append(result, Decoded{Attribute: row, Value: value, Err: err})
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, value Value) (*Attribute, error) {
	return s.repo.Update(ctx, userID, id, UpdateAttribute{Value: &value})
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
