package friend

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"friendkb-go/internal/domain/repoerr"
	"github.com/google/uuid"
)

type fakeRepository struct {
	rows map[uuid.UUID]Friend
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[uuid.UUID]Friend)}
}

func (f *fakeRepository) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(f)
}

func (f *fakeRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*Friend, error) {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, repoerr.ErrNotFound
	}
	return &row, nil
}

func (f *fakeRepository) Create(ctx context.Context, userID uuid.UUID, input CreateFriend) (*Friend, error) {
	row := Friend{
		ID:          uuid.New(),
		UserID:      userID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Likes:       input.Likes,
		Dislikes:    input.Dislikes,
		Notes:       input.Notes,
	}
	f.rows[row.ID] = row
	return &row, nil
}

func (f *fakeRepository) Update(ctx context.Context, userID, id uuid.UUID, input UpdateFriend) (*Friend, error) {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, repoerr.ErrNotFound
	}
	if input.FirstName != nil {
		row.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		row.LastName = input.LastName
	}
	if input.DateOfBirth != nil {
		row.DateOfBirth = input.DateOfBirth
	}
	if input.Likes != nil {
		row.Likes = input.Likes
	}
	if input.Dislikes != nil {
		row.Dislikes = input.Dislikes
	}
	if input.Notes != nil {
		row.Notes = input.Notes
	}
	f.rows[id] = row
	return &row, nil
}

func (f *fakeRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return repoerr.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Friend, error) {
	result := []Friend{}
	for _, row := range f.rows {
		if row.UserID == userID {
			result = append(result, row)
		}
	}
	return result, nil
}

// fakeLabelRepository reuses the friend table above for ownership checks.
type fakeLabelRepository struct {
	friends *fakeRepository
	rows    map[uuid.UUID]UserRelationship
}

func newFakeLabelRepository(friends *fakeRepository) *fakeLabelRepository {
	return &fakeLabelRepository{friends: friends, rows: make(map[uuid.UUID]UserRelationship)}
}

func (f *fakeLabelRepository) owned(userID, friendID uuid.UUID) bool {
	row, ok := f.friends.rows[friendID]
	return ok && row.UserID == userID
}

func (f *fakeLabelRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*UserRelationship, error) {
	row, ok := f.rows[id]
	if !ok || !f.owned(userID, row.FriendID) {
		return nil, repoerr.ErrNotFound
	}
	return &row, nil
}

func (f *fakeLabelRepository) Create(ctx context.Context, userID uuid.UUID, input CreateUserRelationship) (*UserRelationship, error) {
	if !f.owned(userID, input.FriendID) {
		return nil, fmt.Errorf("%w: user_friend_relationships_friend_id_fkey", repoerr.ErrForeignKey)
	}
	for _, row := range f.rows {
		if row.FriendID == input.FriendID && row.RelationshipType == input.RelationshipType {
			return nil, fmt.Errorf("%w: user_friend_relationships_friend_id_relationship_type_key", repoerr.ErrDuplicate)
		}
	}
	row := UserRelationship{
		ID:               uuid.New(),
		FriendID:         input.FriendID,
		RelationshipType: input.RelationshipType,
	}
	f.rows[row.ID] = row
	return &row, nil
}

func (f *fakeLabelRepository) Update(ctx context.Context, userID, id uuid.UUID, input UpdateUserRelationship) (*UserRelationship, error) {
	row, ok := f.rows[id]
	if !ok || !f.owned(userID, row.FriendID) {
		return nil, repoerr.ErrNotFound
	}
	if input.RelationshipType != nil {
		row.RelationshipType = *input.RelationshipType
	}
	f.rows[id] = row
	return &row, nil
}

func (f *fakeLabelRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	row, ok := f.rows[id]
	if !ok || !f.owned(userID, row.FriendID) {
		return repoerr.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeLabelRepository) ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]UserRelationship, error) {
	result := []UserRelationship{}
	if !f.owned(userID, friendID) {
		return result, nil
	}
	for _, row := range f.rows {
		if row.FriendID == friendID {
			result = append(result, row)
		}
	}
	return result, nil
}

func (f *fakeLabelRepository) FindByFriendAndType(ctx context.Context, userID, friendID uuid.UUID, relationshipType string) (*UserRelationship, error) {
	if f.owned(userID, friendID) {
		for _, row := range f.rows {
			if row.FriendID == friendID && row.RelationshipType == relationshipType {
				return &row, nil
			}
		}
	}
	return nil, repoerr.ErrNotFound
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, newFakeLabelRepository(repo)), repo
}

func strptr(s string) *string { return &s }

func TestServiceCreateRequiresFirstName(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create(context.Background(), uuid.New(), CreateFriend{FirstName: "   "}); err == nil {
		t.Error("blank first name accepted")
	}
}

func TestServiceCrossUserIsolation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	created, err := svc.Create(ctx, owner, CreateFriend{FirstName: "Nora"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, other, created.ID); !errors.Is(err, repoerr.ErrNotFound) {
		t.Errorf("get: got %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(ctx, other, created.ID, UpdateFriend{FirstName: strptr("Eve")}); !errors.Is(err, repoerr.ErrNotFound) {
		t.Errorf("update: got %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, other, created.ID); !errors.Is(err, repoerr.ErrNotFound) {
		t.Errorf("delete: got %v, want ErrNotFound", err)
	}

	list, err := svc.List(ctx, other)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("other user sees %d friends, want 0", len(list))
	}

	got, err := svc.Get(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("get as owner: %v", err)
	}
	if got.FirstName != "Nora" {
		t.Errorf("owner row mutated: first name %q", got.FirstName)
	}
}

func TestServicePartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, CreateFriend{
		FirstName: "Nora",
		LastName:  strptr("Reyes"),
		Likes:     strptr("hiking"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, userID, created.ID, UpdateFriend{Likes: strptr("climbing")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.FirstName != "Nora" {
		t.Errorf("first name changed to %q", updated.FirstName)
	}
	if updated.LastName == nil || *updated.LastName != "Reyes" {
		t.Errorf("last name changed: %v", updated.LastName)
	}
	if updated.Likes == nil || *updated.Likes != "climbing" {
		t.Errorf("likes not updated: %v", updated.Likes)
	}
}

func TestServiceRepeatedDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, CreateFriend{FirstName: "Nora"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, userID, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(ctx, userID, created.ID); !errors.Is(err, repoerr.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestServiceLabels(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.Create(ctx, userID, CreateFriend{FirstName: "Nora"})
	if err != nil {
		t.Fatalf("create friend: %v", err)
	}

	if _, err := svc.AddLabel(ctx, userID, created.ID, "coworker"); err != nil {
		t.Fatalf("add label: %v", err)
	}
	if _, err := svc.AddLabel(ctx, userID, created.ID, "neighbor"); err != nil {
		t.Fatalf("add second label: %v", err)
	}

	// The same label twice for one friend is a conflict.
	if _, err := svc.AddLabel(ctx, userID, created.ID, "coworker"); !errors.Is(err, repoerr.ErrDuplicate) {
		t.Errorf("duplicate label: got %v, want ErrDuplicate", err)
	}

	labels, err := svc.ListLabels(ctx, userID, created.ID)
	if err != nil {
		t.Fatalf("list labels: %v", err)
	}
	if len(labels) != 2 {
		t.Errorf("got %d labels, want 2", len(labels))
	}
}

func TestServiceAddLabelToForeignFriend(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, uuid.New(), CreateFriend{FirstName: "Nora"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.AddLabel(ctx, uuid.New(), created.ID, "coworker")
	if !errors.Is(err, repoerr.ErrForeignKey) {
		t.Errorf("got %v, want ErrForeignKey", err)
	}
}
