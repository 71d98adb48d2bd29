package relationship

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"friendkb-go/internal/domain/repoerr"
	"github.com/google/uuid"
)

type fakeRepository struct {
	rows map[uuid.UUID]Relationship
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[uuid.UUID]Relationship)}
}

func (f *fakeRepository) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(f)
}

func (f *fakeRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*Relationship, error) {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, repoerr.ErrNotFound
	}
	return &row, nil
}

func (f *fakeRepository) Create(ctx context.Context, userID uuid.UUID, input CreateRelationship) (*Relationship, error) {
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		samePair := (row.FriendAID == input.FriendAID && row.FriendBID == input.FriendBID) ||
			(row.FriendAID == input.FriendBID && row.FriendBID == input.FriendAID)
		if samePair {
			return nil, fmt.Errorf("%w: uniq_friend_relationships_pair", repoerr.ErrDuplicate)
		}
	}
	row := Relationship{
		ID:        uuid.New(),
		UserID:    userID,
		FriendAID: input.FriendAID,
		FriendBID: input.FriendBID,
		AToB:      input.AToB,
		BToA:      input.BToA,
	}
	f.rows[row.ID] = row
	return &row, nil
}

func (f *fakeRepository) Update(ctx context.Context, userID, id uuid.UUID, input UpdateRelationship) (*Relationship, error) {
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, repoerr.ErrNotFound
	}
	if input.AToB != nil {
		row.AToB = *input.AToB
	}
	if input.BToA != nil {
		row.BToA = input.BToA
	} else if input.ClearBToA {
		row.BToA = nil
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

func (f *fakeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Relationship, error) {
	result := []Relationship{}
	for _, row := range f.rows {
		if row.UserID == userID {
			result = append(result, row)
		}
	}
	return result, nil
}

func (f *fakeRepository) ListByFriend(ctx context.Context, userID, friendID uuid.UUID) ([]Relationship, error) {
	result := []Relationship{}
	for _, row := range f.rows {
		if row.UserID == userID && (row.FriendAID == friendID || row.FriendBID == friendID) {
			result = append(result, row)
		}
	}
	return result, nil
}

func (f *fakeRepository) FindBetween(ctx context.Context, userID, friendAID, friendBID uuid.UUID) (*Relationship, error) {
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if (row.FriendAID == friendAID && row.FriendBID == friendBID) ||
			(row.FriendAID == friendBID && row.FriendBID == friendAID) {
			return &row, nil
		}
	}
	return nil, repoerr.ErrNotFound
}

func strptr(s string) *string { return &s }

func TestServiceResolveSymmetric(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()
	userID := uuid.New()
	f1 := uuid.New()
	f2 := uuid.New()

	if _, err := svc.Create(ctx, userID, CreateRelationship{
		FriendAID: f1,
		FriendBID: f2,
		AToB:      "sibling",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	forward, err := svc.Resolve(ctx, userID, f1, f2)
	if err != nil {
		t.Fatalf("resolve forward: %v", err)
	}
	backward, err := svc.Resolve(ctx, userID, f2, f1)
	if err != nil {
		t.Fatalf("resolve backward: %v", err)
	}

	if forward != "sibling" || backward != "sibling" {
		t.Errorf("got %q/%q, want sibling both ways", forward, backward)
	}
}

func TestServiceResolveAsymmetric(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()
	userID := uuid.New()
	parent := uuid.New()
	child := uuid.New()

	if _, err := svc.Create(ctx, userID, CreateRelationship{
		FriendAID: parent,
		FriendBID: child,
		AToB:      "parent",
		BToA:      strptr("child"),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	forward, err := svc.Resolve(ctx, userID, parent, child)
	if err != nil {
		t.Fatalf("resolve forward: %v", err)
	}
	if forward != "parent" {
		t.Errorf("forward: got %q, want parent", forward)
	}

	backward, err := svc.Resolve(ctx, userID, child, parent)
	if err != nil {
		t.Fatalf("resolve backward: %v", err)
	}
	if backward != "child" {
		t.Errorf("backward: got %q, want child", backward)
	}
}

func TestServiceCreateRejectsSecondEdgeForPair(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()
	userID := uuid.New()
	f1 := uuid.New()
	f2 := uuid.New()

	if _, err := svc.Create(ctx, userID, CreateRelationship{
		FriendAID: f1, FriendBID: f2, AToB: "friend",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Same order.
	_, err := svc.Create(ctx, userID, CreateRelationship{
		FriendAID: f1, FriendBID: f2, AToB: "coworker",
	})
	if !errors.Is(err, repoerr.ErrDuplicate) {
		t.Errorf("same order: got %v, want ErrDuplicate", err)
	}

	// Reversed order, same unordered pair.
	_, err = svc.Create(ctx, userID, CreateRelationship{
		FriendAID: f2, FriendBID: f1, AToB: "coworker",
	})
	if !errors.Is(err, repoerr.ErrDuplicate) {
		t.Errorf("reversed order: got %v, want ErrDuplicate", err)
	}
}

func TestServiceCreateRejectsSelfEdge(t *testing.T) {
	svc := NewService(newFakeRepository())
	f1 := uuid.New()

	_, err := svc.Create(context.Background(), uuid.New(), CreateRelationship{
		FriendAID: f1, FriendBID: f1, AToB: "friend",
	})
	if err == nil {
		t.Error("self edge accepted")
	}
}

func TestServiceSamePairDifferentUsers(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()
	f1 := uuid.New()
	f2 := uuid.New()

	// Friend ids never collide across users in practice, but the pair
	// uniqueness is still scoped per user.
	if _, err := svc.Create(ctx, uuid.New(), CreateRelationship{
		FriendAID: f1, FriendBID: f2, AToB: "friend",
	}); err != nil {
		t.Fatalf("first user: %v", err)
	}
	if _, err := svc.Create(ctx, uuid.New(), CreateRelationship{
		FriendAID: f1, FriendBID: f2, AToB: "friend",
	}); err != nil {
		t.Errorf("second user: %v", err)
	}
}

func TestServiceResolveUnknownPair(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Resolve(context.Background(), uuid.New(), uuid.New(), uuid.New())
	if !errors.Is(err, repoerr.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestServiceUpdateBlankBToAClearsReverseLabel(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()
	userID := uuid.New()
	parent := uuid.New()
	child := uuid.New()

	created, err := svc.Create(ctx, userID, CreateRelationship{
		FriendAID: parent, FriendBID: child, AToB: "parent", BToA: strptr("child"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, userID, created.ID, UpdateRelationship{
		BToA: strptr("   "),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.BToA != nil {
		t.Errorf("b_to_a not cleared: %q", *updated.BToA)
	}

	// With the reverse label gone the edge reads symmetrically again.
	backward, err := svc.Resolve(ctx, userID, child, parent)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if backward != "parent" {
		t.Errorf("got %q, want parent", backward)
	}
}

func TestServiceUpdateMakesEdgeAsymmetric(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()
	userID := uuid.New()
	f1 := uuid.New()
	f2 := uuid.New()

	created, err := svc.Create(ctx, userID, CreateRelationship{
		FriendAID: f1, FriendBID: f2, AToB: "mentor",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Update(ctx, userID, created.ID, UpdateRelationship{
		BToA: strptr("mentee"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	backward, err := svc.Resolve(ctx, userID, f2, f1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if backward != "mentee" {
		t.Errorf("got %q, want mentee", backward)
	}
}
