package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nkaz/questline/internal/authz"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/stretchr/testify/assert"
)

type fakeLookup struct {
	members map[uuid.UUID][]uuid.UUID
	calls   int
}

func (f *fakeLookup) Members(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	f.calls++
	members, ok := f.members[groupID]
	if !ok {
		return nil, errorvalues.ErrGroupNotFound
	}
	return members, nil
}

func TestCanAccess(t *testing.T) {
	owner := uuid.New()
	peer := uuid.New()
	member := uuid.New()
	stranger := uuid.New()
	groupID := uuid.New()
	lookup := &fakeLookup{members: map[uuid.UUID][]uuid.UUID{
		groupID: {owner, member},
	}}
	node := &entity.GoalNode{
		ID:         uuid.New(),
		OwnerID:    owner,
		SharedWith: []uuid.UUID{peer},
		GroupID:    &groupID,
	}
	ctx := context.Background()
	testCases := []struct {
		Desc    string
		ActorID uuid.UUID
		Allowed bool
	}{
		{Desc: "owner", ActorID: owner, Allowed: true},
		{Desc: "shared with", ActorID: peer, Allowed: true},
		{Desc: "group member", ActorID: member, Allowed: true},
		{Desc: "stranger", ActorID: stranger, Allowed: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ok, err := authz.CanAccess(ctx, node, tc.ActorID, lookup)
			assert.NoError(t, err)
			assert.Equal(t, tc.Allowed, ok)
		})
	}
}

func TestAssertAccessDenied(t *testing.T) {
	node := &entity.GoalNode{ID: uuid.New(), OwnerID: uuid.New()}
	err := authz.AssertAccess(context.Background(), node, uuid.New(), &fakeLookup{})
	assert.ErrorIs(t, err, errorvalues.ErrUnauthorizedAccess)
}

func TestAssertAccessLookupError(t *testing.T) {
	groupID := uuid.New()
	node := &entity.GoalNode{ID: uuid.New(), OwnerID: uuid.New(), GroupID: &groupID}
	lookup := &fakeLookup{members: map[uuid.UUID][]uuid.UUID{}}
	err := authz.AssertAccess(context.Background(), node, uuid.New(), lookup)
	assert.ErrorIs(t, err, errorvalues.ErrGroupNotFound)
}

func TestMembershipCacheBoundsLookups(t *testing.T) {
	groupID := uuid.New()
	member := uuid.New()
	lookup := &fakeLookup{members: map[uuid.UUID][]uuid.UUID{
		groupID: {member},
	}}
	cache := authz.NewMembershipCache(lookup)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		members, err := cache.Members(ctx, groupID)
		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{member}, members)
	}
	assert.Equal(t, 1, lookup.calls)
}

func TestMembershipCacheDoesNotCacheErrors(t *testing.T) {
	lookup := &fakeLookup{members: map[uuid.UUID][]uuid.UUID{}}
	cache := authz.NewMembershipCache(lookup)
	groupID := uuid.New()
	_, err := cache.Members(context.Background(), groupID)
	assert.Error(t, err)
	_, err = cache.Members(context.Background(), groupID)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errorvalues.ErrGroupNotFound))
	assert.Equal(t, 2, lookup.calls)
}
