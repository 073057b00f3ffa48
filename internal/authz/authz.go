// Package authz decides whether an actor may touch a goal node. Checks run
// against state read inside the enclosing transaction so an authorization
// decision and the writes it guards observe the same snapshot.
package authz

import (
	"context"

	"github.com/google/uuid"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/pkg/entity"
)

// GroupLookup resolves a group's member set. Inside a transaction the lookup
// must read through that transaction, not an external cache.
type GroupLookup interface {
	Members(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

// MembershipCache memoizes group lookups so a batch mutation touching many
// nodes of the same group pays for one read.
type MembershipCache struct {
	lookup  GroupLookup
	members map[uuid.UUID][]uuid.UUID
}

func NewMembershipCache(lookup GroupLookup) *MembershipCache {
	return &MembershipCache{
		lookup:  lookup,
		members: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (mc *MembershipCache) Members(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	if cached, ok := mc.members[groupID]; ok {
		return cached, nil
	}
	members, err := mc.lookup.Members(ctx, groupID)
	if err != nil {
		return nil, err
	}
	mc.members[groupID] = members
	return members, nil
}

func Contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// CanAccess reports whether the actor owns the node, was granted direct
// access, or belongs to the node's group.
func CanAccess(ctx context.Context, node *entity.GoalNode, actorID uuid.UUID, groups GroupLookup) (bool, error) {
	if node.OwnerID == actorID {
		return true, nil
	}
	if Contains(node.SharedWith, actorID) {
		return true, nil
	}
	if node.GroupID != nil {
		members, err := groups.Members(ctx, *node.GroupID)
		if err != nil {
			return false, err
		}
		if Contains(members, actorID) {
			return true, nil
		}
	}
	return false, nil
}

// AssertAccess fails fast with ErrUnauthorizedAccess before any write.
func AssertAccess(ctx context.Context, node *entity.GoalNode, actorID uuid.UUID, groups GroupLookup) error {
	ok, err := CanAccess(ctx, node, actorID, groups)
	if err != nil {
		return err
	}
	if !ok {
		return errorvalues.ErrUnauthorizedAccess
	}
	return nil
}
