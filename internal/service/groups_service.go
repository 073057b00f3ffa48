package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/nkaz/questline/internal/authz"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository"
	"github.com/nkaz/questline/pkg/entity"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 100
)

type GroupsService struct {
	groupsRepo     repository.GroupsRepositoryI
	activitiesRepo repository.ActivitiesRepositoryI
}

func NewGroupsService(groupsRepo repository.GroupsRepositoryI, activitiesRepo repository.ActivitiesRepositoryI) *GroupsService {
	if groupsRepo == nil || activitiesRepo == nil {
		log.Fatal("on groups service provided nil dependencies")
	}
	return &GroupsService{
		groupsRepo:     groupsRepo,
		activitiesRepo: activitiesRepo,
	}
}

func (gs *GroupsService) CreateGroup(ctx context.Context, actorID uuid.UUID, name string) (*entity.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errorvalues.ErrEmptyTitle
	}
	group := entity.Group{
		Name:      name,
		CreatedBy: actorID,
	}
	id, err := gs.groupsRepo.Create(ctx, &group)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	created, err := gs.groupsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	return created, nil
}

func (gs *GroupsService) JoinGroup(ctx context.Context, actorID, groupID uuid.UUID) error {
	err := gs.groupsRepo.Join(ctx, groupID, actorID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return err
		}
		return errors.New("groups repository error: " + err.Error())
	}
	return nil
}

func (gs *GroupsService) DeleteGroup(ctx context.Context, actorID, groupID uuid.UUID) error {
	err := gs.groupsRepo.Delete(ctx, groupID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound),
			errors.Is(err, errorvalues.ErrWrongOwner):
			return err
		}
		return errors.New("groups repository error: " + err.Error())
	}
	return nil
}

func (gs *GroupsService) ListGroups(ctx context.Context, actorID uuid.UUID) ([]*entity.Group, error) {
	groups, err := gs.groupsRepo.ListByMember(ctx, actorID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	return groups, nil
}

func (gs *GroupsService) ActivityFeed(ctx context.Context, actorID, groupID uuid.UUID, mineOnly bool, pagination PaginationOpts) ([]entity.Activity, error) {
	group, err := gs.groupsRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return nil, err
		}
		return nil, errors.New("groups repository error: " + err.Error())
	}
	if !authz.Contains(group.Members, actorID) {
		return nil, errorvalues.ErrNotGroupMember
	}
	limit := pagination.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	offset := pagination.Offset
	if offset < 0 {
		offset = 0
	}
	var userID *uuid.UUID
	if mineOnly {
		userID = &actorID
	}
	activities, err := gs.activitiesRepo.ListByGroup(ctx, groupID, userID, limit, offset)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return activities, nil
}
