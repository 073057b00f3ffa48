package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository/mocks"
	"github.com/nkaz/questline/internal/service"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCreateGroup(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	groupsRepo := mocks.NewMockGroupsRepositoryI(ctrl)
	activitiesRepo := mocks.NewMockActivitiesRepositoryI(ctrl)

	serv := service.NewGroupsService(groupsRepo, activitiesRepo)
	actorID := uuid.New()
	groupID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Name         string
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Name:  "test_group",
			MockPrepFunc: func() {
				groupsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(groupID, nil)
				groupsRepo.EXPECT().GetByID(gomock.Any(), groupID).Return(&entity.Group{
					ID:        groupID,
					Name:      "test_group",
					CreatedBy: actorID,
					Members:   []uuid.UUID{actorID},
				}, nil)
			},
		},
		{
			Desc:         "error empty name",
			Error:        errorvalues.ErrEmptyTitle,
			Name:         "   ",
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			created, err := serv.CreateGroup(ctx, actorID, tc.Name)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, groupID, created.ID)
				assert.Contains(t, created.Members, actorID)
			}
		})
	}
}

func TestJoinGroup(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	groupsRepo := mocks.NewMockGroupsRepositoryI(ctrl)
	activitiesRepo := mocks.NewMockActivitiesRepositoryI(ctrl)

	serv := service.NewGroupsService(groupsRepo, activitiesRepo)
	actorID := uuid.New()
	groupID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		groupsRepo.EXPECT().Join(gomock.Any(), groupID, actorID).Return(nil)
		assert.NoError(t, serv.JoinGroup(ctx, actorID, groupID))
	})
	t.Run("error group not found", func(t *testing.T) {
		groupsRepo.EXPECT().Join(gomock.Any(), groupID, actorID).
			Return(errorvalues.ErrGroupNotFound)
		assert.ErrorIs(t, serv.JoinGroup(ctx, actorID, groupID), errorvalues.ErrGroupNotFound)
	})
}

func TestDeleteGroup(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	groupsRepo := mocks.NewMockGroupsRepositoryI(ctrl)
	activitiesRepo := mocks.NewMockActivitiesRepositoryI(ctrl)

	serv := service.NewGroupsService(groupsRepo, activitiesRepo)
	actorID := uuid.New()
	groupID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		groupsRepo.EXPECT().Delete(gomock.Any(), groupID, actorID).Return(nil)
		assert.NoError(t, serv.DeleteGroup(ctx, actorID, groupID))
	})
	t.Run("error wrong owner", func(t *testing.T) {
		groupsRepo.EXPECT().Delete(gomock.Any(), groupID, actorID).
			Return(errorvalues.ErrWrongOwner)
		assert.ErrorIs(t, serv.DeleteGroup(ctx, actorID, groupID), errorvalues.ErrWrongOwner)
	})
}

func TestActivityFeed(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	groupsRepo := mocks.NewMockGroupsRepositoryI(ctrl)
	activitiesRepo := mocks.NewMockActivitiesRepositoryI(ctrl)

	serv := service.NewGroupsService(groupsRepo, activitiesRepo)
	actorID := uuid.New()
	groupID := uuid.New()
	group := entity.Group{
		ID:      groupID,
		Name:    "test_group",
		Members: []uuid.UUID{actorID, uuid.New()},
	}
	feed := []entity.Activity{
		{
			ID:       uuid.New(),
			Type:     entity.ActivityCompletion,
			UserID:   actorID,
			GroupID:  groupID,
			XPGained: 10,
		},
	}
	testCases := []struct {
		Desc         string
		Error        error
		MineOnly     bool
		Pagination   service.PaginationOpts
		MockPrepFunc func()
	}{
		{
			Desc:       "defaults applied to empty pagination",
			Error:      nil,
			Pagination: service.PaginationOpts{},
			MockPrepFunc: func() {
				groupsRepo.EXPECT().GetByID(gomock.Any(), groupID).Return(&group, nil)
				activitiesRepo.EXPECT().ListByGroup(gomock.Any(), groupID, nil, 20, 0).Return(feed, nil)
			},
		},
		{
			Desc:       "oversized limit gets clamped",
			Error:      nil,
			Pagination: service.PaginationOpts{Limit: 1000, Offset: -5},
			MockPrepFunc: func() {
				groupsRepo.EXPECT().GetByID(gomock.Any(), groupID).Return(&group, nil)
				activitiesRepo.EXPECT().ListByGroup(gomock.Any(), groupID, nil, 100, 0).Return(feed, nil)
			},
		},
		{
			Desc:       "mine only filters by the actor",
			Error:      nil,
			MineOnly:   true,
			Pagination: service.PaginationOpts{Limit: 10, Offset: 10},
			MockPrepFunc: func() {
				groupsRepo.EXPECT().GetByID(gomock.Any(), groupID).Return(&group, nil)
				activitiesRepo.EXPECT().ListByGroup(gomock.Any(), groupID, &actorID, 10, 10).Return(feed, nil)
			},
		},
		{
			Desc:       "error not group member",
			Error:      errorvalues.ErrNotGroupMember,
			Pagination: service.PaginationOpts{},
			MockPrepFunc: func() {
				groupsRepo.EXPECT().GetByID(gomock.Any(), groupID).Return(&entity.Group{
					ID:      groupID,
					Name:    "test_group",
					Members: []uuid.UUID{uuid.New()},
				}, nil)
			},
		},
		{
			Desc:       "error group not found",
			Error:      errorvalues.ErrGroupNotFound,
			Pagination: service.PaginationOpts{},
			MockPrepFunc: func() {
				groupsRepo.EXPECT().GetByID(gomock.Any(), groupID).
					Return(nil, errorvalues.ErrGroupNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			activities, err := serv.ActivityFeed(ctx, actorID, groupID, tc.MineOnly, tc.Pagination)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Len(t, activities, 1)
			}
		})
	}
}
