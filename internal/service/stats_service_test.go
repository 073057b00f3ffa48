package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository/mocks"
	"github.com/nkaz/questline/internal/service"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/nkaz/questline/pkg/leveling"
	"github.com/stretchr/testify/assert"
)

func TestGetStats(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	statsRepo := mocks.NewMockStatsRepositoryI(ctrl)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)

	serv := service.NewStatsService(statsRepo, goalsRepo)
	userID := uuid.New()
	stored := entity.UserStats{
		UserID: userID,
		XP:     120,
		Level:  2,
		Streak: 3,
	}
	testCases := []struct {
		Desc         string
		Error        error
		Expected     *entity.UserStats
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			Error:    nil,
			Expected: &stored,
			MockPrepFunc: func() {
				statsRepo.EXPECT().Get(gomock.Any(), userID).Return(&stored, nil)
			},
		},
		{
			Desc:  "missing row gets created",
			Error: nil,
			Expected: &entity.UserStats{
				UserID: userID,
				XP:     0,
				Level:  1,
				Streak: 0,
			},
			MockPrepFunc: func() {
				statsRepo.EXPECT().Get(gomock.Any(), userID).Return(nil, errorvalues.ErrStatsNotFound)
				statsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := serv.GetStats(ctx, userID)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, tc.Expected, result)
			}
		})
	}
}

func TestAwardXPStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	statsRepo := mocks.NewMockStatsRepositoryI(ctrl)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)

	fixed := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	serv := service.NewStatsService(statsRepo, goalsRepo).WithNow(func() time.Time { return fixed })
	userID := uuid.New()
	testCases := []struct {
		Desc           string
		LastActiveDate string
		Streak         int
		XP             int
		Amount         int
		WantStreak     int
		WantLeveledUp  bool
	}{
		{
			Desc:           "same day keeps streak",
			LastActiveDate: "2025-03-10",
			Streak:         4,
			XP:             20,
			Amount:         leveling.XPStepComplete,
			WantStreak:     4,
		},
		{
			Desc:           "consecutive day extends streak",
			LastActiveDate: "2025-03-09",
			Streak:         4,
			XP:             20,
			Amount:         leveling.XPStepComplete,
			WantStreak:     5,
		},
		{
			Desc:           "gap resets streak",
			LastActiveDate: "2025-03-07",
			Streak:         4,
			XP:             20,
			Amount:         leveling.XPStepComplete,
			WantStreak:     1,
		},
		{
			Desc:           "crossing threshold levels up",
			LastActiveDate: "2025-03-10",
			Streak:         1,
			XP:             90,
			Amount:         leveling.XPStepComplete,
			WantStreak:     1,
			WantLeveledUp:  true,
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			statsRepo.EXPECT().Get(gomock.Any(), userID).Return(&entity.UserStats{
				UserID:         userID,
				XP:             tc.XP,
				Level:          leveling.LevelForXP(tc.XP),
				Streak:         tc.Streak,
				LastActiveDate: tc.LastActiveDate,
			}, nil)
			wantLevel := leveling.LevelForXP(tc.XP + tc.Amount)
			statsRepo.EXPECT().
				AwardXP(gomock.Any(), userID, tc.Amount, wantLevel, tc.WantStreak, "2025-03-10").
				Return(nil)
			result, err := serv.AwardXP(ctx, userID, tc.Amount)
			assert.NoError(t, err)
			assert.Equal(t, tc.XP+tc.Amount, result.XP)
			assert.Equal(t, wantLevel, result.Level)
			assert.Equal(t, tc.WantStreak, result.Streak)
			assert.Equal(t, tc.Amount, result.XPGained)
			assert.Equal(t, tc.WantLeveledUp, result.LeveledUp)
		})
	}
}

func TestStartFocus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	statsRepo := mocks.NewMockStatsRepositoryI(ctrl)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)

	fixed := time.Date(2025, time.March, 10, 15, 0, 0, 0, time.UTC)
	serv := service.NewStatsService(statsRepo, goalsRepo).WithNow(func() time.Time { return fixed })
	userID := uuid.New()
	goalID := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(&entity.GoalNode{
					ID:      goalID,
					OwnerID: userID,
					Title:   "test_goal",
					Type:    entity.GoalTypeGoal,
				}, nil)
				statsRepo.EXPECT().SetFocus(gomock.Any(), userID, &entity.FocusStatus{
					GoalID:    goalID,
					GoalTitle: "test_goal",
					StartedAt: fixed,
				}).Return(nil)
			},
		},
		{
			Desc:  "error goal not found",
			Error: errorvalues.ErrGoalNotFound,
			MockPrepFunc: func() {
				goalsRepo.EXPECT().GetByID(gomock.Any(), goalID).Return(nil, errorvalues.ErrGoalNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			focus, err := serv.StartFocus(ctx, userID, goalID)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, goalID, focus.GoalID)
				assert.Equal(t, fixed, focus.StartedAt)
			}
		})
	}
}

func TestStopFocus(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	statsRepo := mocks.NewMockStatsRepositoryI(ctrl)
	goalsRepo := mocks.NewMockGoalsRepositoryI(ctrl)

	serv := service.NewStatsService(statsRepo, goalsRepo)
	userID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		statsRepo.EXPECT().SetFocus(gomock.Any(), userID, nil).Return(nil)
		assert.NoError(t, serv.StopFocus(ctx, userID))
	})
	t.Run("error stats not found", func(t *testing.T) {
		statsRepo.EXPECT().SetFocus(gomock.Any(), userID, nil).Return(errorvalues.ErrStatsNotFound)
		assert.ErrorIs(t, serv.StopFocus(ctx, userID), errorvalues.ErrStatsNotFound)
	})
}
