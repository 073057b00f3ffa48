package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/nkaz/questline/pkg/leveling"
)

const dateLayout = "2006-01-02"

type StatsService struct {
	statsRepo repository.StatsRepositoryI
	goalsRepo repository.GoalsRepositoryI
	now       func() time.Time
}

func NewStatsService(statsRepo repository.StatsRepositoryI, goalsRepo repository.GoalsRepositoryI) *StatsService {
	if statsRepo == nil || goalsRepo == nil {
		log.Fatal("on stats service provided nil dependencies")
	}
	return &StatsService{
		statsRepo: statsRepo,
		goalsRepo: goalsRepo,
		now:       time.Now,
	}
}

// GetStats reads the user's stats row, creating the initial one for accounts
// that predate stats tracking.
func (ss *StatsService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	stats, err := ss.statsRepo.Get(ctx, userID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, errorvalues.ErrStatsNotFound) {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	initial := entity.UserStats{
		UserID: userID,
		XP:     0,
		Level:  1,
		Streak: 0,
	}
	if err := ss.statsRepo.Create(ctx, &initial); err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return &initial, nil
}

// AwardXP adds the amount and recomputes the derived state. The streak counts
// consecutive active days: an award on the same day keeps it, an award the day
// after the last active date extends it, anything else restarts it at one.
func (ss *StatsService) AwardXP(ctx context.Context, userID uuid.UUID, amount int) (*AwardResult, error) {
	stats, err := ss.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := ss.now().UTC().Format(dateLayout)
	yesterday := ss.now().UTC().AddDate(0, 0, -1).Format(dateLayout)
	streak := 1
	switch stats.LastActiveDate {
	case today:
		streak = stats.Streak
	case yesterday:
		streak = stats.Streak + 1
	}
	newXP := stats.XP + amount
	newLevel := leveling.LevelForXP(newXP)
	if err := ss.statsRepo.AwardXP(ctx, userID, amount, newLevel, streak, today); err != nil {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return &AwardResult{
		XP:        newXP,
		Level:     newLevel,
		Streak:    streak,
		XPGained:  amount,
		LeveledUp: newLevel > stats.Level,
	}, nil
}

func (ss *StatsService) StartFocus(ctx context.Context, userID, goalID uuid.UUID) (*entity.FocusStatus, error) {
	goal, err := ss.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	focus := entity.FocusStatus{
		GoalID:    goal.ID,
		GoalTitle: goal.Title,
		StartedAt: ss.now().UTC(),
	}
	if err := ss.statsRepo.SetFocus(ctx, userID, &focus); err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return &focus, nil
}

func (ss *StatsService) StopFocus(ctx context.Context, userID uuid.UUID) error {
	if err := ss.statsRepo.SetFocus(ctx, userID, nil); err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return err
		}
		return errors.New("stats repository error: " + err.Error())
	}
	return nil
}
