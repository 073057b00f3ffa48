package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nkaz/questline/internal/cache"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/nkaz/questline/pkg/leveling"
	"github.com/nkaz/questline/pkg/tree"
)

type GoalsService struct {
	goalsRepo      repository.GoalsRepositoryI
	groupsRepo     repository.GroupsRepositoryI
	activitiesRepo repository.ActivitiesRepositoryI
	stats          StatsServiceI
	mirror         cache.GoalMirrorI
}

func NewGoalsService(
	goalsRepo repository.GoalsRepositoryI,
	groupsRepo repository.GroupsRepositoryI,
	activitiesRepo repository.ActivitiesRepositoryI,
	stats StatsServiceI,
	mirror cache.GoalMirrorI,
) *GoalsService {
	if goalsRepo == nil || groupsRepo == nil || activitiesRepo == nil || stats == nil || mirror == nil {
		log.Fatal("on goals service provided nil dependencies")
	}
	return &GoalsService{
		goalsRepo:      goalsRepo,
		groupsRepo:     groupsRepo,
		activitiesRepo: activitiesRepo,
		stats:          stats,
		mirror:         mirror,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, actorID uuid.UUID, req *CreateGoalRequest) (*entity.GoalNode, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errorvalues.ErrEmptyTitle
	}
	if !req.Type.Valid() {
		return nil, errorvalues.ErrInvalidGoalType
	}
	goal := entity.GoalNode{
		OwnerID:  actorID,
		Title:    title,
		Type:     req.Type,
		ParentID: req.ParentID,
		GroupID:  req.GroupID,
		Deadline: req.Deadline,
	}
	id, err := gs.goalsRepo.Create(ctx, actorID, &goal)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrParentNotFound),
			errors.Is(err, errorvalues.ErrUnauthorizedAccess),
			errors.Is(err, errorvalues.ErrNotGroupMember),
			errors.Is(err, errorvalues.ErrGroupNotFound):
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	gs.mirror.Invalidate(ctx, actorID)
	created, err := gs.goalsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return created, nil
}

func (gs *GoalsService) ListGoals(ctx context.Context, actorID uuid.UUID) ([]*entity.GoalNode, error) {
	if goals, ok := gs.mirror.Get(ctx, actorID); ok {
		return goals, nil
	}
	groups, err := gs.groupsRepo.ListByMember(ctx, actorID)
	if err != nil {
		return nil, errors.New("groups repository error: " + err.Error())
	}
	groupIDs := make([]uuid.UUID, 0, len(groups))
	for _, g := range groups {
		groupIDs = append(groupIDs, g.ID)
	}
	goals, err := gs.goalsRepo.ListVisible(ctx, actorID, groupIDs)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	gs.mirror.Put(ctx, actorID, goals)
	return goals, nil
}

func (gs *GoalsService) GoalForest(ctx context.Context, actorID uuid.UUID) ([]*tree.Node, error) {
	goals, err := gs.ListGoals(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return tree.AssembleForest(goals), nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, actorID, goalID uuid.UUID) error {
	err := gs.mirror.RunMutation(ctx, actorID, cache.SpeculateDelete(goalID), func() error {
		return gs.goalsRepo.Delete(ctx, actorID, goalID)
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound),
			errors.Is(err, errorvalues.ErrUnauthorizedAccess):
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) ToggleStep(ctx context.Context, actor entity.Actor, stepID uuid.UUID, completed bool) error {
	var changed bool
	err := gs.mirror.RunMutation(ctx, actor.ID, cache.SpeculateToggle(stepID, completed), func() error {
		var err error
		changed, err = gs.goalsRepo.ToggleStep(ctx, actor.ID, stepID, completed)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound),
			errors.Is(err, errorvalues.ErrUnauthorizedAccess),
			errors.Is(err, errorvalues.ErrNotAStep),
			errors.Is(err, errorvalues.ErrVerificationPending):
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	if changed && completed {
		gs.reward(ctx, actor, stepID, leveling.XPStepComplete)
	}
	return nil
}

func (gs *GoalsService) MarkGoalComplete(ctx context.Context, actor entity.Actor, goalID uuid.UUID, completed bool) error {
	var changed bool
	var goalType entity.GoalType
	err := gs.mirror.RunMutation(ctx, actor.ID, cache.SpeculateStatus(goalID, completed), func() error {
		var err error
		changed, goalType, err = gs.goalsRepo.SetCompletion(ctx, actor.ID, goalID, completed)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound),
			errors.Is(err, errorvalues.ErrUnauthorizedAccess),
			errors.Is(err, errorvalues.ErrNotAGoal):
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	// The changed gate keeps repeated completions from paying the bonus twice.
	if changed && completed {
		bonus := leveling.XPGoalBonus
		if goalType == entity.GoalTypeSubGoal {
			bonus = leveling.XPSubGoalBonus
		}
		gs.reward(ctx, actor, goalID, bonus)
	}
	return nil
}

func (gs *GoalsService) ReorderGoals(ctx context.Context, actorID uuid.UUID, items []entity.OrderUpdate) error {
	err := gs.mirror.RunMutation(ctx, actorID, cache.SpeculateReorder(items), func() error {
		return gs.goalsRepo.Reorder(ctx, actorID, items)
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound),
			errors.Is(err, errorvalues.ErrUnauthorizedAccess):
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) ShareGoal(ctx context.Context, actorID, goalID, userID uuid.UUID) error {
	err := gs.goalsRepo.Share(ctx, actorID, goalID, userID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound),
			errors.Is(err, errorvalues.ErrWrongOwner):
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	// The grantee's visible set changed too.
	gs.mirror.Invalidate(ctx, actorID, userID)
	return nil
}

// reward grants XP and surfaces feed records for group goals. The completion
// itself has already committed, so failures here are logged, not returned.
func (gs *GoalsService) reward(ctx context.Context, actor entity.Actor, goalID uuid.UUID, amount int) {
	result, err := gs.stats.AwardXP(ctx, actor.ID, amount)
	if err != nil {
		slog.Warn("awarding completion xp failed", slog.String("error", err.Error()))
		return
	}
	goal, err := gs.goalsRepo.GetByID(ctx, goalID)
	if err != nil || goal.GroupID == nil {
		return
	}
	id := goal.ID
	err = gs.activitiesRepo.Create(ctx, &entity.Activity{
		ID:         uuid.New(),
		Type:       entity.ActivityCompletion,
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserAvatar: actor.Avatar,
		GroupID:    *goal.GroupID,
		GoalID:     &id,
		GoalTitle:  goal.Title,
		XPGained:   amount,
	})
	if err != nil {
		slog.Warn("writing completion activity failed", slog.String("error", err.Error()))
	}
	if result.LeveledUp {
		err = gs.activitiesRepo.Create(ctx, &entity.Activity{
			ID:         uuid.New(),
			Type:       entity.ActivityLevelUp,
			UserID:     actor.ID,
			UserName:   actor.Name,
			UserAvatar: actor.Avatar,
			GroupID:    *goal.GroupID,
			Level:      result.Level,
		})
		if err != nil {
			slog.Warn("writing level up activity failed", slog.String("error", err.Error()))
		}
	}
}
