package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/nkaz/questline/pkg/tree"
)

type PaginationOpts struct {
	Limit  int
	Offset int
}

type RegisterRequest struct {
	Name      string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email     string `validate:"omitempty,email"`
	AvatarURL string `validate:"omitempty,url"`
	Password  string `validate:"required,min=8,max=72"`
}

type CreateGoalRequest struct {
	Title    string
	Type     entity.GoalType
	ParentID *uuid.UUID
	// Honored only for root nodes; children always inherit the parent's group
	GroupID  *uuid.UUID
	Deadline *time.Time
}

type RequestVerificationInput struct {
	GoalID    uuid.UUID
	ProofURL  string
	ProofText string
}

type AwardResult struct {
	XP        int
	Level     int
	Streak    int
	XPGained  int
	LeveledUp bool
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type GoalsServiceI interface {
	// Validates and creates a node; the repository transaction resolves
	// ancestors and group inheritance
	CreateGoal(ctx context.Context, actorID uuid.UUID, req *CreateGoalRequest) (*entity.GoalNode, error)
	// Flat visible list, served through the mirror when warm
	ListGoals(ctx context.Context, actorID uuid.UUID) ([]*entity.GoalNode, error)
	// Visible list assembled into a sorted forest
	GoalForest(ctx context.Context, actorID uuid.UUID) ([]*tree.Node, error)
	// Cascade delete of a whole subtree
	DeleteGoal(ctx context.Context, actorID, goalID uuid.UUID) error
	// Flips a step; a transition to completed awards step XP and surfaces on
	// the group feed
	ToggleStep(ctx context.Context, actor entity.Actor, stepID uuid.UUID, completed bool) error
	// Manual terminal marker for goals and sub-goals
	MarkGoalComplete(ctx context.Context, actor entity.Actor, goalID uuid.UUID, completed bool) error
	// Batch sort-key rewrite
	ReorderGoals(ctx context.Context, actorID uuid.UUID, items []entity.OrderUpdate) error
	// Grants another user direct access
	ShareGoal(ctx context.Context, actorID, goalID, userID uuid.UUID) error
}

type VerificationsServiceI interface {
	RequestVerification(ctx context.Context, actor entity.Actor, input *RequestVerificationInput) (*entity.Verification, error)
	Approve(ctx context.Context, actor entity.Actor, verificationID, requesterID uuid.UUID) error
	Reject(ctx context.Context, actor entity.Actor, verificationID, requesterID uuid.UUID) error
}

type StatsServiceI interface {
	// Reads stats, lazily creating the initial row for pre-existing accounts
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)
	// Adds XP, recomputes level and applies the daily streak rules
	AwardXP(ctx context.Context, userID uuid.UUID, amount int) (*AwardResult, error)
	StartFocus(ctx context.Context, userID, goalID uuid.UUID) (*entity.FocusStatus, error)
	StopFocus(ctx context.Context, userID uuid.UUID) error
}

type GroupsServiceI interface {
	CreateGroup(ctx context.Context, actorID uuid.UUID, name string) (*entity.Group, error)
	JoinGroup(ctx context.Context, actorID, groupID uuid.UUID) error
	DeleteGroup(ctx context.Context, actorID, groupID uuid.UUID) error
	ListGroups(ctx context.Context, actorID uuid.UUID) ([]*entity.Group, error)
	// Pages the group feed, newest first; members only
	ActivityFeed(ctx context.Context, actorID, groupID uuid.UUID, mineOnly bool, pagination PaginationOpts) ([]entity.Activity, error)
}
