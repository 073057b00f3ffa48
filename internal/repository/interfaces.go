package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nkaz/questline/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user with an initial stats row
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's profile
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Creates the node transactionally: reads the parent, inherits group and
	// ancestors from it, and bumps total_steps on the whole ancestor path when
	// the node is a step. Returns the new node's id.
	Create(ctx context.Context, actorID uuid.UUID, goal *entity.GoalNode) (uuid.UUID, error)
	// Reads one node
	GetByID(ctx context.Context, id uuid.UUID) (*entity.GoalNode, error)
	// Lists nodes the actor owns, was granted access to, or sees via groups
	ListVisible(ctx context.Context, actorID uuid.UUID, groupIDs []uuid.UUID) ([]*entity.GoalNode, error)
	// Lists every node that has goalID on its ancestor path
	DescendantsOf(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalNode, error)
	// Cascade-deletes the node and all descendants, adjusting surviving
	// ancestor counters by the number of removed/completed steps
	Delete(ctx context.Context, actorID, goalID uuid.UUID) error
	// Flips a step's completion and propagates the counter delta to every
	// ancestor. Reports false without writing when the step already holds the
	// target state.
	ToggleStep(ctx context.Context, actorID, stepID uuid.UUID, completed bool) (bool, error)
	// Marks a non-step node completed (or active again). Counters untouched.
	// Reports false without writing when the node already holds the target
	// state, plus the node's type.
	SetCompletion(ctx context.Context, actorID, goalID uuid.UUID, completed bool) (bool, entity.GoalType, error)
	// Rewrites sibling sort keys, all-or-nothing across the batch
	Reorder(ctx context.Context, actorID uuid.UUID, items []entity.OrderUpdate) error
	// Grants a user direct access to the node (owner only)
	Share(ctx context.Context, actorID, goalID, userID uuid.UUID) error
}

type VerificationsRepositoryI interface {
	// Opens a peer-review request: creates the verification, parks the goal in
	// pending_verification and emits the request activity, in one transaction
	CreateRequest(ctx context.Context, actor entity.Actor, verification *entity.Verification) error
	// Reads one verification
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Verification, error)
	// Approves a pending verification: completes the goal, propagates progress
	// to ancestors, awards XP to requester and approver, emits the approval
	// activity, all in one transaction
	Approve(ctx context.Context, actor entity.Actor, verificationID uuid.UUID) error
	// Rejects a pending verification and returns the goal to active. No XP
	// moves and no progress propagates.
	Reject(ctx context.Context, actor entity.Actor, verificationID uuid.UUID) error
}

type StatsRepositoryI interface {
	// Reads a user's stats row
	Get(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)
	// Creates the initial stats row
	Create(ctx context.Context, stats *entity.UserStats) error
	// Adds XP in place and stores the recomputed level/streak state
	AwardXP(ctx context.Context, userID uuid.UUID, amount, level, streak int, lastActiveDate string) error
	// Stores or clears the focus status
	SetFocus(ctx context.Context, userID uuid.UUID, focus *entity.FocusStatus) error
}

type GroupsRepositoryI interface {
	// Creates a group; the creator is its first member
	Create(ctx context.Context, group *entity.Group) (uuid.UUID, error)
	// Reads one group
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	// Adds a user to the member set (no-op when already a member)
	Join(ctx context.Context, groupID, userID uuid.UUID) error
	// Deletes a group, creator only
	Delete(ctx context.Context, groupID, actorID uuid.UUID) error
	// Lists groups the user belongs to
	ListByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error)
}

type ActivitiesRepositoryI interface {
	// Appends a standalone activity record
	Create(ctx context.Context, activity *entity.Activity) error
	// Pages a group's feed, newest first; userID narrows it to one member
	ListByGroup(ctx context.Context, groupID uuid.UUID, userID *uuid.UUID, limit, offset int) ([]entity.Activity, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
