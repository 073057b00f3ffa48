package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nkaz/questline/internal/authz"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/pkg/cleanup"
	"github.com/nkaz/questline/pkg/entity"
)

const goalColumns = `id, owner_id, title, type, status, parent_id, ancestors, group_id, shared_with, total_steps, completed_steps, deadline, sort_order, verification_id, created_at`

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func scanGoal(row pgx.Row) (*entity.GoalNode, error) {
	var goal entity.GoalNode
	err := row.Scan(
		&goal.ID,
		&goal.OwnerID,
		&goal.Title,
		&goal.Type,
		&goal.Status,
		&goal.ParentID,
		&goal.Ancestors,
		&goal.GroupID,
		&goal.SharedWith,
		&goal.TotalSteps,
		&goal.CompletedSteps,
		&goal.Deadline,
		&goal.Order,
		&goal.VerificationID,
		&goal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// getGoalTx re-reads the authoritative node inside the transaction. Callers
// must never trust node state supplied from outside the transaction for
// authorization or counting.
func getGoalTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.GoalNode, error) {
	goal, err := scanGoal(tx.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("reading goal error: " + err.Error())
	}
	return goal, nil
}

// Create inserts the node and maintains the progress invariant: a new step
// adds one to total_steps on every ancestor, not just the direct parent.
// Sub-goals and goals never touch counters.
func (gr *GoalsRepository) Create(ctx context.Context, actorID uuid.UUID, goal *entity.GoalNode) (uuid.UUID, error) {
	id := uuid.New()
	err := runSerializableTx(ctx, gr.conn, func(tx pgx.Tx) error {
		membership := newTxMembership(tx)
		if goal.ParentID != nil {
			parent, err := getGoalTx(ctx, tx, *goal.ParentID)
			if err != nil {
				if errors.Is(err, errorvalues.ErrGoalNotFound) {
					return errorvalues.ErrParentNotFound
				}
				return err
			}
			if err := authz.AssertAccess(ctx, parent, actorID, membership); err != nil {
				return err
			}
			goal.Ancestors = append(append([]uuid.UUID{}, parent.Ancestors...), parent.ID)
			// Group membership is fixed at creation and inherited down the
			// tree; any caller-supplied hint is ignored for non-root nodes.
			goal.GroupID = parent.GroupID
		} else {
			goal.Ancestors = []uuid.UUID{}
			if goal.GroupID != nil {
				members, err := membership.Members(ctx, *goal.GroupID)
				if err != nil {
					return err
				}
				if !authz.Contains(members, actorID) {
					return errorvalues.ErrNotGroupMember
				}
			}
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO goals (id, owner_id, title, type, status, parent_id, ancestors, group_id, shared_with, deadline) VALUES ($1, $2, $3, $4, 'active', $5, $6, $7, '{}', $8);`,
			id,
			goal.OwnerID,
			goal.Title,
			goal.Type,
			goal.ParentID,
			goal.Ancestors,
			goal.GroupID,
			goal.Deadline,
		)
		if err != nil {
			return errors.New("inserting goal error: " + err.Error())
		}
		if goal.Type == entity.GoalTypeStep && len(goal.Ancestors) > 0 {
			_, err = tx.Exec(ctx, `UPDATE goals SET total_steps = total_steps + 1 WHERE id = ANY($1);`, goal.Ancestors)
			if err != nil {
				return errors.New("bumping ancestor totals error: " + err.Error())
			}
		}
		return nil
	})
	if err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}

func (gr *GoalsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.GoalNode, error) {
	goal, err := scanGoal(gr.conn.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by id error: " + err.Error())
	}
	return goal, nil
}

func (gr *GoalsRepository) ListVisible(ctx context.Context, actorID uuid.UUID, groupIDs []uuid.UUID) ([]*entity.GoalNode, error) {
	if groupIDs == nil {
		groupIDs = []uuid.UUID{}
	}
	rows, err := gr.conn.Query(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE owner_id = $1 OR $1 = ANY(shared_with) OR (group_id IS NOT NULL AND group_id = ANY($2)) ORDER BY created_at DESC;`,
		actorID,
		groupIDs,
	)
	if err != nil {
		return nil, errors.New("listing visible goals error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.GoalNode, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, errors.New("goal row parsing error: " + err.Error())
		}
		goals = append(goals, goal)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected goal rows error: " + rows.Err().Error())
	}
	return goals, nil
}

// DescendantsOf runs outside any transaction: the descendant set can be large
// and the delete transaction re-validates the target before acting on it.
func (gr *GoalsRepository) DescendantsOf(ctx context.Context, goalID uuid.UUID) ([]*entity.GoalNode, error) {
	rows, err := gr.conn.Query(ctx, `SELECT `+goalColumns+` FROM goals WHERE $1 = ANY(ancestors);`, goalID)
	if err != nil {
		return nil, errors.New("listing descendants error: " + err.Error())
	}
	defer rows.Close()
	goals := make([]*entity.GoalNode, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, errors.New("goal row parsing error: " + err.Error())
		}
		goals = append(goals, goal)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected goal rows error: " + rows.Err().Error())
	}
	return goals, nil
}

// Delete cascades over the whole subtree. Removed steps are subtracted from
// every surviving ancestor so completed_steps and total_steps never drift.
func (gr *GoalsRepository) Delete(ctx context.Context, actorID, goalID uuid.UUID) error {
	descendants, err := gr.DescendantsOf(ctx, goalID)
	if err != nil {
		return err
	}
	return runSerializableTx(ctx, gr.conn, func(tx pgx.Tx) error {
		target, err := getGoalTx(ctx, tx, goalID)
		if err != nil {
			return err
		}
		if err := authz.AssertAccess(ctx, target, actorID, newTxMembership(tx)); err != nil {
			return err
		}
		removedTotal, removedCompleted := 0, 0
		countStep := func(g *entity.GoalNode) {
			if g.Type != entity.GoalTypeStep {
				return
			}
			removedTotal++
			if g.Status == entity.GoalStatusCompleted {
				removedCompleted++
			}
		}
		ids := make([]uuid.UUID, 0, len(descendants)+1)
		ids = append(ids, target.ID)
		countStep(target)
		for _, d := range descendants {
			ids = append(ids, d.ID)
			countStep(d)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM goals WHERE id = ANY($1);`, ids); err != nil {
			return errors.New("deleting goal subtree error: " + err.Error())
		}
		if removedTotal > 0 && len(target.Ancestors) > 0 {
			_, err := tx.Exec(ctx,
				`UPDATE goals SET total_steps = total_steps - $1, completed_steps = completed_steps - $2 WHERE id = ANY($3);`,
				removedTotal,
				removedCompleted,
				target.Ancestors,
			)
			if err != nil {
				return errors.New("adjusting ancestor counters error: " + err.Error())
			}
		}
		return nil
	})
}

// ToggleStep flips a step's completion. When the step already holds the target
// state the transaction performs no writes: this guard is what keeps racing or
// duplicated toggles from double-counting ancestor progress.
func (gr *GoalsRepository) ToggleStep(ctx context.Context, actorID, stepID uuid.UUID, completed bool) (bool, error) {
	changed := false
	err := runSerializableTx(ctx, gr.conn, func(tx pgx.Tx) error {
		changed = false
		step, err := getGoalTx(ctx, tx, stepID)
		if err != nil {
			return err
		}
		if err := authz.AssertAccess(ctx, step, actorID, newTxMembership(tx)); err != nil {
			return err
		}
		if step.Type != entity.GoalTypeStep {
			return errorvalues.ErrNotAStep
		}
		// A parked step belongs to its pending verification: completing it here
		// would let a later approval propagate the same step twice. The request
		// must be resolved first.
		if step.Status == entity.GoalStatusPendingVerification {
			return errorvalues.ErrVerificationPending
		}
		if (step.Status == entity.GoalStatusCompleted) == completed {
			return nil
		}
		status := entity.GoalStatusActive
		delta := -1
		if completed {
			status = entity.GoalStatusCompleted
			delta = 1
		}
		if _, err := tx.Exec(ctx, `UPDATE goals SET status = $1 WHERE id = $2;`, status, stepID); err != nil {
			return errors.New("updating step status error: " + err.Error())
		}
		if len(step.Ancestors) > 0 {
			// The ancestor list comes from the row just read, never from the
			// caller: stale client paths must not steer counter deltas.
			_, err := tx.Exec(ctx, `UPDATE goals SET completed_steps = completed_steps + $1 WHERE id = ANY($2);`, delta, step.Ancestors)
			if err != nil {
				return errors.New("propagating step completion error: " + err.Error())
			}
		}
		changed = true
		return nil
	})
	return changed, err
}

// SetCompletion is the manual terminal marker for goals and sub-goals. It
// rejects steps (those go through ToggleStep) and never touches counters.
// Reports whether the status actually moved, plus the node's type, so callers
// decide bonuses without a second read. Repeated calls with the same target
// state write nothing, same as ToggleStep.
func (gr *GoalsRepository) SetCompletion(ctx context.Context, actorID, goalID uuid.UUID, completed bool) (bool, entity.GoalType, error) {
	changed := false
	var goalType entity.GoalType
	err := runSerializableTx(ctx, gr.conn, func(tx pgx.Tx) error {
		changed = false
		goal, err := getGoalTx(ctx, tx, goalID)
		if err != nil {
			return err
		}
		if err := authz.AssertAccess(ctx, goal, actorID, newTxMembership(tx)); err != nil {
			return err
		}
		if goal.Type == entity.GoalTypeStep {
			return errorvalues.ErrNotAGoal
		}
		goalType = goal.Type
		if (goal.Status == entity.GoalStatusCompleted) == completed {
			return nil
		}
		status := entity.GoalStatusActive
		if completed {
			status = entity.GoalStatusCompleted
		}
		if _, err := tx.Exec(ctx, `UPDATE goals SET status = $1 WHERE id = $2;`, status, goalID); err != nil {
			return errors.New("updating goal status error: " + err.Error())
		}
		changed = true
		return nil
	})
	return changed, goalType, err
}

// Reorder rewrites sort keys across the batch atomically, sharing one group
// membership cache so n siblings of one group cost a single membership read.
func (gr *GoalsRepository) Reorder(ctx context.Context, actorID uuid.UUID, items []entity.OrderUpdate) error {
	if len(items) == 0 {
		return nil
	}
	return runSerializableTx(ctx, gr.conn, func(tx pgx.Tx) error {
		membership := newTxMembership(tx)
		for _, item := range items {
			goal, err := getGoalTx(ctx, tx, item.ID)
			if err != nil {
				return err
			}
			if err := authz.AssertAccess(ctx, goal, actorID, membership); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `UPDATE goals SET sort_order = $1 WHERE id = $2;`, item.Order, item.ID); err != nil {
				return errors.New("updating sort order error: " + err.Error())
			}
		}
		return nil
	})
}

func (gr *GoalsRepository) Share(ctx context.Context, actorID, goalID, userID uuid.UUID) error {
	return runSerializableTx(ctx, gr.conn, func(tx pgx.Tx) error {
		goal, err := getGoalTx(ctx, tx, goalID)
		if err != nil {
			return err
		}
		if goal.OwnerID != actorID {
			return errorvalues.ErrWrongOwner
		}
		if authz.Contains(goal.SharedWith, userID) {
			return nil
		}
		if _, err := tx.Exec(ctx, `UPDATE goals SET shared_with = array_append(shared_with, $1) WHERE id = $2;`, userID, goalID); err != nil {
			return errors.New("sharing goal error: " + err.Error())
		}
		return nil
	})
}
