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
	"github.com/nkaz/questline/pkg/leveling"
)

const verificationColumns = `id, goal_id, requester_id, requester_name, proof_url, proof_text, status, approver_id, approver_name, xp_reward, created_at, resolved_at`

type VerificationsRepository struct {
	conn PgConnection
}

func NewVerificationsRepo(cfg DBConfig) *VerificationsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for verificationsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for verificationsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &VerificationsRepository{
		conn: pool,
	}
}

func NewVerificationsRepoWithConn(conn PgConnection) *VerificationsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for verificationsRepo: " + err.Error())
	}
	return &VerificationsRepository{
		conn: conn,
	}
}

func scanVerification(row pgx.Row) (*entity.Verification, error) {
	var v entity.Verification
	err := row.Scan(
		&v.ID,
		&v.GoalID,
		&v.RequesterID,
		&v.RequesterName,
		&v.ProofURL,
		&v.ProofText,
		&v.Status,
		&v.ApproverID,
		&v.ApproverName,
		&v.XPReward,
		&v.CreatedAt,
		&v.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func getVerificationTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Verification, error) {
	v, err := scanVerification(tx.QueryRow(ctx, `SELECT `+verificationColumns+` FROM verifications WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrVerificationNotFound
		}
		return nil, errors.New("reading verification error: " + err.Error())
	}
	return v, nil
}

// awardXPTx adds XP in place and stores the level recomputed from the XP read
// in this transaction. Users without a stats row are skipped: stats appear
// lazily on first profile read.
func awardXPTx(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount int) error {
	var xp int
	row := tx.QueryRow(ctx, `SELECT xp FROM user_stats WHERE user_id = $1;`, userID)
	if err := row.Scan(&xp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return errors.New("reading stats for award error: " + err.Error())
	}
	level := leveling.LevelForXP(xp + amount)
	_, err := tx.Exec(ctx, `UPDATE user_stats SET xp = xp + $1, level = $2 WHERE user_id = $3;`, amount, level, userID)
	if err != nil {
		return errors.New("awarding xp error: " + err.Error())
	}
	return nil
}

// CreateRequest opens the review: verification row, goal parked in
// pending_verification with a back-reference, and the feed record, atomically.
// The XP reward is fixed now, not at approval time.
func (vr *VerificationsRepository) CreateRequest(ctx context.Context, actor entity.Actor, verification *entity.Verification) error {
	return runSerializableTx(ctx, vr.conn, func(tx pgx.Tx) error {
		goal, err := getGoalTx(ctx, tx, verification.GoalID)
		if err != nil {
			return err
		}
		if err := authz.AssertAccess(ctx, goal, actor.ID, newTxMembership(tx)); err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO verifications (id, goal_id, requester_id, requester_name, proof_url, proof_text, status, xp_reward) VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7);`,
			verification.ID,
			verification.GoalID,
			verification.RequesterID,
			verification.RequesterName,
			verification.ProofURL,
			verification.ProofText,
			verification.XPReward,
		)
		if err != nil {
			return errors.New("inserting verification error: " + err.Error())
		}
		_, err = tx.Exec(ctx, `UPDATE goals SET status = 'pending_verification', verification_id = $1 WHERE id = $2;`, verification.ID, verification.GoalID)
		if err != nil {
			return errors.New("parking goal for verification error: " + err.Error())
		}
		if goal.GroupID != nil {
			goalID := goal.ID
			err = insertActivityTx(ctx, tx, &entity.Activity{
				ID:         uuid.New(),
				Type:       entity.ActivityVerificationRequest,
				UserID:     actor.ID,
				UserName:   actor.Name,
				UserAvatar: actor.Avatar,
				GroupID:    *goal.GroupID,
				GoalID:     &goalID,
				GoalTitle:  goal.Title,
				ProofURL:   verification.ProofURL,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (vr *VerificationsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Verification, error) {
	v, err := scanVerification(vr.conn.QueryRow(ctx, `SELECT `+verificationColumns+` FROM verifications WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrVerificationNotFound
		}
		return nil, errors.New("getting verification by id error: " + err.Error())
	}
	return v, nil
}

// Approve resolves the review in one atomic unit: the goal must never end up
// completed without the requester's XP landing, or the other way round.
func (vr *VerificationsRepository) Approve(ctx context.Context, actor entity.Actor, verificationID uuid.UUID) error {
	return runSerializableTx(ctx, vr.conn, func(tx pgx.Tx) error {
		v, goal, err := readPendingVerification(ctx, tx, actor, verificationID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE verifications SET status = 'approved', approver_id = $1, approver_name = $2, resolved_at = NOW() WHERE id = $3;`,
			actor.ID,
			actor.Name,
			verificationID,
		)
		if err != nil {
			return errors.New("resolving verification error: " + err.Error())
		}
		_, err = tx.Exec(ctx, `UPDATE goals SET status = 'completed', verification_id = NULL WHERE id = $1;`, goal.ID)
		if err != nil {
			return errors.New("completing verified goal error: " + err.Error())
		}
		if len(goal.Ancestors) > 0 {
			_, err = tx.Exec(ctx, `UPDATE goals SET completed_steps = completed_steps + 1 WHERE id = ANY($1);`, goal.Ancestors)
			if err != nil {
				return errors.New("propagating verified completion error: " + err.Error())
			}
		}
		if err := awardXPTx(ctx, tx, v.RequesterID, v.XPReward); err != nil {
			return err
		}
		if err := awardXPTx(ctx, tx, actor.ID, leveling.XPHelperBonus); err != nil {
			return err
		}
		if goal.GroupID != nil {
			goalID := goal.ID
			err = insertActivityTx(ctx, tx, &entity.Activity{
				ID:         uuid.New(),
				Type:       entity.ActivityVerificationApproved,
				UserID:     actor.ID,
				UserName:   actor.Name,
				UserAvatar: actor.Avatar,
				GroupID:    *goal.GroupID,
				GoalID:     &goalID,
				GoalTitle:  goal.Title,
				XPGained:   v.XPReward,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Reject closes the review without completing anything: the goal returns to
// active, no XP moves and no progress propagates.
func (vr *VerificationsRepository) Reject(ctx context.Context, actor entity.Actor, verificationID uuid.UUID) error {
	return runSerializableTx(ctx, vr.conn, func(tx pgx.Tx) error {
		_, goal, err := readPendingVerification(ctx, tx, actor, verificationID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx,
			`UPDATE verifications SET status = 'rejected', approver_id = $1, approver_name = $2, resolved_at = NOW() WHERE id = $3;`,
			actor.ID,
			actor.Name,
			verificationID,
		)
		if err != nil {
			return errors.New("resolving verification error: " + err.Error())
		}
		_, err = tx.Exec(ctx, `UPDATE goals SET status = 'active', verification_id = NULL WHERE id = $1;`, goal.ID)
		if err != nil {
			return errors.New("reactivating rejected goal error: " + err.Error())
		}
		return nil
	})
}

// readPendingVerification re-reads the verification, the goal and, for group
// goals, the membership set, all through the transaction snapshot. The
// self-review check repeats here against authoritative data even though
// callers reject it before opening the transaction.
func readPendingVerification(ctx context.Context, tx pgx.Tx, actor entity.Actor, verificationID uuid.UUID) (*entity.Verification, *entity.GoalNode, error) {
	v, err := getVerificationTx(ctx, tx, verificationID)
	if err != nil {
		return nil, nil, err
	}
	if v.Status != entity.VerificationPending {
		return nil, nil, errorvalues.ErrVerificationResolved
	}
	if v.RequesterID == actor.ID {
		return nil, nil, errorvalues.ErrSelfVerification
	}
	goal, err := getGoalTx(ctx, tx, v.GoalID)
	if err != nil {
		return nil, nil, err
	}
	if goal.GroupID != nil {
		members, err := txGroupLookup{tx: tx}.Members(ctx, *goal.GroupID)
		if err != nil {
			return nil, nil, err
		}
		if !authz.Contains(members, actor.ID) {
			return nil, nil, errorvalues.ErrNotGroupMember
		}
	}
	return v, goal, nil
}
