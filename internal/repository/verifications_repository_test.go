package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/nkaz/questline/pkg/leveling"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var (
	verificationColumnNames = []string{
		"id", "goal_id", "requester_id", "requester_name", "proof_url", "proof_text",
		"status", "approver_id", "approver_name", "xp_reward", "created_at", "resolved_at",
	}
	selectVerificationQuery = regexp.QuoteMeta(`SELECT id, goal_id, requester_id, requester_name, proof_url, proof_text, status, approver_id, approver_name, xp_reward, created_at, resolved_at FROM verifications WHERE id = $1;`)
	selectMembersQuery      = regexp.QuoteMeta(`SELECT members FROM groups WHERE id = $1;`)
)

func verificationRows(v *entity.Verification) *pgxmock.Rows {
	return pgxmock.NewRows(verificationColumnNames).AddRow(
		v.ID, v.GoalID, v.RequesterID, v.RequesterName, v.ProofURL, v.ProofText,
		v.Status, v.ApproverID, v.ApproverName, v.XPReward, v.CreatedAt, v.ResolvedAt,
	)
}

func TestCreateVerificationRequest(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewVerificationsRepoWithConn(conn)
	actor := entity.Actor{ID: uuid.New(), Name: "test_requester"}
	groupID := uuid.New()
	insertVerification := regexp.QuoteMeta(`INSERT INTO verifications (id, goal_id, requester_id, requester_name, proof_url, proof_text, status, xp_reward) VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7);`)
	parkGoal := regexp.QuoteMeta(`UPDATE goals SET status = 'pending_verification', verification_id = $1 WHERE id = $2;`)
	insertActivity := regexp.QuoteMeta(`INSERT INTO activities (id, type, user_id, user_name, user_avatar, group_id, goal_id, goal_title, proof_url, xp_gained, level) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`)

	t.Run("group goal request emits feed record", func(t *testing.T) {
		goal := testStep(actor.ID, []uuid.UUID{uuid.New()}, false)
		goal.GroupID = &groupID
		v := &entity.Verification{
			ID:            uuid.New(),
			GoalID:        goal.ID,
			RequesterID:   actor.ID,
			RequesterName: actor.Name,
			ProofURL:      "https://example.com/proof.png",
			Status:        entity.VerificationPending,
			XPReward:      leveling.XPStepComplete,
		}
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectGoalQuery).WithArgs(goal.ID).WillReturnRows(goalRows(goal))
		conn.ExpectExec(insertVerification).
			WithArgs(v.ID, v.GoalID, v.RequesterID, v.RequesterName, v.ProofURL, v.ProofText, v.XPReward).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectExec(parkGoal).
			WithArgs(v.ID, v.GoalID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectExec(insertActivity).
			WithArgs(pgxmock.AnyArg(), entity.ActivityVerificationRequest, actor.ID, actor.Name, actor.Avatar, groupID, &goal.ID, goal.Title, v.ProofURL, 0, 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		conn.ExpectRollback()
		err := repo.CreateRequest(ctx, actor, v)
		assert.NoError(t, err)
	})
	t.Run("personal goal request skips the feed", func(t *testing.T) {
		goal := testStep(actor.ID, []uuid.UUID{uuid.New()}, false)
		v := &entity.Verification{
			ID:            uuid.New(),
			GoalID:        goal.ID,
			RequesterID:   actor.ID,
			RequesterName: actor.Name,
			ProofText:     "done it",
			Status:        entity.VerificationPending,
			XPReward:      leveling.XPStepComplete,
		}
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectGoalQuery).WithArgs(goal.ID).WillReturnRows(goalRows(goal))
		conn.ExpectExec(insertVerification).
			WithArgs(v.ID, v.GoalID, v.RequesterID, v.RequesterName, v.ProofURL, v.ProofText, v.XPReward).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectExec(parkGoal).
			WithArgs(v.ID, v.GoalID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		conn.ExpectRollback()
		err := repo.CreateRequest(ctx, actor, v)
		assert.NoError(t, err)
	})
	t.Run("missing goal", func(t *testing.T) {
		v := &entity.Verification{ID: uuid.New(), GoalID: uuid.New(), RequesterID: actor.ID}
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectGoalQuery).WithArgs(v.GoalID).WillReturnError(pgx.ErrNoRows)
		conn.ExpectRollback()
		conn.ExpectRollback()
		err := repo.CreateRequest(ctx, actor, v)
		assert.ErrorIs(t, err, errorvalues.ErrGoalNotFound)
	})
}

func TestApproveVerification(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewVerificationsRepoWithConn(conn)
	requesterID := uuid.New()
	approver := entity.Actor{ID: uuid.New(), Name: "test_approver"}
	groupID := uuid.New()
	rootID := uuid.New()
	approveQuery := regexp.QuoteMeta(`UPDATE verifications SET status = 'approved', approver_id = $1, approver_name = $2, resolved_at = NOW() WHERE id = $3;`)
	completeGoal := regexp.QuoteMeta(`UPDATE goals SET status = 'completed', verification_id = NULL WHERE id = $1;`)
	propagate := regexp.QuoteMeta(`UPDATE goals SET completed_steps = completed_steps + 1 WHERE id = ANY($1);`)
	selectXP := regexp.QuoteMeta(`SELECT xp FROM user_stats WHERE user_id = $1;`)
	awardXP := regexp.QuoteMeta(`UPDATE user_stats SET xp = xp + $1, level = $2 WHERE user_id = $3;`)
	insertActivity := regexp.QuoteMeta(`INSERT INTO activities (id, type, user_id, user_name, user_avatar, group_id, goal_id, goal_title, proof_url, xp_gained, level) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`)

	pendingVerification := func(goalID uuid.UUID) *entity.Verification {
		return &entity.Verification{
			ID:            uuid.New(),
			GoalID:        goalID,
			RequesterID:   requesterID,
			RequesterName: "test_requester",
			ProofURL:      "https://example.com/proof.png",
			Status:        entity.VerificationPending,
			XPReward:      leveling.XPStepComplete,
			CreatedAt:     time.Now(),
		}
	}

	t.Run("approval completes goal, propagates and pays both parties", func(t *testing.T) {
		goal := testStep(requesterID, []uuid.UUID{rootID}, false)
		goal.GroupID = &groupID
		v := pendingVerification(goal.ID)
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectVerificationQuery).WithArgs(v.ID).WillReturnRows(verificationRows(v))
		conn.ExpectQuery(selectGoalQuery).WithArgs(goal.ID).WillReturnRows(goalRows(goal))
		conn.ExpectQuery(selectMembersQuery).
			WithArgs(groupID).
			WillReturnRows(pgxmock.NewRows([]string{"members"}).AddRow([]uuid.UUID{requesterID, approver.ID}))
		conn.ExpectExec(approveQuery).
			WithArgs(approver.ID, approver.Name, v.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectExec(completeGoal).WithArgs(goal.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectExec(propagate).WithArgs([]uuid.UUID{rootID}).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectQuery(selectXP).WithArgs(requesterID).
			WillReturnRows(pgxmock.NewRows([]string{"xp"}).AddRow(90))
		conn.ExpectExec(awardXP).
			WithArgs(v.XPReward, leveling.LevelForXP(90+v.XPReward), requesterID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectQuery(selectXP).WithArgs(approver.ID).
			WillReturnRows(pgxmock.NewRows([]string{"xp"}).AddRow(10))
		conn.ExpectExec(awardXP).
			WithArgs(leveling.XPHelperBonus, leveling.LevelForXP(10+leveling.XPHelperBonus), approver.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectExec(insertActivity).
			WithArgs(pgxmock.AnyArg(), entity.ActivityVerificationApproved, approver.ID, approver.Name, approver.Avatar, groupID, &goal.ID, goal.Title, "", v.XPReward, 0).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		conn.ExpectRollback()
		err := repo.Approve(ctx, approver, v.ID)
		assert.NoError(t, err)
	})
	t.Run("requester can't approve own request", func(t *testing.T) {
		goal := testStep(requesterID, []uuid.UUID{rootID}, false)
		v := pendingVerification(goal.ID)
		self := entity.Actor{ID: requesterID, Name: v.RequesterName}
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectVerificationQuery).WithArgs(v.ID).WillReturnRows(verificationRows(v))
		conn.ExpectRollback()
		conn.ExpectRollback()
		err := repo.Approve(ctx, self, v.ID)
		assert.ErrorIs(t, err, errorvalues.ErrSelfVerification)
	})
	t.Run("resolved verification rejected", func(t *testing.T) {
		goal := testStep(requesterID, []uuid.UUID{rootID}, false)
		v := pendingVerification(goal.ID)
		v.Status = entity.VerificationApproved
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectVerificationQuery).WithArgs(v.ID).WillReturnRows(verificationRows(v))
		conn.ExpectRollback()
		conn.ExpectRollback()
		err := repo.Approve(ctx, approver, v.ID)
		assert.ErrorIs(t, err, errorvalues.ErrVerificationResolved)
	})
	t.Run("outsider can't approve group goal", func(t *testing.T) {
		goal := testStep(requesterID, []uuid.UUID{rootID}, false)
		goal.GroupID = &groupID
		v := pendingVerification(goal.ID)
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectVerificationQuery).WithArgs(v.ID).WillReturnRows(verificationRows(v))
		conn.ExpectQuery(selectGoalQuery).WithArgs(goal.ID).WillReturnRows(goalRows(goal))
		conn.ExpectQuery(selectMembersQuery).
			WithArgs(groupID).
			WillReturnRows(pgxmock.NewRows([]string{"members"}).AddRow([]uuid.UUID{requesterID}))
		conn.ExpectRollback()
		conn.ExpectRollback()
		err := repo.Approve(ctx, approver, v.ID)
		assert.ErrorIs(t, err, errorvalues.ErrNotGroupMember)
	})
	t.Run("missing verification", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectVerificationQuery).WithArgs(id).WillReturnError(pgx.ErrNoRows)
		conn.ExpectRollback()
		conn.ExpectRollback()
		err := repo.Approve(ctx, approver, id)
		assert.ErrorIs(t, err, errorvalues.ErrVerificationNotFound)
	})
}

func TestRejectVerification(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewVerificationsRepoWithConn(conn)
	requesterID := uuid.New()
	approver := entity.Actor{ID: uuid.New(), Name: "test_approver"}
	rejectQuery := regexp.QuoteMeta(`UPDATE verifications SET status = 'rejected', approver_id = $1, approver_name = $2, resolved_at = NOW() WHERE id = $3;`)
	reactivateGoal := regexp.QuoteMeta(`UPDATE goals SET status = 'active', verification_id = NULL WHERE id = $1;`)

	t.Run("rejection reactivates the goal without XP or propagation", func(t *testing.T) {
		goal := testStep(requesterID, []uuid.UUID{uuid.New()}, false)
		v := &entity.Verification{
			ID:            uuid.New(),
			GoalID:        goal.ID,
			RequesterID:   requesterID,
			RequesterName: "test_requester",
			ProofText:     "looks done",
			Status:        entity.VerificationPending,
			XPReward:      leveling.XPStepComplete,
			CreatedAt:     time.Now(),
		}
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(selectVerificationQuery).WithArgs(v.ID).WillReturnRows(verificationRows(v))
		conn.ExpectQuery(selectGoalQuery).WithArgs(goal.ID).WillReturnRows(goalRows(goal))
		conn.ExpectExec(rejectQuery).
			WithArgs(approver.ID, approver.Name, v.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectExec(reactivateGoal).WithArgs(goal.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		conn.ExpectRollback()
		err := repo.Reject(ctx, approver, v.ID)
		assert.NoError(t, err)
	})
}
