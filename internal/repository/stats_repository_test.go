package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStatsRepoWithConn(conn)
	userID := uuid.New()
	createdAt := time.Now().UTC()
	query := regexp.QuoteMeta(`SELECT xp, level, streak, last_active_date, focus_status, created_at FROM user_stats WHERE user_id = $1;`)
	statsColumns := []string{"xp", "level", "streak", "last_active_date", "focus_status", "created_at"}
	t.Run("found without focus", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(statsColumns).
				AddRow(120, 2, 3, "2025-03-10", []byte(nil), createdAt))
		stats, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 120, stats.XP)
		assert.Equal(t, 2, stats.Level)
		assert.Equal(t, 3, stats.Streak)
		assert.Nil(t, stats.FocusStatus)
	})
	t.Run("found with active focus", func(t *testing.T) {
		focus := entity.FocusStatus{
			GoalID:    uuid.New(),
			GoalTitle: "test_goal",
			StartedAt: createdAt,
		}
		raw, err := sonic.Marshal(&focus)
		require.NoError(t, err)
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(statsColumns).
				AddRow(120, 2, 3, "2025-03-10", raw, createdAt))
		stats, err := repo.Get(ctx, userID)
		assert.NoError(t, err)
		require.NotNil(t, stats.FocusStatus)
		assert.Equal(t, focus.GoalID, stats.FocusStatus.GoalID)
		assert.Equal(t, focus.GoalTitle, stats.FocusStatus.GoalTitle)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrStatsNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.Get(ctx, userID)
		assert.Error(t, err)
	})
}

func TestCreateStats(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStatsRepoWithConn(conn)
	stats := entity.UserStats{
		UserID: uuid.New(),
		XP:     0,
		Level:  1,
		Streak: 0,
	}
	query := regexp.QuoteMeta(`INSERT INTO user_stats (user_id, xp, level, streak, last_active_date) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (user_id) DO NOTHING;`)
	t.Run("created", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(stats.UserID, stats.XP, stats.Level, stats.Streak, stats.LastActiveDate).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Create(ctx, &stats))
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(stats.UserID, stats.XP, stats.Level, stats.Streak, stats.LastActiveDate).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Create(ctx, &stats))
	})
}

func TestAwardXP(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStatsRepoWithConn(conn)
	userID := uuid.New()
	query := regexp.QuoteMeta(`UPDATE user_stats SET xp = xp + $1, level = $2, streak = $3, last_active_date = $4 WHERE user_id = $5;`)
	t.Run("awarded", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(10, 2, 5, "2025-03-10", userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.AwardXP(ctx, userID, 10, 2, 5, "2025-03-10"))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(10, 2, 5, "2025-03-10", userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.AwardXP(ctx, userID, 10, 2, 5, "2025-03-10")
		assert.ErrorIs(t, err, errorvalues.ErrStatsNotFound)
	})
}

func TestSetFocus(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStatsRepoWithConn(conn)
	userID := uuid.New()
	query := regexp.QuoteMeta(`UPDATE user_stats SET focus_status = $1 WHERE user_id = $2;`)
	t.Run("focus set", func(t *testing.T) {
		focus := entity.FocusStatus{
			GoalID:    uuid.New(),
			GoalTitle: "test_goal",
			StartedAt: time.Now().UTC(),
		}
		raw, err := sonic.Marshal(&focus)
		require.NoError(t, err)
		conn.ExpectExec(query).
			WithArgs(raw, userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetFocus(ctx, userID, &focus))
	})
	t.Run("focus cleared", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs([]byte(nil), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetFocus(ctx, userID, nil))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs([]byte(nil), userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.SetFocus(ctx, userID, nil), errorvalues.ErrStatsNotFound)
	})
}
