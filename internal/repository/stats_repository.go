package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/pkg/cleanup"
	"github.com/nkaz/questline/pkg/entity"
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsRepository{
		conn: pool,
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	var (
		stats    entity.UserStats
		focusRaw []byte
	)
	stats.UserID = userID
	row := sr.conn.QueryRow(ctx, `SELECT xp, level, streak, last_active_date, focus_status, created_at FROM user_stats WHERE user_id = $1;`, userID)
	if err := row.Scan(&stats.XP, &stats.Level, &stats.Streak, &stats.LastActiveDate, &focusRaw, &stats.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("getting stats error: " + err.Error())
	}
	if len(focusRaw) > 0 {
		var focus entity.FocusStatus
		if err := sonic.Unmarshal(focusRaw, &focus); err != nil {
			return nil, errors.New("unmarshalling focus status error: " + err.Error())
		}
		stats.FocusStatus = &focus
	}
	return &stats, nil
}

func (sr *StatsRepository) Create(ctx context.Context, stats *entity.UserStats) error {
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO user_stats (user_id, xp, level, streak, last_active_date) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (user_id) DO NOTHING;`,
		stats.UserID,
		stats.XP,
		stats.Level,
		stats.Streak,
		stats.LastActiveDate,
	)
	if err != nil {
		return errors.New("creating stats error: " + err.Error())
	}
	return nil
}

// AwardXP adds the delta in place so concurrent awards never lose XP; level
// and streak are precomputed by the caller from a just-read snapshot.
func (sr *StatsRepository) AwardXP(ctx context.Context, userID uuid.UUID, amount, level, streak int, lastActiveDate string) error {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE user_stats SET xp = xp + $1, level = $2, streak = $3, last_active_date = $4 WHERE user_id = $5;`,
		amount,
		level,
		streak,
		lastActiveDate,
		userID,
	)
	if err != nil {
		return errors.New("awarding xp error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}

func (sr *StatsRepository) SetFocus(ctx context.Context, userID uuid.UUID, focus *entity.FocusStatus) error {
	var raw []byte
	if focus != nil {
		var err error
		raw, err = sonic.Marshal(focus)
		if err != nil {
			return errors.New("marshalling focus status error: " + err.Error())
		}
	}
	ct, err := sr.conn.Exec(ctx, `UPDATE user_stats SET focus_status = $1 WHERE user_id = $2;`, raw, userID)
	if err != nil {
		return errors.New("setting focus status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}
