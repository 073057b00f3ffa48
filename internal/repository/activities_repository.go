package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nkaz/questline/pkg/cleanup"
	"github.com/nkaz/questline/pkg/entity"
)

const activityColumns = `id, type, user_id, user_name, user_avatar, group_id, goal_id, goal_title, proof_url, xp_gained, level, created_at`

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(cfg DBConfig) *ActivitiesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for activitiesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ActivitiesRepository{
		conn: pool,
	}
}

func NewActivitiesRepoWithConn(conn PgConnection) *ActivitiesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	return &ActivitiesRepository{
		conn: conn,
	}
}

// insertActivityTx appends a feed record as part of an enclosing mutation so
// the record commits or rolls back together with the change it describes.
func insertActivityTx(ctx context.Context, tx pgx.Tx, activity *entity.Activity) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO activities (id, type, user_id, user_name, user_avatar, group_id, goal_id, goal_title, proof_url, xp_gained, level) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		activity.ID,
		activity.Type,
		activity.UserID,
		activity.UserName,
		activity.UserAvatar,
		activity.GroupID,
		activity.GoalID,
		activity.GoalTitle,
		activity.ProofURL,
		activity.XPGained,
		activity.Level,
	)
	if err != nil {
		return errors.New("inserting activity error: " + err.Error())
	}
	return nil
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.Activity) error {
	_, err := ar.conn.Exec(ctx,
		`INSERT INTO activities (id, type, user_id, user_name, user_avatar, group_id, goal_id, goal_title, proof_url, xp_gained, level) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		activity.ID,
		activity.Type,
		activity.UserID,
		activity.UserName,
		activity.UserAvatar,
		activity.GroupID,
		activity.GoalID,
		activity.GoalTitle,
		activity.ProofURL,
		activity.XPGained,
		activity.Level,
	)
	if err != nil {
		return errors.New("inserting activity error: " + err.Error())
	}
	return nil
}

func (ar *ActivitiesRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, userID *uuid.UUID, limit, offset int) ([]entity.Activity, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if userID != nil {
		rows, err = ar.conn.Query(ctx,
			`SELECT `+activityColumns+` FROM activities WHERE group_id = $1 AND user_id = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4;`,
			groupID, *userID, limit, offset,
		)
	} else {
		rows, err = ar.conn.Query(ctx,
			`SELECT `+activityColumns+` FROM activities WHERE group_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`,
			groupID, limit, offset,
		)
	}
	if err != nil {
		return nil, errors.New("listing activities error: " + err.Error())
	}
	defer rows.Close()
	activities := make([]entity.Activity, 0, limit)
	for rows.Next() {
		var a entity.Activity
		err = rows.Scan(
			&a.ID,
			&a.Type,
			&a.UserID,
			&a.UserName,
			&a.UserAvatar,
			&a.GroupID,
			&a.GoalID,
			&a.GoalTitle,
			&a.ProofURL,
			&a.XPGained,
			&a.Level,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, errors.New("activity row parsing error: " + err.Error())
		}
		activities = append(activities, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected activity rows error: " + rows.Err().Error())
	}
	return activities, nil
}
