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

type GroupsRepository struct {
	conn PgConnection
}

func NewGroupsRepo(cfg DBConfig) *GroupsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for groupsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GroupsRepository{
		conn: pool,
	}
}

func NewGroupsRepoWithConn(conn PgConnection) *GroupsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for groupsRepo: " + err.Error())
	}
	return &GroupsRepository{
		conn: conn,
	}
}

func (gr *GroupsRepository) Create(ctx context.Context, group *entity.Group) (uuid.UUID, error) {
	id := uuid.New()
	_, err := gr.conn.Exec(ctx,
		`INSERT INTO groups (id, name, members, created_by) VALUES ($1, $2, $3, $4);`,
		id,
		group.Name,
		[]uuid.UUID{group.CreatedBy},
		group.CreatedBy,
	)
	if err != nil {
		return uuid.UUID{}, errors.New("creating group error: " + err.Error())
	}
	return id, nil
}

func (gr *GroupsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	group.ID = id
	row := gr.conn.QueryRow(ctx, `SELECT name, members, created_by, created_at FROM groups WHERE id = $1;`, id)
	if err := row.Scan(&group.Name, &group.Members, &group.CreatedBy, &group.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGroupNotFound
		}
		return nil, errors.New("getting group by id error: " + err.Error())
	}
	return &group, nil
}

func (gr *GroupsRepository) Join(ctx context.Context, groupID, userID uuid.UUID) error {
	return runSerializableTx(ctx, gr.conn, func(tx pgx.Tx) error {
		var members []uuid.UUID
		row := tx.QueryRow(ctx, `SELECT members FROM groups WHERE id = $1;`, groupID)
		if err := row.Scan(&members); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrGroupNotFound
			}
			return errors.New("reading group members error: " + err.Error())
		}
		if authz.Contains(members, userID) {
			return nil
		}
		if _, err := tx.Exec(ctx, `UPDATE groups SET members = array_append(members, $1) WHERE id = $2;`, userID, groupID); err != nil {
			return errors.New("joining group error: " + err.Error())
		}
		return nil
	})
}

func (gr *GroupsRepository) Delete(ctx context.Context, groupID, actorID uuid.UUID) error {
	return runSerializableTx(ctx, gr.conn, func(tx pgx.Tx) error {
		var createdBy uuid.UUID
		row := tx.QueryRow(ctx, `SELECT created_by FROM groups WHERE id = $1;`, groupID)
		if err := row.Scan(&createdBy); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrGroupNotFound
			}
			return errors.New("reading group error: " + err.Error())
		}
		if createdBy != actorID {
			return errorvalues.ErrWrongOwner
		}
		if _, err := tx.Exec(ctx, `DELETE FROM groups WHERE id = $1;`, groupID); err != nil {
			return errors.New("deleting group error: " + err.Error())
		}
		return nil
	})
}

func (gr *GroupsRepository) ListByMember(ctx context.Context, userID uuid.UUID) ([]*entity.Group, error) {
	rows, err := gr.conn.Query(ctx, `SELECT id, name, members, created_by, created_at FROM groups WHERE $1 = ANY(members);`, userID)
	if err != nil {
		return nil, errors.New("listing groups by member error: " + err.Error())
	}
	defer rows.Close()
	groups := make([]*entity.Group, 0)
	for rows.Next() {
		g := entity.Group{}
		err = rows.Scan(&g.ID, &g.Name, &g.Members, &g.CreatedBy, &g.CreatedAt)
		if err != nil {
			return nil, errors.New("group row parsing error: " + err.Error())
		}
		groups = append(groups, &g)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected group rows error: " + rows.Err().Error())
	}
	return groups, nil
}
