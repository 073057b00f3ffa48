package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var serializableOpts = pgx.TxOptions{IsoLevel: pgx.Serializable}

// The transaction runner defers a final rollback that also fires after commit
// (a real connection answers it with ErrTxClosed), so every transactional
// expectation set ends with one more ExpectRollback.

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := entity.User{
		Name:         "test_user",
		Email:        "test@example.com",
		AvatarURL:    "https://example.com/avatar.png",
		PasswordHash: "test_password_hash",
	}
	uid := uuid.New()
	insertUser := regexp.QuoteMeta(`INSERT INTO users (name, email, avatar_url, password_hash) VALUES ($1, $2, $3, $4) RETURNING id;`)
	insertStats := regexp.QuoteMeta(`INSERT INTO user_stats (user_id, xp, level, streak, last_active_date) VALUES ($1, 0, 1, 0, '');`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created with stats row", func(t *testing.T) {
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(insertUser).
			WithArgs(user.Name, user.Email, user.AvatarURL, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uid))
		conn.ExpectExec(insertStats).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		conn.ExpectRollback()
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
		assert.Equal(t, uid, user.ID)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(insertUser).
			WithArgs(user.Name, user.Email, user.AvatarURL, user.PasswordHash).
			WillReturnError(&pgconn.PgError{
				Code: "23505",
			})
		conn.ExpectRollback()
		conn.ExpectRollback()
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectBeginTx(serializableOpts)
		conn.ExpectQuery(insertUser).
			WithArgs(user.Name, user.Email, user.AvatarURL, user.PasswordHash).
			WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		conn.ExpectRollback()
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
}

func TestFindByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		Email:        "test@example.com",
		AvatarURL:    "https://example.com/avatar.png",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`SELECT id, name, email, avatar_url, password_hash FROM users WHERE name = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "avatar_url", "password_hash"}).
				AddRow(user.ID, user.Name, user.Email, user.AvatarURL, user.PasswordHash))
		result, err := repo.FindByName(ctx, user.Name)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, user.Name)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
	})
}

func TestFindByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		Email:        "test@example.com",
		AvatarURL:    "https://example.com/avatar.png",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`SELECT id, name, email, avatar_url, password_hash FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "avatar_url", "password_hash"}).
				AddRow(user.ID, user.Name, user.Email, user.AvatarURL, user.PasswordHash))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
	})
}

func TestUpdateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		Email:        "test@example.com",
		AvatarURL:    "https://example.com/avatar.png",
		PasswordHash: "test_password_hash",
	}
	query := regexp.QuoteMeta(`UPDATE users SET name = $1, email = $2, avatar_url = $3, password_hash = $4 WHERE id = $5;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.Email, user.AvatarURL, user.PasswordHash, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.Email, user.AvatarURL, user.PasswordHash, user.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(user.Name, user.Email, user.AvatarURL, user.PasswordHash, user.ID).
			WillReturnError(errors.New("db error"))
		err := repo.Update(ctx, &user)
		assert.Error(t, err)
	})
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, uid)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, uid)
		assert.Error(t, err)
	})
}
