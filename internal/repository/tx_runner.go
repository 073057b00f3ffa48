package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nkaz/questline/internal/authz"
	errorvalues "github.com/nkaz/questline/internal/error_values"
)

const maxTxAttempts = 3

var serializableTx = pgx.TxOptions{IsoLevel: pgx.Serializable}

// runSerializableTx executes body inside a serializable transaction and
// transparently retries on detected write conflicts. The body must be safe to
// re-execute: all of its effects go through the transaction.
func runSerializableTx(ctx context.Context, conn PgConnection, body func(tx pgx.Tx) error) error {
	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = pgx.BeginTxFunc(ctx, conn, serializableTx, body)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return errorvalues.ErrTransactionConflict
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure, deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// txGroupLookup reads group membership through the enclosing transaction, so
// authorization checks and the writes they guard share one snapshot.
type txGroupLookup struct {
	tx pgx.Tx
}

func (l txGroupLookup) Members(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	var members []uuid.UUID
	row := l.tx.QueryRow(ctx, `SELECT members FROM groups WHERE id = $1;`, groupID)
	if err := row.Scan(&members); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrGroupNotFound
		}
		return nil, errors.New("reading group members error: " + err.Error())
	}
	return members, nil
}

func newTxMembership(tx pgx.Tx) *authz.MembershipCache {
	return authz.NewMembershipCache(txGroupLookup{tx: tx})
}
