//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBLike is satisfied by a pool, a connection or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Children come before their parents so the list reads in delete order.
const truncateAll = `TRUNCATE
	reviews,
	ride_results,
	availability_slots,
	bookings,
	horses,
	stables,
	users,
	rider_tiers
RESTART IDENTITY CASCADE`

// ResetDB empties every application table between tests.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, truncateAll)
	return err
}
