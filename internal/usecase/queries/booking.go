package queries

import (
	"context"
	"time"

	"stable-booking/internal/infra"
	"stable-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetByID is visible to the booking's rider, the stable owner and admins.
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingView, error)
	ListMine(ctx context.Context, riderID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRiderFirstPage(ctx context.Context, riderID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByRiderKeyset(ctx context.Context, riderID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole string) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}

	switch {
	case actorRole == "admin":
	case view.RiderID == actorID:
	case view.StableOwnerID == actorID:
	default:
		return nil, errs.ErrForbidden
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, riderID uuid.UUID, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		rows []*BookingListItem
		err  error
	)
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByRiderFirstPage(ctx, riderID, int32(limit+1))
	} else {
		pos, perr := ParsePosition(cursor.After)
		if perr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByRiderKeyset(ctx, riderID, pos.CreatedAt, pos.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = Position{CreatedAt: last.CreatedAt, ID: last.ID}.Cursor()
		rows = rows[:limit]
	}
	return rows, next, nil
}
