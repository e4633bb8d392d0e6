package readstore

import (
	"context"
	"time"

	"stable-booking/internal/infra"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"
	"stable-booking/internal/usecase/queries"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	GetBookingSnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingSnapshotRow, error)
	ListBookingsByRiderFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByRiderFirstPageParams) ([]sqlc.ListBookingsByRiderFirstPageRow, error)
	ListBookingsByRiderKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByRiderKeysetParams) ([]sqlc.ListBookingsByRiderKeysetRow, error)
	RideResultExists(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (bool, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &queries.BookingView{
		ID:              row.ID,
		RiderID:         row.RiderID,
		RiderName:       row.RiderName,
		RiderEmail:      row.RiderEmail,
		HorseID:         row.HorseID,
		HorseName:       row.HorseName,
		StableID:        row.StableID,
		StableName:      row.StableName,
		StableOwnerID:   row.StableOwnerID,
		StartTime:       pgconv.TimeFromPgtype(row.StartTime),
		EndTime:         pgconv.TimeFromPgtype(row.EndTime),
		PriceCents:      int(row.PriceCents),
		CommissionCents: int(row.CommissionCents),
		Status:          row.Status,
		CancelledBy:     pgconv.StringPtrFromPgtype(row.CancelledBy),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// Snapshot reads the booking row under FOR UPDATE, so it must run inside a
// write transaction.
func (r *BookingReadStore) Snapshot(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingSnapshot(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return &shared.BookingSnapshot{
		ID:              row.ID,
		RiderID:         row.RiderID,
		HorseID:         row.HorseID,
		StableID:        row.StableID,
		StableOwnerID:   row.StableOwnerID,
		Status:          row.Status,
		StartTime:       pgconv.TimeFromPgtype(row.StartTime),
		EndTime:         pgconv.TimeFromPgtype(row.EndTime),
		PriceCents:      int(row.PriceCents),
		CommissionCents: int(row.CommissionCents),
		HorseTier:       pgconv.StringPtrFromPgtype(row.HorseTier),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *BookingReadStore) IsScored(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	scored, err := r.queries.RideResultExists(ctx, r.db, bookingID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check ride result", err)
	}
	return scored, nil
}

func (r *BookingReadStore) FindByRiderFirstPage(ctx context.Context, riderID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByRiderFirstPage(ctx, r.db, sqlc.ListBookingsByRiderFirstPageParams{
		RiderID: riderID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by rider", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:         row.ID,
			HorseID:    row.HorseID,
			HorseName:  row.HorseName,
			StableID:   row.StableID,
			StableName: row.StableName,
			StartTime:  pgconv.TimeFromPgtype(row.StartTime),
			EndTime:    pgconv.TimeFromPgtype(row.EndTime),
			PriceCents: int(row.PriceCents),
			Status:     row.Status,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *BookingReadStore) FindByRiderKeyset(ctx context.Context, riderID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByRiderKeyset(ctx, r.db, sqlc.ListBookingsByRiderKeysetParams{
		RiderID:   riderID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by rider", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:         row.ID,
			HorseID:    row.HorseID,
			HorseName:  row.HorseName,
			StableID:   row.StableID,
			StableName: row.StableName,
			StartTime:  pgconv.TimeFromPgtype(row.StartTime),
			EndTime:    pgconv.TimeFromPgtype(row.EndTime),
			PriceCents: int(row.PriceCents),
			Status:     row.Status,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}
