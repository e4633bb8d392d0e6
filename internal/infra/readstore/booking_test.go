//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stable-booking/internal/infra"
	"stable-booking/internal/infra/readstore"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"
	readstoremock "stable-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errConnLost = errors.New("connection lost")

var (
	bookingStart = time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	bookingMade  = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func TestBookingReadStore_FindByID(t *testing.T) {
	id := uuid.New()

	t.Run("success: maps the joined row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockBookingViewQueries(ctrl)
		q.EXPECT().GetBookingView(gomock.Any(), gomock.Nil(), id).Return(sqlc.GetBookingViewRow{
			ID:              id,
			RiderName:       "Aiko",
			RiderEmail:      "aiko@example.com",
			HorseName:       "Biscuit",
			StableName:      "Willow Creek",
			StartTime:       pgconv.TimeToPgtype(bookingStart),
			EndTime:         pgconv.TimeToPgtype(bookingStart.Add(time.Hour)),
			PriceCents:      4500,
			CommissionCents: 450,
			Status:          "cancelled",
			CancelledBy:     pgconv.StringToPgtype("stable"),
			CreatedAt:       pgconv.TimeToPgtype(bookingMade),
			UpdatedAt:       pgconv.TimeToPgtype(bookingMade),
		}, nil)

		view, err := readstore.NewBookingReadStore(q, nil).FindByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
		assert.Equal(t, "aiko@example.com", view.RiderEmail)
		assert.Equal(t, 4500, view.PriceCents)
		assert.Equal(t, 450, view.CommissionCents)
		assert.Equal(t, "cancelled", view.Status)
		require.NotNil(t, view.CancelledBy)
		assert.Equal(t, "stable", *view.CancelledBy)
		assert.True(t, view.StartTime.Equal(bookingStart))
	})

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "db failure", mockErr: errConnLost, wantKind: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run("error: "+tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockBookingViewQueries(ctrl)
			q.EXPECT().GetBookingView(gomock.Any(), gomock.Nil(), id).Return(sqlc.GetBookingViewRow{}, tt.mockErr)

			view, err := readstore.NewBookingReadStore(q, nil).FindByID(context.Background(), id)

			assert.Nil(t, view)
			assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestBookingReadStore_Snapshot(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		tier     pgtype.Text
		wantTier *string
	}{
		{name: "horse with tier", tier: pgconv.StringToPgtype("Advanced"), wantTier: ptrTo("Advanced")},
		{name: "horse without tier", tier: pgtype.Text{}, wantTier: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockBookingViewQueries(ctrl)
			ownerID := uuid.New()
			q.EXPECT().GetBookingSnapshot(gomock.Any(), gomock.Nil(), id).Return(sqlc.GetBookingSnapshotRow{
				ID:            id,
				StableOwnerID: ownerID,
				Status:        "confirmed",
				StartTime:     pgconv.TimeToPgtype(bookingStart),
				EndTime:       pgconv.TimeToPgtype(bookingStart.Add(time.Hour)),
				PriceCents:    4500,
				HorseTier:     tt.tier,
			}, nil)

			snap, err := readstore.NewBookingReadStore(q, nil).Snapshot(context.Background(), id)

			require.NoError(t, err)
			assert.Equal(t, ownerID, snap.StableOwnerID)
			assert.Equal(t, "confirmed", snap.Status)
			assert.Equal(t, tt.wantTier, snap.HorseTier)
		})
	}

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockBookingViewQueries(ctrl)
		q.EXPECT().GetBookingSnapshot(gomock.Any(), gomock.Nil(), id).Return(sqlc.GetBookingSnapshotRow{}, pgx.ErrNoRows)

		_, err := readstore.NewBookingReadStore(q, nil).Snapshot(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})
}

func TestBookingReadStore_IsScored(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockBookingViewQueries(ctrl)
	scored, unscored, broken := uuid.New(), uuid.New(), uuid.New()
	q.EXPECT().RideResultExists(gomock.Any(), gomock.Nil(), scored).Return(true, nil)
	q.EXPECT().RideResultExists(gomock.Any(), gomock.Nil(), unscored).Return(false, nil)
	q.EXPECT().RideResultExists(gomock.Any(), gomock.Nil(), broken).Return(false, errConnLost)
	store := readstore.NewBookingReadStore(q, nil)

	got, err := store.IsScored(context.Background(), scored)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = store.IsScored(context.Background(), unscored)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = store.IsScored(context.Background(), broken)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
}

func TestBookingReadStore_FindByRider(t *testing.T) {
	riderID := uuid.New()

	t.Run("first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockBookingViewQueries(ctrl)
		q.EXPECT().
			ListBookingsByRiderFirstPage(gomock.Any(), gomock.Nil(), sqlc.ListBookingsByRiderFirstPageParams{RiderID: riderID, Limit: 21}).
			Return([]sqlc.ListBookingsByRiderFirstPageRow{
				{ID: uuid.New(), HorseName: "Biscuit", PriceCents: 4500, Status: "confirmed", CreatedAt: pgconv.TimeToPgtype(bookingMade)},
			}, nil)

		items, err := readstore.NewBookingReadStore(q, nil).FindByRiderFirstPage(context.Background(), riderID, 21)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Biscuit", items[0].HorseName)
		assert.Equal(t, 4500, items[0].PriceCents)
		assert.True(t, items[0].CreatedAt.Equal(bookingMade))
	})

	t.Run("keyset page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockBookingViewQueries(ctrl)
		lastID := uuid.New()
		q.EXPECT().
			ListBookingsByRiderKeyset(gomock.Any(), gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListBookingsByRiderKeysetParams) ([]sqlc.ListBookingsByRiderKeysetRow, error) {
				assert.Equal(t, riderID, arg.RiderID)
				assert.Equal(t, lastID, arg.ID)
				assert.True(t, arg.CreatedAt.Time.Equal(bookingMade))
				assert.Equal(t, int32(11), arg.RowLimit)
				return []sqlc.ListBookingsByRiderKeysetRow{}, nil
			})

		items, err := readstore.NewBookingReadStore(q, nil).FindByRiderKeyset(context.Background(), riderID, bookingMade, lastID, 11)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("error: db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockBookingViewQueries(ctrl)
		q.EXPECT().ListBookingsByRiderFirstPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errConnLost)

		_, err := readstore.NewBookingReadStore(q, nil).FindByRiderFirstPage(context.Background(), riderID, 21)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}

func ptrTo[T any](v T) *T {
	return &v
}
