//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stable-booking/internal/infra"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/usecase/queries"
	"stable-booking/tests/common/builder"
	queriesmock "stable-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	view := b.BuildView()

	cases := []struct {
		name    string
		actorID uuid.UUID
		role    string
		wantErr error
	}{
		{name: "rider of the booking", actorID: b.RiderID, role: "rider"},
		{name: "owner of the stable", actorID: b.StableOwnerID, role: "stable_owner"},
		{name: "admin", actorID: uuid.New(), role: "admin"},
		{name: "another rider", actorID: uuid.New(), role: "rider", wantErr: errs.ErrForbidden},
		{name: "another owner", actorID: uuid.New(), role: "stable_owner", wantErr: errs.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

			got, err := queries.NewBookingQueries(store).GetByID(ctx, view.ID, tc.actorID, tc.role)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(ctx, gomock.Any()).Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

		_, err := queries.NewBookingQueries(store).GetByID(ctx, uuid.New(), uuid.New(), "admin")

		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}

func TestBookingQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	riderID := uuid.New()

	items := func(n int) []*queries.BookingListItem {
		base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		out := make([]*queries.BookingListItem, 0, n)
		for i := 0; i < n; i++ {
			item := builder.NewBookingBuilder().BuildListItem()
			item.CreatedAt = base.Add(-time.Duration(i) * time.Hour)
			out = append(out, item)
		}
		return out
	}

	t.Run("first page with more to come", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		rows := items(3)
		store.EXPECT().FindByRiderFirstPage(ctx, riderID, int32(3)).Return(rows, nil)

		got, next, err := queries.NewBookingQueries(store).ListMine(ctx, riderID, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)

		pos, err := queries.ParsePosition(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, pos.ID)
		assert.True(t, rows[1].CreatedAt.Equal(pos.CreatedAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByRiderFirstPage(ctx, riderID, int32(queries.DefaultListLimit+1)).Return(items(1), nil)

		got, next, err := queries.NewBookingQueries(store).ListMine(ctx, riderID, &queries.Cursor{}, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("keyset page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		lastAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		cursor := queries.Position{CreatedAt: lastAt, ID: lastID}.Cursor()

		store.EXPECT().FindByRiderKeyset(ctx, riderID, gomock.Any(), lastID, int32(queries.MaxListLimit+1)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, at time.Time, _ uuid.UUID, _ int32) ([]*queries.BookingListItem, error) {
				assert.True(t, lastAt.Equal(at))
				return nil, nil
			})

		got, next, err := queries.NewBookingQueries(store).ListMine(ctx, riderID, cursor, 500)

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Nil(t, next)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)

		_, _, err := queries.NewBookingQueries(store).ListMine(ctx, riderID, &queries.Cursor{After: "not-a-cursor"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}
