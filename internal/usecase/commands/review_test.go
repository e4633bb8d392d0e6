//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"stable-booking/internal/domain/review"
	"stable-booking/internal/infra"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/clock"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/usecase/commands"
	"stable-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	completed := func() *builder.BookingBuilder {
		return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = "completed" })
	}

	t.Run("success: rider reviews a completed ride", func(t *testing.T) {
		m := newTxMocks(t)
		b := completed()
		snap := b.BuildSnapshot()
		reviewID := uuid.New()

		m.reads.EXPECT().BookingForUpdate(ctx, snap.ID).Return(snap, nil)
		m.reviews.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, rev *review.Review) (uuid.UUID, error) {
				assert.Equal(t, snap.ID, rev.BookingID())
				assert.Equal(t, snap.StableID, rev.StableID())
				require.NotNil(t, rev.HorseID())
				assert.Equal(t, snap.HorseID, *rev.HorseID())
				assert.Equal(t, "Lovely calm horse", rev.Comment().String())
				assert.Equal(t, now, rev.CreatedAt())
				return reviewID, nil
			})

		uc := commands.NewReviewUseCase(m.uow, clock.Fixed(now))
		got, err := uc.CreateReview(ctx, commands.CreateReviewRequest{
			BookingID: snap.ID,
			Rating:    5,
			Comment:   "  Lovely calm horse ",
		}, b.RiderID)

		require.NoError(t, err)
		assert.Equal(t, reviewID, got.ReviewID)
	})

	t.Run("error: invalid input is rejected before the transaction", func(t *testing.T) {
		uc := commands.NewReviewUseCase(newTxMocks(t).uow, clock.Fixed(now))

		_, err := uc.CreateReview(ctx, commands.CreateReviewRequest{BookingID: uuid.New(), Rating: 6}, uuid.New())
		assert.ErrorIs(t, err, review.ErrInvalidRating)

		_, err = uc.CreateReview(ctx, commands.CreateReviewRequest{
			BookingID: uuid.New(),
			Rating:    4,
			Comment:   strings.Repeat("x", review.MaxCommentLength+1),
		}, uuid.New())
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})

	cases := []struct {
		name    string
		status  string
		byRider bool
		create  error
		wantErr error
	}{
		{name: "someone else's booking", status: "completed", byRider: false, wantErr: errs.ErrForbidden},
		{name: "ride not completed yet", status: "confirmed", byRider: true, wantErr: errs.ErrBookingNotCompleted},
		{name: "cancelled booking", status: "cancelled", byRider: true, wantErr: errs.ErrBookingNotCompleted},
		{
			name:    "second review for the booking",
			status:  "completed",
			byRider: true,
			create:  infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey),
			wantErr: errs.ErrDuplicateReview,
		},
	}

	for _, tc := range cases {
		t.Run("error: "+tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = tc.status })
			snap := b.BuildSnapshot()
			riderID := uuid.New()
			if tc.byRider {
				riderID = b.RiderID
			}

			m.reads.EXPECT().BookingForUpdate(ctx, snap.ID).Return(snap, nil)
			if tc.create != nil {
				m.reviews.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.create)
			}

			uc := commands.NewReviewUseCase(m.uow, clock.Fixed(now))
			got, err := uc.CreateReview(ctx, commands.CreateReviewRequest{BookingID: snap.ID, Rating: 3}, riderID)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, got)
		})
	}

	t.Run("error: booking not found", func(t *testing.T) {
		m := newTxMocks(t)
		id := uuid.New()
		m.reads.EXPECT().BookingForUpdate(ctx, id).Return(nil, notFound())

		uc := commands.NewReviewUseCase(m.uow, clock.Fixed(now))
		_, err := uc.CreateReview(ctx, commands.CreateReviewRequest{BookingID: id, Rating: 3}, uuid.New())

		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
