//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"stable-booking/internal/infra"
	"stable-booking/internal/infra/readstore"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"
	"stable-booking/internal/usecase/queries"
	readstoremock "stable-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListingReadStore_ListStables(t *testing.T) {
	ownerID := uuid.New()
	search := "oak"
	filter := queries.ListingFilter{Search: &search, OwnerID: &ownerID}

	t.Run("success: filter is forwarded and coordinates need both axes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockListingQueries(ctrl)
		created := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
		q.EXPECT().
			ListStablesForListing(gomock.Any(), gomock.Nil(), sqlc.ListStablesForListingParams{
				Search:   pgconv.StringToPgtype("oak"),
				Location: pgtype.Text{},
				OwnerID:  pgconv.UUIDToPgtype(ownerID),
			}).
			Return([]sqlc.ListStablesForListingRow{
				{
					ID: uuid.New(), Name: "Oak Hill", Latitude: pgtype.Float8{Float64: 35.3, Valid: true},
					Longitude: pgtype.Float8{Float64: 139.5, Valid: true}, MinPriceCents: 4500, ActiveHorses: 2,
					CreatedAt: pgconv.TimeToPgtype(created),
				},
				{ID: uuid.New(), Name: "Oak Vale", Latitude: pgtype.Float8{Float64: 35.1, Valid: true}},
			}, nil)

		got, err := readstore.NewListingReadStore(q, nil).ListStables(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, got, 2)
		require.NotNil(t, got[0].Coordinates)
		assert.Equal(t, 139.5, got[0].Coordinates.Lng)
		assert.Equal(t, 4500, got[0].MinPriceCents)
		assert.Equal(t, 2, got[0].ActiveHorses)
		assert.True(t, got[0].CreatedAt.Equal(created))
		assert.Nil(t, got[1].Coordinates)
	})

	t.Run("error: db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockListingQueries(ctrl)
		q.EXPECT().ListStablesForListing(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errConnLost)

		_, err := readstore.NewListingReadStore(q, nil).ListStables(context.Background(), filter)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}

func TestListingReadStore_ListHorses(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockListingQueries(ctrl)
	q.EXPECT().ListHorsesForListing(gomock.Any(), gomock.Nil(), sqlc.ListHorsesForListingParams{}).
		Return([]sqlc.ListHorsesForListingRow{
			{ID: uuid.New(), Name: "Biscuit", PricePerHourCents: 6000, AdminTier: pgconv.StringToPgtype("Intermediate"), StableName: "Willow Creek"},
			{ID: uuid.New(), Name: "Pepper", PricePerHourCents: 3000},
		}, nil)

	got, err := readstore.NewListingReadStore(q, nil).ListHorses(context.Background(), queries.ListingFilter{})

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Tier)
	assert.Equal(t, "Intermediate", *got[0].Tier)
	assert.Equal(t, "Willow Creek", got[0].StableName)
	assert.Nil(t, got[1].Tier)
	assert.Equal(t, 3000, got[1].PricePerHourCents)
}

func TestListingReadStore_ListReviewSignals(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := readstoremock.NewMockListingQueries(ctrl)
	stableID, horseID := uuid.New(), uuid.New()
	q.EXPECT().ListReviewSignals(gomock.Any(), gomock.Nil(), gomock.Any()).
		Return([]sqlc.ListReviewSignalsRow{
			{StableID: stableID, HorseID: pgconv.UUIDToPgtype(horseID), Rating: 5, Comment: "Great horses"},
			{StableID: stableID, Rating: 2, Comment: ""},
		}, nil)

	got, err := readstore.NewListingReadStore(q, nil).ListReviewSignals(context.Background(), queries.ListingFilter{})

	require.NoError(t, err)
	want := []queries.ReviewSignal{
		{StableID: stableID, HorseID: &horseID, Rating: 5, Comment: "Great horses"},
		{StableID: stableID, Rating: 2},
	}
	assert.Equal(t, want, got)
}
