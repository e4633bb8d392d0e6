//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"stable-booking/internal/infra"
	"stable-booking/internal/infra/readstore"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/usecase/queries"
	readstoremock "stable-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLeaderboardReadStore_ListTopRiders(t *testing.T) {
	aiko, ben, chika := uuid.New(), uuid.New(), uuid.New()

	t.Run("success: unscored riders get a tier from their points", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockLeaderboardQueries(ctrl)
		q.EXPECT().ListLeaderboard(gomock.Any(), gomock.Nil(), int32(3)).Return([]sqlc.ListLeaderboardRow{
			{ID: aiko, Name: "Aiko", RankPoints: 1820, TierName: "Advanced", RidesScored: 9},
			{ID: ben, Name: "Ben", RankPoints: 1500, TierName: "", RidesScored: 0},
			{ID: chika, Name: "Chika", RankPoints: 1000, TierName: "", RidesScored: 0},
		}, nil)

		got, err := readstore.NewLeaderboardReadStore(q, nil).ListTopRiders(context.Background(), 3)

		require.NoError(t, err)
		want := []*queries.LeaderboardEntry{
			{RiderID: aiko, Name: "Aiko", RankPoints: 1820, Tier: "Advanced", RidesScored: 9},
			{RiderID: ben, Name: "Ben", RankPoints: 1500, Tier: "Intermediate"},
			{RiderID: chika, Name: "Chika", RankPoints: 1000, Tier: "Beginner"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ListTopRiders() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockLeaderboardQueries(ctrl)
		q.EXPECT().ListLeaderboard(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errConnLost)

		_, err := readstore.NewLeaderboardReadStore(q, nil).ListTopRiders(context.Background(), 50)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure), "got %v", err)
	})
}
