//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stable-booking/internal/usecase/queries"
	queriesmock "stable-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLeaderboardQueries_Top(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		limit int
		want  int32
	}{
		{name: "default size", limit: 0, want: queries.DefaultLeaderboardSize},
		{name: "explicit", limit: 10, want: 10},
		{name: "capped", limit: 1000, want: queries.MaxListLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockLeaderboardReadStore(ctrl)
			entries := []*queries.LeaderboardEntry{{RiderID: uuid.New(), Name: "Aiko", RankPoints: 1720, Tier: "Advanced"}}
			store.EXPECT().ListTopRiders(ctx, tc.want).Return(entries, nil)

			got, err := queries.NewLeaderboardQueries(store).Top(ctx, tc.limit)

			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}
}
