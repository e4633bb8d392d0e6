package readstore

import (
	"context"

	"stable-booking/internal/domain/rating"
	"stable-booking/internal/infra"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/usecase/queries"
)

type LeaderboardQueries interface {
	ListLeaderboard(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListLeaderboardRow, error)
}

type LeaderboardReadStore struct {
	queries LeaderboardQueries
	db      sqlc.DBTX
}

func NewLeaderboardReadStore(queries LeaderboardQueries, db sqlc.DBTX) *LeaderboardReadStore {
	return &LeaderboardReadStore{
		queries: queries,
		db:      db,
	}
}

// ListTopRiders derives the tier from points for riders never scored.
func (r *LeaderboardReadStore) ListTopRiders(ctx context.Context, limit int32) ([]*queries.LeaderboardEntry, error) {
	rows, err := r.queries.ListLeaderboard(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leaderboard", err)
	}

	entries := make([]*queries.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		tier := row.TierName
		if tier == "" {
			tier = rating.TierForPoints(int(row.RankPoints)).String()
		}
		entries = append(entries, &queries.LeaderboardEntry{
			RiderID:     row.ID,
			Name:        row.Name,
			RankPoints:  int(row.RankPoints),
			Tier:        tier,
			RidesScored: int(row.RidesScored),
		})
	}
	return entries, nil
}
