package queries

import (
	"context"
)

const DefaultLeaderboardSize = 50

type LeaderboardQueries interface {
	Top(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
}

type LeaderboardReadStore interface {
	ListTopRiders(ctx context.Context, limit int32) ([]*LeaderboardEntry, error)
}

type leaderboardQueriesImpl struct {
	store LeaderboardReadStore
}

func NewLeaderboardQueries(store LeaderboardReadStore) LeaderboardQueries {
	return &leaderboardQueriesImpl{store: store}
}

func (q *leaderboardQueriesImpl) Top(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return q.store.ListTopRiders(ctx, int32(limit))
}
