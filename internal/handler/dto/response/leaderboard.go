package response

import (
	"stable-booking/internal/usecase/commands"
	"stable-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LeaderboardEntryResponse struct {
	RiderID     uuid.UUID `json:"riderId"`
	Name        string    `json:"name"`
	RankPoints  int       `json:"rankPoints"`
	Tier        string    `json:"tier"`
	RidesScored int       `json:"ridesScored"`
}

type ScoreRideResponse struct {
	RiderPointsChange int    `json:"riderPointsChange"`
	NewRiderPoints    int    `json:"newRiderPoints"`
	RiderTier         string `json:"riderTier"`
}

func FromLeaderboard(entries []*queries.LeaderboardEntry) ([]LeaderboardEntryResponse, error) {
	out := make([]LeaderboardEntryResponse, 0, len(entries))
	if err := copier.Copy(&out, entries); err != nil {
		return nil, err
	}
	return out, nil
}

func FromScoreRideResult(r *commands.ScoreRideResult) *ScoreRideResponse {
	return &ScoreRideResponse{
		RiderPointsChange: r.RiderPointsChange,
		NewRiderPoints:    r.NewRiderPoints,
		RiderTier:         r.RiderTier,
	}
}
