//go:build unit

package repository_test

import (
	"context"
	"testing"

	"stable-booking/internal/domain/rating"
	"stable-booking/internal/infra"
	"stable-booking/internal/infra/repository"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	repositorymock "stable-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHorseRepository_UpdateTier(t *testing.T) {
	horseID := uuid.New()
	advanced := rating.TierAdvanced

	tests := []struct {
		name     string
		tier     *rating.Tier
		want     pgtype.Text
		rows     int64
		wantKind infra.RepositoryErrorKind
	}{
		{name: "set tier", tier: &advanced, want: pgtype.Text{String: "Advanced", Valid: true}, rows: 1},
		{name: "clear tier", tier: nil, want: pgtype.Text{}, rows: 1},
		{name: "unknown horse", tier: &advanced, want: pgtype.Text{String: "Advanced", Valid: true}, rows: 0, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockHorseWriteQueries(ctrl)
			q.EXPECT().
				UpdateHorseTier(gomock.Any(), gomock.Nil(), sqlc.UpdateHorseTierParams{ID: horseID, AdminTier: tt.want}).
				Return(tt.rows, nil)

			err := repository.NewHorseRepository(q).UpdateTier(context.Background(), nil, horseID, tt.tier)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
