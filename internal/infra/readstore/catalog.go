package readstore

import (
	"context"

	"stable-booking/internal/infra"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetStableByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetStableByIDRow, error)
	GetHorseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHorseByIDRow, error)
	ListActiveHorseIDsByStable(ctx context.Context, db sqlc.DBTX, stableID uuid.UUID) ([]uuid.UUID, error)
}

// CatalogReadStore reads stables and horses for command validation.
type CatalogReadStore struct {
	queries CatalogQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindStable(ctx context.Context, id uuid.UUID) (*shared.StableSnapshot, error) {
	row, err := r.queries.GetStableByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stable not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get stable by id", err)
	}
	return &shared.StableSnapshot{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		Name:       row.Name,
		Location:   row.Location,
		SlotPolicy: row.SlotPolicy,
	}, nil
}

func (r *CatalogReadStore) FindHorse(ctx context.Context, id uuid.UUID) (*shared.HorseSnapshot, error) {
	row, err := r.queries.GetHorseByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("horse not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get horse by id", err)
	}
	return &shared.HorseSnapshot{
		ID:                row.ID,
		StableID:          row.StableID,
		Name:              row.Name,
		PricePerHourCents: int(row.PricePerHourCents),
		IsActive:          row.IsActive,
		AdminTier:         pgconv.StringPtrFromPgtype(row.AdminTier),
	}, nil
}

func (r *CatalogReadStore) ActiveHorseIDs(ctx context.Context, stableID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListActiveHorseIDsByStable(ctx, r.db, stableID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active horses", err)
	}
	return ids, nil
}
