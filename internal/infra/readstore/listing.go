package readstore

import (
	"context"

	"stable-booking/internal/domain/stable"
	"stable-booking/internal/infra"
	sqlc "stable-booking/internal/infra/sqlc/generated"
	"stable-booking/internal/pkg/pgconv"
	"stable-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ListingQueries interface {
	ListStablesForListing(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStablesForListingParams) ([]sqlc.ListStablesForListingRow, error)
	ListHorsesForListing(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHorsesForListingParams) ([]sqlc.ListHorsesForListingRow, error)
	ListReviewSignals(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewSignalsParams) ([]sqlc.ListReviewSignalsRow, error)
}

type ListingReadStore struct {
	queries ListingQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) ListStables(ctx context.Context, f queries.ListingFilter) ([]stable.Listing, error) {
	rows, err := r.queries.ListStablesForListing(ctx, r.db, sqlc.ListStablesForListingParams{
		Search:   pgconv.StringPtrToPgtype(f.Search),
		Location: pgconv.StringPtrToPgtype(f.Location),
		OwnerID:  pgconv.UUIDPtrToPgtype(f.OwnerID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stables", err)
	}

	items := make([]stable.Listing, 0, len(rows))
	for _, row := range rows {
		items = append(items, stable.Listing{
			ID:            row.ID,
			OwnerID:       row.OwnerID,
			Name:          row.Name,
			Location:      row.Location,
			Description:   row.Description,
			Coordinates:   coordinates(row.Latitude, row.Longitude),
			MinPriceCents: int(row.MinPriceCents),
			ActiveHorses:  int(row.ActiveHorses),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *ListingReadStore) ListHorses(ctx context.Context, f queries.ListingFilter) ([]stable.HorseListing, error) {
	rows, err := r.queries.ListHorsesForListing(ctx, r.db, sqlc.ListHorsesForListingParams{
		Search:   pgconv.StringPtrToPgtype(f.Search),
		Location: pgconv.StringPtrToPgtype(f.Location),
		OwnerID:  pgconv.UUIDPtrToPgtype(f.OwnerID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list horses", err)
	}

	items := make([]stable.HorseListing, 0, len(rows))
	for _, row := range rows {
		items = append(items, stable.HorseListing{
			ID:                row.ID,
			StableID:          row.StableID,
			Name:              row.Name,
			Breed:             row.Breed,
			PricePerHourCents: int(row.PricePerHourCents),
			Tier:              pgconv.StringPtrFromPgtype(row.AdminTier),
			StableName:        row.StableName,
			StableLocation:    row.StableLocation,
			CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *ListingReadStore) ListReviewSignals(ctx context.Context, f queries.ListingFilter) ([]queries.ReviewSignal, error) {
	rows, err := r.queries.ListReviewSignals(ctx, r.db, sqlc.ListReviewSignalsParams{
		Search:   pgconv.StringPtrToPgtype(f.Search),
		Location: pgconv.StringPtrToPgtype(f.Location),
		OwnerID:  pgconv.UUIDPtrToPgtype(f.OwnerID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list review signals", err)
	}

	signals := make([]queries.ReviewSignal, 0, len(rows))
	for _, row := range rows {
		signals = append(signals, queries.ReviewSignal{
			StableID: row.StableID,
			HorseID:  pgconv.UUIDPtrFromPgtype(row.HorseID),
			Rating:   int(row.Rating),
			Comment:  row.Comment,
		})
	}
	return signals, nil
}

func coordinates(lat, lng pgtype.Float8) *stable.Coordinates {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &stable.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
}
