package queries

import (
	"context"
	"strings"

	"stable-booking/internal/domain/review"
	"stable-booking/internal/domain/stable"
	"stable-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ListStablesRequest struct {
	Search    string
	Location  string
	MinRating *float64
	Sort      string
	OwnerOnly bool
	Lat       *float64
	Lng       *float64
}

type StableListResult struct {
	Mode    stable.Mode
	Stables []stable.Listing
	Horses  []stable.HorseListing
}

type StableQueries interface {
	// List returns stables, or horses for the price sorts. actorID is nil for
	// anonymous callers.
	List(ctx context.Context, req ListStablesRequest, actorID *uuid.UUID) (*StableListResult, error)
}

type ListingReadStore interface {
	ListStables(ctx context.Context, f ListingFilter) ([]stable.Listing, error)
	ListHorses(ctx context.Context, f ListingFilter) ([]stable.HorseListing, error)
	ListReviewSignals(ctx context.Context, f ListingFilter) ([]ReviewSignal, error)
}

type stableQueriesImpl struct {
	store ListingReadStore
}

func NewStableQueries(store ListingReadStore) StableQueries {
	return &stableQueriesImpl{store: store}
}

func (q *stableQueriesImpl) List(ctx context.Context, req ListStablesRequest, actorID *uuid.UUID) (*StableListResult, error) {
	if req.OwnerOnly && actorID == nil {
		return nil, errs.ErrUnauthorized
	}

	filter := ListingFilter{
		Search:   nonEmpty(req.Search),
		Location: nonEmpty(req.Location),
	}
	if req.OwnerOnly {
		filter.OwnerID = actorID
	}

	mode := stable.ParseSortMode(req.Sort)
	if mode.HorseMode() {
		return q.listHorses(ctx, filter, mode, req.MinRating)
	}
	return q.listStables(ctx, filter, mode, req)
}

func (q *stableQueriesImpl) listStables(ctx context.Context, filter ListingFilter, mode stable.SortMode, req ListStablesRequest) (*StableListResult, error) {
	var (
		items   []stable.Listing
		signals []ReviewSignal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = q.store.ListStables(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		signals, err = q.store.ListReviewSignals(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byStable := make(map[uuid.UUID][]review.Signal)
	for _, s := range signals {
		byStable[s.StableID] = append(byStable[s.StableID], review.Signal{Rating: s.Rating, Comment: s.Comment})
	}
	for i := range items {
		items[i].Rating = review.Summarize(byStable[items[i].ID])
	}

	items = stable.FilterStables(items, req.MinRating)

	var origin *stable.Coordinates
	if req.Lat != nil && req.Lng != nil {
		origin = &stable.Coordinates{Lat: *req.Lat, Lng: *req.Lng}
	}
	stable.SortStables(items, mode, origin)

	if items == nil {
		items = []stable.Listing{}
	}
	return &StableListResult{Mode: stable.ModeStables, Stables: items}, nil
}

func (q *stableQueriesImpl) listHorses(ctx context.Context, filter ListingFilter, mode stable.SortMode, minRating *float64) (*StableListResult, error) {
	// Search may match a horse name rather than its stable, so reviews are
	// read for every stable the other filters allow.
	signalFilter := filter
	signalFilter.Search = nil

	var (
		items   []stable.HorseListing
		signals []ReviewSignal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = q.store.ListHorses(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		signals, err = q.store.ListReviewSignals(gctx, signalFilter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byHorse := make(map[uuid.UUID][]review.Signal)
	for _, s := range signals {
		if s.HorseID == nil {
			continue
		}
		byHorse[*s.HorseID] = append(byHorse[*s.HorseID], review.Signal{Rating: s.Rating, Comment: s.Comment})
	}
	for i := range items {
		items[i].Rating = review.Summarize(byHorse[items[i].ID])
	}

	items = stable.FilterHorses(items, minRating)
	stable.SortHorses(items, mode)

	if items == nil {
		items = []stable.HorseListing{}
	}
	return &StableListResult{Mode: stable.ModeHorses, Horses: items}, nil
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
