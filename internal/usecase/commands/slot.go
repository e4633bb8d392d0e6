package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stable-booking/internal/domain/slot"
	"stable-booking/internal/pkg/clock"
	"stable-booking/internal/pkg/errs"
	"stable-booking/internal/pkg/metrics"
	"stable-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const AllHorses = "all"

type ListSlotsRequest struct {
	StableID uuid.UUID
	Date     string
	HorseID  *uuid.UUID
}

type CreateSlotsRequest struct {
	StableID  uuid.UUID
	Date      string
	StartTime time.Time
	EndTime   time.Time
	HorseID   string
	Duration  *int
}

type CreateSlotsResult struct {
	Created int
}

type SlotCommands interface {
	// ListSlots reconciles the stable's slots for the date and returns them.
	ListSlots(ctx context.Context, req ListSlotsRequest) ([]slot.View, error)
	CreateSlots(ctx context.Context, req CreateSlotsRequest, actor Actor) (*CreateSlotsResult, error)
}

type slotUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings SlotSettings
	group    singleflight.Group
	tracer   trace.Tracer
}

func NewSlotUseCase(uow shared.UnitOfWork, clk clock.Clock, settings SlotSettings) SlotCommands {
	return &slotUseCaseImpl{
		uow:      uow,
		clock:    clk,
		settings: settings,
		tracer:   otel.Tracer("stable-booking/usecase/slots"),
	}
}

func (uc *slotUseCaseImpl) ListSlots(ctx context.Context, req ListSlotsRequest) ([]slot.View, error) {
	date, err := slot.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	key := slot.LockKey(req.StableID, date)
	if req.HorseID != nil {
		key += ":" + req.HorseID.String()
	}

	// The shared run must outlive any single caller; each caller still stops
	// waiting when its own request goes away.
	detached := context.WithoutCancel(ctx)
	ch := uc.group.DoChan(key, func() (any, error) {
		return uc.reconcile(detached, req.StableID, date, req.HorseID)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		slog.Debug("slot reconciliation shared with concurrent request", "key", key)
	}

	// Each caller gets its own copy of a shared result.
	views := res.Val.([]slot.View)
	out := make([]slot.View, len(views))
	copy(out, views)
	return out, nil
}

func (uc *slotUseCaseImpl) reconcile(ctx context.Context, stableID uuid.UUID, date slot.Date, horseID *uuid.UUID) ([]slot.View, error) {
	ctx, span := uc.tracer.Start(ctx, "slots.reconcile", trace.WithAttributes(
		attribute.String("stable.id", stableID.String()),
		attribute.String("slot.date", date.String()),
	))
	defer span.End()

	started := time.Now()
	loc := uc.settings.Location

	var (
		views     []slot.View
		purged    int64
		generated int
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		st, err := tx.Reads().StableByID(ctx, stableID)
		if err != nil {
			return notFoundAs(err, errs.ErrStableNotFound)
		}
		policy := uc.settings.policyFor(st)

		if err := tx.Slots().Lock(ctx, tx.DB(), slot.LockKey(stableID, date)); err != nil {
			return err
		}

		purged, err = tx.Slots().DeleteUnbooked(ctx, tx.DB(), stableID, date)
		if err != nil {
			return err
		}

		horses, err := tx.Reads().ActiveHorseIDs(ctx, stableID)
		if err != nil {
			return err
		}

		gen := slot.NewGenerator(policy, loc, uc.settings.WindowDays)
		from, to := gen.Window(date)
		existing, err := tx.Slots().StartsInWindow(ctx, tx.DB(), stableID, from, to)
		if err != nil {
			return err
		}
		generated, err = tx.Slots().InsertCandidates(ctx, tx.DB(), gen.Generate(stableID, date, horses, existing))
		if err != nil {
			return err
		}

		records, err := tx.Slots().ListWithBookings(ctx, tx.DB(), stableID, date, horseID)
		if err != nil {
			return err
		}

		dayStart, dayEnd := date.Bounds(loc)
		live, err := tx.Slots().LiveBookings(ctx, tx.DB(), stableID, dayStart, dayEnd, horseID)
		if err != nil {
			return err
		}

		views = slot.Reconcile(slot.NewWelfareEngine(policy, loc), records, liveStarts(live), uc.clock.Now())
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	metrics.RecordReconcile(purged, generated, time.Since(started))
	span.SetAttributes(
		attribute.Int64("slots.purged", purged),
		attribute.Int("slots.generated", generated),
		attribute.Int("slots.returned", len(views)),
	)
	return views, nil
}

func (uc *slotUseCaseImpl) CreateSlots(ctx context.Context, req CreateSlotsRequest, actor Actor) (*CreateSlotsResult, error) {
	date, err := slot.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, slot.ErrInvalidTimeRange
	}
	if req.Duration != nil {
		slog.Debug("slot duration supplied and ignored", "duration", *req.Duration)
	}

	var created int
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		st, err := tx.Reads().StableByID(ctx, req.StableID)
		if err != nil {
			return notFoundAs(err, errs.ErrStableNotFound)
		}
		if !actor.IsAdmin() && st.OwnerID != actor.ID {
			return errs.ErrForbidden
		}

		horses, err := uc.targetHorses(ctx, tx, req.StableID, req.HorseID)
		if err != nil {
			return err
		}

		if err := tx.Slots().Lock(ctx, tx.DB(), slot.LockKey(req.StableID, date)); err != nil {
			return err
		}

		candidates := make([]slot.Candidate, 0, len(horses))
		for _, h := range horses {
			candidates = append(candidates, slot.Candidate{
				StableID: req.StableID,
				HorseID:  h,
				Date:     date,
				Start:    req.StartTime,
				End:      req.EndTime,
			})
		}
		created, err = tx.Slots().InsertCandidates(ctx, tx.DB(), candidates)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &CreateSlotsResult{Created: created}, nil
}

func (uc *slotUseCaseImpl) targetHorses(ctx context.Context, tx shared.Tx, stableID uuid.UUID, horse string) ([]uuid.UUID, error) {
	if horse == "" || horse == AllHorses {
		return tx.Reads().ActiveHorseIDs(ctx, stableID)
	}

	horseID, err := uuid.Parse(horse)
	if err != nil {
		return nil, fmt.Errorf("%w: horseId must be a UUID or %q", errs.ErrDomainValidation, AllHorses)
	}
	h, err := tx.Reads().HorseByID(ctx, horseID)
	if err != nil {
		return nil, notFoundAs(err, errs.ErrHorseNotFound)
	}
	if h.StableID != stableID {
		return nil, errs.ErrHorseNotFound
	}
	if !h.IsActive {
		return nil, errs.ErrHorseInactive
	}
	return []uuid.UUID{h.ID}, nil
}

func liveStarts(live map[uuid.UUID][]slot.Interval) map[uuid.UUID][]time.Time {
	out := make(map[uuid.UUID][]time.Time, len(live))
	for horseID, ivs := range live {
		starts := make([]time.Time, 0, len(ivs))
		for _, iv := range ivs {
			starts = append(starts, iv.Start)
		}
		out[horseID] = starts
	}
	return out
}
