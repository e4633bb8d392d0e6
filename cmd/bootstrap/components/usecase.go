package components

import (
	"stable-booking/internal/domain/booking"
	"stable-booking/internal/domain/slot"
	"stable-booking/internal/pkg/clock"
	"stable-booking/internal/pkg/config"
	"stable-booking/internal/usecase"
	"stable-booking/internal/usecase/commands"
	"stable-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.System,
	fx.Annotate(
		func(cfg config.Config) *booking.HourlyPriceCalculator {
			return booking.NewHourlyPriceCalculator(cfg.Booking.CommissionPercent)
		},
		fx.As(new(booking.PriceCalculator)),
	),
	NewSlotSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSlotUseCase,
		commands.NewBookingUseCase,
		commands.NewScoringUseCase,
		commands.NewReviewUseCase,
		commands.NewHorseUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewLeaderboardQueries,
		queries.NewStableQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewSlotSettings(cfg config.Config) commands.SlotSettings {
	return commands.SlotSettings{
		BasePolicy: slot.DefaultPolicy().WithLeadTime(slot.LeadTime{
			Enabled: cfg.Slot.LeadTimeEnabled,
			Minimum: cfg.Slot.LeadTime,
		}),
		Location:   cfg.Slot.Location(),
		WindowDays: cfg.Slot.GenerationWindow,
	}
}
