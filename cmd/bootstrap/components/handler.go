package components

import (
	"stable-booking/internal/handler"
	"stable-booking/internal/handler/api"
	"stable-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewLeaderboardHandler,
		api.NewHorseHandler,
		api.NewStableHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Slots       *api.SlotHandler
	Bookings    *api.BookingHandler
	Reviews     *api.ReviewHandler
	Leaderboard *api.LeaderboardHandler
	Horses      *api.HorseHandler
	Stables     *api.StableHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Slots:       p.Slots,
		Bookings:    p.Bookings,
		Reviews:     p.Reviews,
		Leaderboard: p.Leaderboard,
		Horses:      p.Horses,
		Stables:     p.Stables,
	}
}
