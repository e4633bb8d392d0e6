package bootstrap

import (
	"log/slog"

	"stable-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logSettings),
)

// logSettings records the business knobs a deployment runs with. Secrets and
// connection strings stay out of the log.
func logSettings(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"slot_timezone", cfg.Slot.Location().String(),
		"slot_window_days", cfg.Slot.GenerationWindow,
		"lead_time_enabled", cfg.Slot.LeadTimeEnabled,
		"lead_time", cfg.Slot.LeadTime,
		"commission_percent", cfg.Booking.CommissionPercent,
		"traces_enabled", cfg.Telemetry.TracesEnabled)
}
