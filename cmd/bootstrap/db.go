package bootstrap

import (
	"context"
	"log/slog"

	"stable-booking/internal/infra/db"
	"stable-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB ties the pool to the application lifecycle; the pool is closed once
// the HTTP server has drained.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		logger.Info("closing database pool",
			"acquired", stat.AcquiredConns(),
			"idle", stat.IdleConns(),
			"total_acquires", stat.AcquireCount())
		pool.Close()
	}))

	return pool, nil
}
