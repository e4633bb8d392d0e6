//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"stable-booking/internal/infra/db"
	"stable-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// createDatabase makes a fresh migrated database for one test binary and
// drops it when the test finishes.
func createDatabase(t *testing.T, srv postgresServer) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin := srv.dsn("postgres")

	require.NoError(t, withAdmin(admin, func(ctx context.Context, pool *pgxpool.Pool) error {
		return retry(ctx, 5, func() error {
			_, err := pool.Exec(ctx, "CREATE DATABASE "+name)
			return err
		})
	}), "create database %s", name)

	t.Cleanup(func() {
		err := withAdmin(admin, func(ctx context.Context, pool *pgxpool.Pool) error {
			_, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
			return err
		})
		if err != nil {
			slog.Warn("drop test database", "database", name, "error", err)
		}
	})

	cfg := config.DBConfig{
		Host:     srv.Host,
		Port:     srv.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
		MaxConns: 10,
	}

	pool, err := db.Connect(context.Background(), cfg)
	require.NoError(t, err, "connect to %s", name)
	t.Cleanup(pool.Close)

	require.NoError(t, migrate(pool), "apply migrations")
	return pool, cfg
}

func withAdmin(dsn string, fn func(context.Context, *pgxpool.Pool) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(ctx, pool)
}

// retry backs off linearly; template1 is briefly busy right after startup.
func retry(ctx context.Context, attempts int, fn func() error) error {
	var err error
	for i := range attempts {
		if err = fn(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(i+1) * 500 * time.Millisecond):
		}
	}
	return err
}

// migrate runs every file in migrations/ in name order, the same order the
// atlas directory applies them.
func migrate(pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	slices.Sort(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		body, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// migrationsDir walks up from the package directory to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above " + dir)
		}
		dir = parent
	}
}
