//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"stable-booking/cmd/bootstrap"
	"stable-booking/internal/pkg/config"
	"stable-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite serves the real application graph over a migrated database.
// Every test and subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbCfg := createDatabase(t, sharedPostgres(t))
	s.DB = pool
	s.Config = config.NewTestConfig()
	s.Config.DB = dbCfg
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

// startApp builds bootstrap.Application with the test pool and config in
// place of the environment-driven ones.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		bootstrap.LoggerModule,
		bootstrap.Application,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			t.Logf("stop application: %v", err)
		}
	})
	return router
}
