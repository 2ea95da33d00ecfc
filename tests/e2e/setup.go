//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"travelmate/cmd/bootstrap"
	"travelmate/cmd/bootstrap/components"
	"travelmate/internal/infra/memstore"
	"travelmate/internal/pkg/clock"
	"travelmate/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// FixedNow is the clock every e2e app runs on.
var FixedNow = time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// E2E application: the production module graph with a test config
// and a frozen clock. Returns router, store, config and the fx.App.
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *memstore.Store, *fx.App) {
	var router *gin.Engine
	var store *memstore.Store

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			func() config.SearchConfig { return cfg.Search },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		fx.Decorate(func(clock.Clock) clock.Clock { return clock.NewMockClock(FixedNow) }),
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &store),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil || store == nil {
		panic("fx app started without router or store")
	}

	return router, store, app
}

func setupE2EEnvironment(t *testing.T, cfg config.Config) (*gin.Engine, *memstore.Store) {
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	router, store, app := buildE2EApp(cfg)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, store
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  *memstore.Store
	Config config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T, cfg config.Config) {
	router, store := setupE2EEnvironment(t, cfg)
	s.Router = router
	s.Store = store
	s.Config = cfg
	require.NotNil(t, s.Router, "router setup failed")
	require.NotNil(t, s.Store, "store setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T(), config.NewTestConfig())
}

func (s *SharedSuite) SetupTest() {
	s.ResetStore()
}

// ResetStore restores the seeded catalog with fresh id counters.
func (s *SharedSuite) ResetStore() {
	s.Store.Reset()
	memstore.Seed(s.Store)
}
