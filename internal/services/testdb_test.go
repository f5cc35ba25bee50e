package services

import (
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/repos"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/types"
)

// newTestDB opens a per-test in-memory sqlite database. The shared cache
// keeps the database alive across the pooled connections gorm opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	handle, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = handle.AutoMigrate(
		&types.HeatCenter{},
		&types.DemandSite{},
		&types.Route{},
		&types.SystemConfig{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return handle
}

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// testEnv wires every service against one database so tests can exercise
// cross-entity behavior (route guards, analytics) without HTTP.
type testEnv struct {
	db          *gorm.DB
	heatCenters HeatCenterService
	demandSites DemandSiteService
	routes      RouteService
	analytics   AnalyticsService
	config      ConfigService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	handle := newTestDB(t)
	log := newTestLogger()
	heatCenterRepo := repos.NewHeatCenterRepo(handle, log)
	demandSiteRepo := repos.NewDemandSiteRepo(handle, log)
	routeRepo := repos.NewRouteRepo(handle, log)
	configRepo := repos.NewSystemConfigRepo(handle, log)

	heatCenters := NewHeatCenterService(handle, log, heatCenterRepo, routeRepo)
	demandSites := NewDemandSiteService(handle, log, demandSiteRepo, routeRepo)
	return &testEnv{
		db:          handle,
		heatCenters: heatCenters,
		demandSites: demandSites,
		routes:      NewRouteService(handle, log, routeRepo, heatCenterRepo, demandSiteRepo),
		analytics:   NewAnalyticsService(handle, log, heatCenterRepo, demandSiteRepo, routeRepo, heatCenters, demandSites),
		config:      NewConfigService(handle, log, configRepo),
	}
}

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }
