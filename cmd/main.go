package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/db"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/handlers"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/logger"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/observability"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/repos"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/server"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/services"
	"github.com/DavesarXKhushal/pyrecycleheat/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	dbCfg := db.Config{
		Driver:     utils.GetEnv("DATABASE_DRIVER", "postgres", log),
		Host:       utils.GetEnv("DATABASE_HOST", "localhost", log),
		Port:       utils.GetEnv("DATABASE_PORT", "5432", log),
		User:       utils.GetEnv("DATABASE_USER", "postgres", log),
		Password:   utils.GetEnv("DATABASE_PASSWORD", "postgres", log),
		Name:       utils.GetEnv("DATABASE_NAME", "district_heating", log),
		SqlitePath: utils.GetEnv("DATABASE_SQLITE_PATH", "district_heating.db", log),

		MaxOpenConns: utils.GetEnvAsInt("DATABASE_MAX_OPEN_CONNS", 25, log),
		MaxIdleConns: utils.GetEnvAsInt("DATABASE_MAX_IDLE_CONNS", 5, log),
	}
	port := utils.GetEnv("PORT", "8000", log)

	// Tracing
	shutdownOTel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "pyrecycleheat",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     handlers.APIVersion,
	})
	if shutdownOTel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOTel(ctx)
		}()
	}

	// Database
	dbService, err := db.New(dbCfg, log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	heatCenterRepo := repos.NewHeatCenterRepo(theDB, log)
	demandSiteRepo := repos.NewDemandSiteRepo(theDB, log)
	routeRepo := repos.NewRouteRepo(theDB, log)
	configRepo := repos.NewSystemConfigRepo(theDB, log)

	// Services
	log.Info("Setting up Services from main...")
	heatCenterService := services.NewHeatCenterService(theDB, log, heatCenterRepo, routeRepo)
	demandSiteService := services.NewDemandSiteService(theDB, log, demandSiteRepo, routeRepo)
	routeService := services.NewRouteService(theDB, log, routeRepo, heatCenterRepo, demandSiteRepo)
	analyticsService := services.NewAnalyticsService(theDB, log, heatCenterRepo, demandSiteRepo, routeRepo, heatCenterService, demandSiteService)
	configService := services.NewConfigService(theDB, log, configRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	heatCenterHandler := handlers.NewHeatCenterHandler(log, heatCenterService)
	demandSiteHandler := handlers.NewDemandSiteHandler(log, demandSiteService)
	routeHandler := handlers.NewRouteHandler(log, routeService)
	analyticsHandler := handlers.NewAnalyticsHandler(log, analyticsService)
	configHandler := handlers.NewConfigHandler(log, configService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		HeatCenterHandler: heatCenterHandler,
		DemandSiteHandler: demandSiteHandler,
		RouteHandler:      routeHandler,
		AnalyticsHandler:  analyticsHandler,
		ConfigHandler:     configHandler,
	})

	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
