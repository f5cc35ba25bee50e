package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/DavesarXKhushal/pyrecycleheat/internal/handlers"
)

type RouterConfig struct {
	HeatCenterHandler *handlers.HeatCenterHandler
	DemandSiteHandler *handlers.DemandSiteHandler
	RouteHandler      *handlers.RouteHandler
	AnalyticsHandler  *handlers.AnalyticsHandler
	ConfigHandler     *handlers.ConfigHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173",
			"http://localhost:8080",
			"http://localhost:8081",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.Use(otelgin.Middleware("pyrecycleheat"))

	router.GET("/health", handlers.HealthCheck)

	// Heat centers
	heatCenters := router.Group("/heat-centers")
	{
		heatCenters.GET("", cfg.HeatCenterHandler.List)
		heatCenters.POST("", cfg.HeatCenterHandler.Create)
		heatCenters.GET("/:id", cfg.HeatCenterHandler.Get)
		heatCenters.PUT("/:id", cfg.HeatCenterHandler.Update)
		heatCenters.DELETE("/:id", cfg.HeatCenterHandler.Delete)
	}

	// Demand sites
	demandSites := router.Group("/demand-sites")
	{
		demandSites.GET("", cfg.DemandSiteHandler.List)
		demandSites.POST("", cfg.DemandSiteHandler.Create)
		demandSites.GET("/:id", cfg.DemandSiteHandler.Get)
		demandSites.PUT("/:id", cfg.DemandSiteHandler.Update)
		demandSites.DELETE("/:id", cfg.DemandSiteHandler.Delete)
	}

	// Routes
	routes := router.Group("/routes")
	{
		routes.GET("", cfg.RouteHandler.List)
		routes.POST("", cfg.RouteHandler.Create)
		routes.GET("/:id", cfg.RouteHandler.Get)
		routes.DELETE("/:id", cfg.RouteHandler.Delete)
	}

	// Analytics
	analytics := router.Group("/analytics")
	{
		analytics.GET("/overview", cfg.AnalyticsHandler.Overview)
		analytics.GET("/heat-center/:id", cfg.AnalyticsHandler.HeatCenter)
		analytics.GET("/demand-site/:id", cfg.AnalyticsHandler.DemandSite)
	}

	// Config
	router.GET("/config", cfg.ConfigHandler.GetMapConfig)
	router.POST("/config", cfg.ConfigHandler.UpdateConfig)

	return router
}
