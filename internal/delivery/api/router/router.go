// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storelocator/internal/delivery/api/router/handler"
	"storelocator/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler *handler.HealthHandler
	StoreHandler  *handler.StoreHandler
	Metrics       *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler *handler.HealthHandler
	storeHandler  *handler.StoreHandler
	metrics       *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler: params.HealthHandler,
		storeHandler:  params.StoreHandler,
		metrics:       params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	apiV1 := e.Group("/api/v1")

	storesGroup := apiV1.Group("/stores")
	{
		storesGroup.GET("", r.storeHandler.ListStores)
		storesGroup.GET("/search", r.storeHandler.SearchStores)
		storesGroup.GET("/grouped", r.storeHandler.GroupedStores)
		storesGroup.GET("/nearby", r.storeHandler.NearbyStores)
		storesGroup.DELETE("/cache", r.storeHandler.InvalidateCache)

		storesGroup.GET("/:id", r.storeHandler.GetStore)
		storesGroup.GET("/:id/status", r.storeHandler.GetStoreStatus)
		storesGroup.GET("/:id/schedule", r.storeHandler.GetStoreSchedule)
	}
}
