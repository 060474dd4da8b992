package handler

import (
	"net/http"
	"time"

	"storelocator/internal/delivery/api/response"
	"storelocator/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Cache service.DirectoryCache
}

// HealthHandler reports liveness together with the directory cache state
type HealthHandler struct {
	cache service.DirectoryCache
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{cache: params.Cache}
}

// HealthStatus is the payload of GET /health
type HealthStatus struct {
	Status    string           `json:"status"`
	Directory *DirectoryHealth `json:"directory"`
}

// DirectoryHealth describes the cached directory
type DirectoryHealth struct {
	Loaded      bool       `json:"loaded"`
	Locations   int        `json:"locations"`
	RefreshedAt *time.Time `json:"refreshedAt,omitempty"`
}

// HealthCheck answers 200 as long as the process serves requests; an empty
// cache is reported but does not fail the check.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	snapshot := h.cache.Snapshot()

	directory := &DirectoryHealth{
		Loaded:    snapshot.Loaded,
		Locations: len(snapshot.Locations),
	}
	if !snapshot.RefreshedAt.IsZero() {
		refreshedAt := snapshot.RefreshedAt
		directory.RefreshedAt = &refreshedAt
	}

	return response.Success(c, http.StatusOK, HealthStatus{
		Status:    "ok",
		Directory: directory,
	})
}
