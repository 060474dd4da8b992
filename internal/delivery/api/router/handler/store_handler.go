package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storelocator/internal/delivery/api/response"
	"storelocator/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// StoreHandler holds dependencies for store directory handlers
type StoreHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// SearchRequest represents the query parameters of search and grouped listings
type SearchRequest struct {
	City    string     `query:"city" validate:"max=100"`
	Region  string     `query:"region" validate:"max=100"`
	Text    string     `query:"q" validate:"max=200"`
	OpenNow bool       `query:"open_now"`
	Lat     *float64   `query:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lng     *float64   `query:"lng" validate:"omitempty,gte=-180,lte=180"`
	Sort    string     `query:"sort" validate:"omitempty,sortkey"`
	At      *time.Time `query:"at"`
}

// NearbyRequest represents the query parameters of a radius search
type NearbyRequest struct {
	Lat    *float64   `query:"lat" validate:"required,gte=-90,lte=90"`
	Lng    *float64   `query:"lng" validate:"required,gte=-180,lte=180"`
	Radius *float64   `query:"radius" validate:"required,gte=0,lte=20000000"`
	At     *time.Time `query:"at"`
}

// ListStores handles GET /stores, optionally forcing a refresh from the source
func (h *StoreHandler) ListStores(c echo.Context) error {
	var refresh bool
	if err := echo.QueryParamsBinder(c).Bool("refresh", &refresh).BindError(); err != nil {
		return bindingFailure(c, err)
	}

	locations, err := h.directoryUC.List(c.Request().Context(), refresh)
	if err = response.AcceptStale(c, err); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, locations)
}

// SearchStores handles GET /stores/search
func (h *StoreHandler) SearchStores(c echo.Context) error {
	input, err := h.bindSearch(c)
	if err != nil {
		return err
	}
	if input == nil {
		return nil
	}

	ranked, err := h.directoryUC.Search(c.Request().Context(), input)
	if err = response.AcceptStale(c, err); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, ranked)
}

// GroupedStores handles GET /stores/grouped
func (h *StoreHandler) GroupedStores(c echo.Context) error {
	input, err := h.bindSearch(c)
	if err != nil {
		return err
	}
	if input == nil {
		return nil
	}

	groups, err := h.directoryUC.SearchGrouped(c.Request().Context(), input)
	if err = response.AcceptStale(c, err); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, groups)
}

// NearbyStores handles GET /stores/nearby
func (h *StoreHandler) NearbyStores(c echo.Context) error {
	var req NearbyRequest
	err := echo.QueryParamsBinder(c).
		CustomFunc("lat", optionalFloat("lat", &req.Lat)).
		CustomFunc("lng", optionalFloat("lng", &req.Lng)).
		CustomFunc("radius", optionalFloat("radius", &req.Radius)).
		CustomFunc("at", optionalTime("at", &req.At)).
		BindError()
	if err != nil {
		return bindingFailure(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	ranked, err := h.directoryUC.Nearby(c.Request().Context(), &usecase.NearbyInput{
		Latitude:     *req.Lat,
		Longitude:    *req.Lng,
		RadiusMeters: *req.Radius,
		At:           req.At,
	})
	if err = response.AcceptStale(c, err); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, ranked)
}

// GetStore handles GET /stores/:id
func (h *StoreHandler) GetStore(c echo.Context) error {
	location, err := h.directoryUC.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// GetStoreStatus handles GET /stores/:id/status
func (h *StoreHandler) GetStoreStatus(c echo.Context) error {
	var at *time.Time
	if err := echo.QueryParamsBinder(c).CustomFunc("at", optionalTime("at", &at)).BindError(); err != nil {
		return bindingFailure(c, err)
	}

	status, err := h.directoryUC.StatusOf(c.Request().Context(), c.Param("id"), at)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// GetStoreSchedule handles GET /stores/:id/schedule
func (h *StoreHandler) GetStoreSchedule(c echo.Context) error {
	days, err := h.directoryUC.WeeklySchedule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, days)
}

// InvalidateCache handles DELETE /stores/cache
func (h *StoreHandler) InvalidateCache(c echo.Context) error {
	h.directoryUC.Invalidate(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

// bindSearch returns nil input when a response has already been written.
func (h *StoreHandler) bindSearch(c echo.Context) (*usecase.SearchInput, error) {
	var req SearchRequest
	err := echo.QueryParamsBinder(c).
		String("city", &req.City).
		String("region", &req.Region).
		String("q", &req.Text).
		Bool("open_now", &req.OpenNow).
		CustomFunc("lat", optionalFloat("lat", &req.Lat)).
		CustomFunc("lng", optionalFloat("lng", &req.Lng)).
		String("sort", &req.Sort).
		CustomFunc("at", optionalTime("at", &req.At)).
		BindError()
	if err != nil {
		return nil, bindingFailure(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &usecase.SearchInput{
		City:      req.City,
		Region:    req.Region,
		Text:      req.Text,
		OpenNow:   req.OpenNow,
		Latitude:  req.Lat,
		Longitude: req.Lng,
		Sort:      req.Sort,
		At:        req.At,
	}, nil
}

func optionalFloat(name string, dest **float64) func(values []string) []error {
	return func(values []string) []error {
		value, err := strconv.ParseFloat(values[0], 64)
		if err != nil {
			return []error{echo.NewBindingError(name, values, "failed to bind field value to float64", err)}
		}
		*dest = &value

		return nil
	}
}

func optionalTime(name string, dest **time.Time) func(values []string) []error {
	return func(values []string) []error {
		value, err := time.Parse(time.RFC3339, values[0])
		if err != nil {
			return []error{echo.NewBindingError(name, values, "expected an RFC3339 timestamp", err)}
		}
		*dest = &value

		return nil
	}
}

func bindingFailure(c echo.Context, err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return response.BindingError(c, "INVALID_QUERY", "Invalid value for query parameter "+bindErr.Field)
	}

	return response.BindingError(c, "INVALID_QUERY", "Invalid query parameters")
}
