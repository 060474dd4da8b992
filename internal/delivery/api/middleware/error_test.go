package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storelocator/internal/delivery/api/validator"
	domainerrors "storelocator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type validatedQuery struct {
	Radius float64 `query:"radius" validate:"gt=0"`
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	validationErr := validator.New().Validate(&validatedQuery{})
	require.Error(t, validationErr)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails bool
		wantLogged  bool
	}{
		{
			name:       "app error keeps its status",
			err:        domainerrors.ErrLocationNotFound.WrapMessage("fetch by id"),
			wantStatus: http.StatusNotFound,
			wantCode:   "LOCATION_NOT_FOUND",
		},
		{
			name:       "source unavailable is logged",
			err:        domainerrors.ErrSourceUnavailable.WrapMessage("dial tcp"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SOURCE_UNAVAILABLE",
			wantLogged: true,
		},
		{
			name:        "validation errors carry details",
			err:         validationErr,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: true,
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantLogged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stores", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, body.Error.Message, "database exploded")
			if tt.wantDetails {
				assert.Contains(t, string(body.Error.Details), `"radius"`)
			} else {
				assert.Empty(t, body.Error.Details)
			}
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
