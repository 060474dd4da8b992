package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestGetRequestID_GeneratesOnceAndKeeps(t *testing.T) {
	c, _ := newEchoContext()

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))

	SetRequestID(c, "abc")
	assert.Equal(t, "abc", GetRequestID(c))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Nil(t, GetLogger(context.Background()))
}

func TestMarkStale(t *testing.T) {
	c, rec := newEchoContext()
	assert.False(t, IsStale(c))

	MarkStale(c)

	assert.True(t, IsStale(c))
	assert.Equal(t, "1", rec.Header().Get(HeaderXDirectoryStale))
}
