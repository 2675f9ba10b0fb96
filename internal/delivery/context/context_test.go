package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID_RoundTrip(t *testing.T) {
	c := newEchoContext()

	SetRequestID(c, "req-1")

	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", GetRequestIDFromContext(c.Request().Context()))
}

func TestGetRequestID_FallsBackToRequestContext(t *testing.T) {
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))

	assert.Equal(t, "from-ctx", GetRequestID(c))
}

func TestGetRequestID_MintsWhenMissing(t *testing.T) {
	id := GetRequestID(newEchoContext())

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "x"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Nil(t, GetLogger(context.Background()))
}

func TestPrincipal(t *testing.T) {
	c := newEchoContext()
	assert.Nil(t, GetPrincipal(c))

	principal := &entity.Principal{UserID: uuid.New()}
	SetPrincipal(c, principal)
	assert.Same(t, principal, GetPrincipal(c))
}
