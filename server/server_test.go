package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipstream/otpkit/config"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "0"
	return New(cfg, nil)
}

func TestNew(t *testing.T) {
	srv := newTestServer()

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Echo())
	assert.True(t, srv.Echo().HideBanner)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer()

	srv.Get("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	srv.Post("/echo", func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/echo", nil)
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestServer_Group(t *testing.T) {
	srv := newTestServer()

	g := srv.Group("/api")
	g.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
