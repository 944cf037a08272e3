package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func doRequest(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_LimitsAfterRate(t *testing.T) {
	e := echo.New()
	e.POST("/limited", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, Middleware(&Config{Rate: 3, Period: time.Minute}))

	for i := 0; i < 3; i++ {
		rec := doRequest(e)
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := doRequest(e)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestMiddleware_SetsHeaders(t *testing.T) {
	e := echo.New()
	e.POST("/limited", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, Middleware(&Config{Rate: 5, Period: time.Minute}))

	rec := doRequest(e)

	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestMiddleware_CustomKeyGenerator(t *testing.T) {
	e := echo.New()
	e.POST("/limited", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, Middleware(&Config{
		Rate:   1,
		Period: time.Minute,
		KeyGenerator: func(c echo.Context) string {
			return "destination:" + c.QueryParam("destination")
		},
	}))

	req := httptest.NewRequest(http.MethodPost, "/limited?destination=a", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/limited?destination=a", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/limited?destination=b", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "different destinations get separate windows")
}
