// Package otphttp exposes the verification engine's boundary contract over
// REST. The engine itself knows nothing about HTTP; these handlers are the
// collaborator that translates its results into status codes.
package otphttp

import (
	"context"
	"net/http"

	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/logging"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Verifier interface {
	RequestCode(ctx context.Context, destination string) error
	Verify(ctx context.Context, destination, candidate string) (bool, error)
	PeekLastIssuedCode() (string, bool)
}

type Handler struct {
	svc    Verifier
	cfg    *config.Config
	logger *logging.Service
}

func NewHandler(svc Verifier, cfg *config.Config, logger *logging.Service) *Handler {
	return &Handler{
		svc:    svc,
		cfg:    cfg,
		logger: logger,
	}
}

type requestCodeRequest struct {
	Destination string `json:"destination"`
}

type verifyRequest struct {
	Destination string `json:"destination"`
	Code        string `json:"code"`
}

func (h *Handler) Register(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	g := e.Group("/verification", middleware...)
	g.POST("/request", h.RequestCode)
	g.POST("/verify", h.Verify)

	if h.cfg.OTP.DevMode {
		g.GET("/last-code", h.LastIssuedCode)
	}
}

// RequestCode returns 202 once the code is stored; delivery is best-effort
// and never reflected in the response.
func (h *Handler) RequestCode(c echo.Context) error {
	var req requestCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "destination is required")
	}

	if err := h.svc.RequestCode(c.Request().Context(), req.Destination); err != nil {
		h.logger.Error("failed to issue verification code",
			zap.Error(err),
			zap.String("destination", req.Destination))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue verification code")
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "sent"})
}

// Verify translates the engine's boolean into 200 or 400. Absent, expired
// and wrong codes are deliberately indistinguishable.
func (h *Handler) Verify(c echo.Context) error {
	var req verifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Destination == "" || req.Code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "destination and code are required")
	}

	ok, err := h.svc.Verify(c.Request().Context(), req.Destination, req.Code)
	if err != nil {
		h.logger.Error("verification lookup failed",
			zap.Error(err),
			zap.String("destination", req.Destination))
		return echo.NewHTTPError(http.StatusInternalServerError, "verification failed")
	}

	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid or expired code")
	}

	return c.JSON(http.StatusOK, map[string]bool{"verified": true})
}

func (h *Handler) LastIssuedCode(c echo.Context) error {
	code, ok := h.svc.PeekLastIssuedCode()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no code issued")
	}

	return c.JSON(http.StatusOK, map[string]string{"code": code})
}
