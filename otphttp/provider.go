package otphttp

import (
	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/middleware/ratelimit"
	"github.com/clipstream/otpkit/server"
	"github.com/clipstream/otpkit/services/logging"
	"github.com/clipstream/otpkit/services/verification"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func NewProvider(svc *verification.Service, cfg *config.Config, logger *logging.Service) *Handler {
	return NewHandler(svc, cfg, logger)
}

func registerRoutes(srv *server.Server, h *Handler, cfg *config.Config) {
	var middleware []echo.MiddlewareFunc

	if cfg.RateLimit.Enabled {
		middleware = append(middleware, ratelimit.Middleware(&ratelimit.Config{
			Rate:   cfg.RateLimit.Rate,
			Period: cfg.RateLimit.Period,
		}))
	}

	h.Register(srv.Echo(), middleware...)
}

var Module = fx.Options(
	fx.Provide(NewProvider),
	fx.Invoke(registerRoutes),
)
