package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/logging"
	"github.com/clipstream/otpkit/services/verification"
	"go.uber.org/fx"
)

type App struct {
	fx           *fx.App
	config       *config.Config
	logger       *logging.Service
	verification *verification.Service
}

func (a *App) Start(ctx context.Context) error {
	return a.fx.Start(ctx)
}

func (a *App) Run() {
	if err := a.Start(context.Background()); err != nil {
		a.logger.Fatal("failed to start application")
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	a.logger.Info("received shutdown signal, stopping gracefully")

	a.Stop()
}

func (a *App) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.fx.Stop(ctx); err != nil {
		a.logger.Error("failed to stop application gracefully")
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Logger() *logging.Service {
	return a.logger
}

// Verification returns the engine for callers embedding otpkit as a library
// rather than running the HTTP surface.
func (a *App) Verification() *verification.Service {
	return a.verification
}
