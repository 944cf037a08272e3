// Package otpkit issues and verifies one-time codes for out-of-band
// destination verification (phone numbers, email addresses).
package otpkit

import (
	"github.com/clipstream/otpkit/app"
	"github.com/clipstream/otpkit/config"
)

type App = app.App
type AppBuilder = app.AppBuilder

func New() *AppBuilder {
	return app.NewApp()
}

func LoadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if err := config.LoadConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
