package testutils

import (
	"time"

	"github.com/clipstream/otpkit/config"
)

func GetTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "otpkit-test",
			Env:  "test",
		},
		Server: config.ServerConfig{
			Host: "localhost",
			Port: "0",
		},
		Log: config.LogConfig{
			Level:  "error",
			Format: "json",
			Output: "stdout",
		},
		Database: config.DatabaseConfig{
			Driver:      "sqlite",
			DSN:         ":memory:",
			AutoMigrate: true,
		},
		OTP: config.OTPConfig{
			CodeLength:      6,
			TTL:             5 * time.Minute,
			Store:           "memory",
			DevMode:         false,
			DeliveryTimeout: time.Second,
			MessageTemplate: "Your verification code is %s",
		},
		RateLimit: config.RateLimitConfig{
			Enabled: true,
			Rate:    10,
			Period:  time.Minute,
		},
	}
}
