package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestNewProvider(t *testing.T) {
	t.Run("custom config", func(t *testing.T) {
		custom := &Config{App: AppConfig{Name: "custom-otpkit"}}

		var resolved *Config
		app := fx.New(
			NewProvider(custom),
			fx.NopLogger,
			fx.Invoke(func(c *Config) { resolved = c }),
		)

		require.NoError(t, app.Err())
		assert.Same(t, custom, resolved)
	})

	t.Run("loads from environment when nil", func(t *testing.T) {
		t.Setenv("OTPKIT_APP_NAME", "from-env")
		t.Setenv("OTPKIT_OTP_CODE_LENGTH", "8")

		var resolved *Config
		app := fx.New(
			NewProvider(nil),
			fx.NopLogger,
			fx.Invoke(func(c *Config) { resolved = c }),
		)

		require.NoError(t, app.Err())
		assert.Equal(t, "from-env", resolved.App.Name)
		assert.Equal(t, 8, resolved.OTP.CodeLength)
	})
}
