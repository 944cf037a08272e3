package logging

import (
	"testing"

	"github.com/clipstream/otpkit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewService(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		svc, err := NewService(Config{Level: Info, Format: "json", OutputPath: "stdout"})

		require.NoError(t, err)
		assert.NotNil(t, svc.Logger())
		assert.NotNil(t, svc.Sugar())
	})

	t.Run("console format", func(t *testing.T) {
		svc, err := NewService(Config{Level: Debug, Format: "console", OutputPath: "stdout"})

		require.NoError(t, err)
		assert.NotNil(t, svc.Logger())
	})
}

func TestNewLoggingService(t *testing.T) {
	t.Run("maps the log section", func(t *testing.T) {
		cfg := &config.Config{
			Log: config.LogConfig{Level: "warn", Format: "console", Output: "stdout"},
		}

		svc, err := NewLoggingService(cfg)

		require.NoError(t, err)
		assert.NotNil(t, svc.Logger())
		assert.False(t, svc.Logger().Core().Enabled(zapcore.InfoLevel))
		assert.True(t, svc.Logger().Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("bad output path", func(t *testing.T) {
		cfg := &config.Config{
			Log: config.LogConfig{Level: "info", Format: "json", Output: "/nonexistent-dir/otpkit.log"},
		}

		_, err := NewLoggingService(cfg)

		require.Error(t, err)
	})
}

func TestService_NilSafety(t *testing.T) {
	var svc *Service

	assert.Nil(t, svc.Logger())
	assert.Nil(t, svc.Sugar())
	assert.NoError(t, svc.Sync())

	svc.Debug("debug", zap.String("k", "v"))
	svc.Info("info")
	svc.Warn("warn")
	svc.Error("error")
	svc.Infow("infow", "k", "v")
	svc.Warnw("warnw", "k", "v")
	svc.Errorw("errorw", "k", "v")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warn, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{LogLevel("unknown"), zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLogLevel(tt.level), "level %q", tt.level)
	}
}
