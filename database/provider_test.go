package database

import (
	"testing"
	"time"

	"github.com/clipstream/otpkit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testModel struct {
	ID        uint `gorm:"primarykey"`
	Name      string
	CreatedAt time.Time
}

func TestProvideDatabase(t *testing.T) {
	t.Run("sqlite in-memory", func(t *testing.T) {
		cfg := config.Config{}
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ":memory:"
		cfg.Database.AutoMigrate = true

		db, err := ProvideDatabase(cfg, WithModels(&testModel{}), nil)

		require.NoError(t, err)
		require.NotNil(t, db)
		assert.True(t, db.Migrator().HasTable(&testModel{}))
	})

	t.Run("no automigrate", func(t *testing.T) {
		cfg := config.Config{}
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ":memory:"
		cfg.Database.AutoMigrate = false

		db, err := ProvideDatabase(cfg, WithModels(&testModel{}), nil)

		require.NoError(t, err)
		assert.False(t, db.Migrator().HasTable(&testModel{}))
	})

	t.Run("unsupported driver", func(t *testing.T) {
		cfg := config.Config{}
		cfg.Database.Driver = "oracle"

		db, err := ProvideDatabase(cfg, nil, nil)

		require.Error(t, err)
		assert.Nil(t, db)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})
}
