package verification

import (
	"context"
	"testing"
	"time"

	"github.com/clipstream/otpkit/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t, &VerificationCode{})
	store := NewGormStore(db)

	err := store.Put(ctx, "+15550001", "123456", time.Minute)
	require.NoError(t, err)

	record, err := store.Get(ctx, "+15550001")
	require.NoError(t, err)
	assert.Equal(t, "+15550001", record.Destination)
	assert.Equal(t, "123456", record.Code)
	assert.True(t, record.ExpiresAt.After(time.Now()))
}

func TestGormStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t, &VerificationCode{})
	store := NewGormStore(db)

	record, err := store.Get(ctx, "+15550001")

	testutils.AssertErrorType(t, ErrCodeNotFound, err)
	assert.Nil(t, record)
}

func TestGormStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t, &VerificationCode{})
	store := NewGormStore(db)

	require.NoError(t, store.Put(ctx, "+15550001", "111111", time.Minute))
	require.NoError(t, store.Put(ctx, "+15550001", "222222", time.Minute))

	record, err := store.Get(ctx, "+15550001")
	require.NoError(t, err)
	assert.Equal(t, "222222", record.Code)

	var count int64
	require.NoError(t, db.Model(&VerificationCode{}).Where("destination = ?", "+15550001").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGormStore_Remove(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t, &VerificationCode{})
	store := NewGormStore(db)

	require.NoError(t, store.Put(ctx, "+15550001", "123456", time.Minute))
	require.NoError(t, store.Remove(ctx, "+15550001"))

	_, err := store.Get(ctx, "+15550001")
	require.ErrorIs(t, err, ErrCodeNotFound)

	require.NoError(t, store.Remove(ctx, "+15550001"))
}

func TestGormStore_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	db := testutils.SetupTestDB(t, &VerificationCode{})
	store := NewGormStore(db)

	require.NoError(t, store.Put(ctx, "+15550001", "111111", -time.Minute))
	require.NoError(t, store.Put(ctx, "+15550002", "222222", time.Minute))

	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	_, err = store.Get(ctx, "+15550001")
	require.ErrorIs(t, err, ErrCodeNotFound)

	_, err = store.Get(ctx, "+15550002")
	require.NoError(t, err)
}
