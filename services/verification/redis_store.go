package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "otpkit:code:"

type redisRecord struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisStore keeps pending codes in redis with a native TTL, so expired
// records vanish without a sweep. PurgeExpired is therefore a no-op.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(destination string) string {
	return redisKeyPrefix + destination
}

func (s *RedisStore) Put(ctx context.Context, destination, code string, ttl time.Duration) error {
	payload, err := json.Marshal(redisRecord{
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
	})
	if err != nil {
		return fmt.Errorf("failed to encode verification code: %w", err)
	}

	if err := s.client.Set(ctx, redisKey(destination), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, destination string) (*Record, error) {
	payload, err := s.client.Get(ctx, redisKey(destination)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to look up verification code: %w", err)
	}

	var stored redisRecord
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode verification code: %w", err)
	}

	return &Record{
		Destination: destination,
		Code:        stored.Code,
		ExpiresAt:   stored.ExpiresAt,
	}, nil
}

func (s *RedisStore) Remove(ctx context.Context, destination string) error {
	if err := s.client.Del(ctx, redisKey(destination)).Err(); err != nil {
		return fmt.Errorf("failed to remove verification code: %w", err)
	}

	return nil
}

func (s *RedisStore) PurgeExpired(_ context.Context) (int64, error) {
	// redis reclaims expired keys itself.
	return 0, nil
}
