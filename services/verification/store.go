package verification

import (
	"context"
	"errors"
	"time"
)

var ErrCodeNotFound = errors.New("verification code not found")

// Record is a single pending verification code. Records are immutable once
// stored; a new request for the same destination replaces the old record.
type Record struct {
	Destination string
	Code        string
	ExpiresAt   time.Time
}

func (r *Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

// Store maps a destination to its single pending code. Implementations must
// make each single-key operation atomic. Expiry is enforced by the engine at
// verify time; backends with native TTLs (redis) may already report expired
// entries as absent, which the engine treats the same way.
type Store interface {
	Put(ctx context.Context, destination, code string, ttl time.Duration) error
	Get(ctx context.Context, destination string) (*Record, error)
	Remove(ctx context.Context, destination string) error

	// PurgeExpired removes every expired record and reports how many were
	// deleted. It exists for operators; nothing in the engine schedules it.
	PurgeExpired(ctx context.Context) (int64, error)
}
