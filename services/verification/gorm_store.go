package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GormStore persists pending codes in a relational database so they survive
// process restarts. It is a drop-in substitute for MemoryStore behind the
// Store contract.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Put(ctx context.Context, destination, code string, ttl time.Duration) error {
	record := &VerificationCode{
		Destination: destination,
		Code:        code,
		ExpiresAt:   time.Now().Add(ttl),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("destination = ?", destination).Delete(&VerificationCode{}).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	return nil
}

func (s *GormStore) Get(ctx context.Context, destination string) (*Record, error) {
	var row VerificationCode
	if err := s.db.WithContext(ctx).Where("destination = ?", destination).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to look up verification code: %w", err)
	}

	return &Record{
		Destination: row.Destination,
		Code:        row.Code,
		ExpiresAt:   row.ExpiresAt,
	}, nil
}

func (s *GormStore) Remove(ctx context.Context, destination string) error {
	if err := s.db.WithContext(ctx).Where("destination = ?", destination).Delete(&VerificationCode{}).Error; err != nil {
		return fmt.Errorf("failed to remove verification code: %w", err)
	}

	return nil
}

func (s *GormStore) PurgeExpired(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&VerificationCode{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired verification codes: %w", result.Error)
	}

	return result.RowsAffected, nil
}
