package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clipstream/otpkit/config"
	"github.com/clipstream/otpkit/services/logging"
	"github.com/clipstream/otpkit/services/notify"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service issues one-time verification codes and checks candidates against
// them. A destination holds at most one pending code; a successful Verify
// consumes it, a failed one leaves it in place until the TTL runs out.
type Service struct {
	config    *config.Config
	store     Store
	generator CodeGenerator
	notifier  notify.Notifier
	recorder  *DevRecorder
	logger    *logging.Service
}

func NewService(cfg *config.Config, store Store, generator CodeGenerator, notifier notify.Notifier, logger *logging.Service) *Service {
	if generator == nil {
		generator = NewRandomGenerator(cfg.OTP.CodeLength)
	}
	if notifier == nil {
		notifier = notify.NewLogNotifier(logger)
	}

	var recorder *DevRecorder
	if cfg.OTP.DevMode {
		recorder = NewDevRecorder()
		logger.Warn("verification dev mode enabled, issued codes are retrievable via PeekLastIssuedCode")
	}

	logger.Info("initializing verification service",
		zap.Int("code_length", cfg.OTP.CodeLength),
		zap.Duration("ttl", cfg.OTP.TTL),
		zap.String("store", cfg.OTP.Store),
		zap.Bool("dev_mode", cfg.OTP.DevMode))

	return &Service{
		config:    cfg,
		store:     store,
		generator: generator,
		notifier:  notifier,
		recorder:  recorder,
		logger:    logger,
	}
}

// RequestCode issues a fresh code for the destination, replacing any pending
// one, and dispatches delivery in the background. The returned error covers
// generator and store faults only; delivery failures never surface here.
func (s *Service) RequestCode(ctx context.Context, destination string) error {
	code, err := s.generator.Generate()
	if err != nil {
		s.logger.Error("failed to generate verification code",
			zap.Error(err),
			zap.String("destination", destination))
		return err
	}

	if err := s.store.Put(ctx, destination, code, s.config.OTP.TTL); err != nil {
		s.logger.Error("failed to store verification code",
			zap.Error(err),
			zap.String("destination", destination))
		return err
	}

	if s.recorder != nil {
		s.recorder.Record(code)
	}

	s.logger.Info("verification code issued",
		zap.String("destination", destination),
		zap.Duration("ttl", s.config.OTP.TTL))

	go s.deliver(destination, code)

	return nil
}

// deliver runs detached from the request that issued the code. Whatever the
// notifier does - error, timeout, panic - the issuance has already succeeded.
func (s *Service) deliver(destination, code string) {
	attemptID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("notifier panicked during delivery",
				zap.String("destination", destination),
				zap.String("attempt_id", attemptID),
				zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.OTP.DeliveryTimeout)
	defer cancel()

	message := fmt.Sprintf(s.config.OTP.MessageTemplate, code)

	if err := s.notifier.Deliver(ctx, destination, message); err != nil {
		s.logger.Warn("verification code delivery failed",
			zap.Error(err),
			zap.String("destination", destination),
			zap.String("attempt_id", attemptID))
		return
	}

	s.logger.Info("verification code delivered",
		zap.String("destination", destination),
		zap.String("attempt_id", attemptID))
}

// Verify reports whether candidate matches the pending code for destination.
// Absent, expired and mismatched codes all yield false so callers cannot
// tell which destinations have codes pending. A match consumes the record;
// a mismatch leaves it for another attempt within the TTL.
func (s *Service) Verify(ctx context.Context, destination, candidate string) (bool, error) {
	record, err := s.store.Get(ctx, destination)
	if err != nil {
		if errors.Is(err, ErrCodeNotFound) {
			s.logger.Debug("verification attempted with no pending code",
				zap.String("destination", destination))
			return false, nil
		}
		return false, err
	}

	if record.Expired(time.Now()) {
		if err := s.store.Remove(ctx, destination); err != nil {
			s.logger.Warn("failed to remove expired verification code",
				zap.Error(err),
				zap.String("destination", destination))
		}
		s.logger.Debug("verification attempted with expired code",
			zap.String("destination", destination))
		return false, nil
	}

	if record.Code != candidate {
		s.logger.Debug("verification code mismatch",
			zap.String("destination", destination))
		return false, nil
	}

	if err := s.store.Remove(ctx, destination); err != nil {
		return false, fmt.Errorf("failed to consume verification code: %w", err)
	}

	s.logger.Info("verification succeeded",
		zap.String("destination", destination))

	return true, nil
}

// PeekLastIssuedCode exposes the most recently issued code, process-wide,
// when dev mode is enabled. With dev mode off it always reports absent.
func (s *Service) PeekLastIssuedCode() (string, bool) {
	if s.recorder == nil {
		return "", false
	}
	return s.recorder.LastCode()
}
