package stale_pending

import (
	"context"
	"time"

	"haven/pkg/logger"
)

type Service interface {
	RemindStalePending(ctx context.Context, olderThan time.Duration) (int, error)
}

// StalePending периодически шлет напоминания по заказам, которые висят в
// pending дольше заданного срока.
type StalePending struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	olderThan time.Duration
}

func NewStalePending(log logger.Logger, service Service, interval, olderThan time.Duration) *StalePending {
	return &StalePending{
		log:       log,
		service:   service,
		interval:  interval,
		olderThan: olderThan,
	}
}

func (s *StalePending) TTL() time.Duration {
	return s.interval
}

func (s *StalePending) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	sent, err := s.service.RemindStalePending(ctxWithTimeout, s.olderThan)

	if sent > 0 {
		s.log.With(
			logger.NewField("reminders", sent),
		).Info("stale pending reminders")
	}

	return err
}

func (s *StalePending) Info() string {
	return "stale pending reminders"
}
