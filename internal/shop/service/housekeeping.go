package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/loomandfold/loom/internal/shop/store"
)

// HousekeepingService periodically deletes rows nothing will read again:
// pending shops whose owner never finished setup, and cancelled orders
// past retention.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// PendingShopMaxAge is how long a shop may sit pending before it is
	// considered abandoned.
	PendingShopMaxAge time.Duration

	// CancelledOrderRetention is how long cancelled orders are kept.
	CancelledOrderRetention time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:                   store,
		Logger:                  logger,
		Interval:                interval,
		PendingShopMaxAge:       30 * 24 * time.Hour,
		CancelledOrderRetention: 90 * 24 * time.Hour,
		stopCh:                  make(chan struct{}),
		doneCh:                  make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs the actual deletions. Each is independent; a failure
// in one does not stop the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	now := time.Now()

	if n, err := s.Store.Shops().DeleteStalePendingShops(ctx, now.Add(-s.PendingShopMaxAge)); err != nil {
		s.Logger.Error("failed to delete stale pending shops", "error", err)
	} else if n > 0 {
		s.Logger.Info("deleted stale pending shops", "count", n)
	}

	if n, err := s.Store.Orders().DeleteCancelledOrdersBefore(ctx, now.Add(-s.CancelledOrderRetention)); err != nil {
		s.Logger.Error("failed to delete old cancelled orders", "error", err)
	} else if n > 0 {
		s.Logger.Info("deleted old cancelled orders", "count", n)
	}
}
