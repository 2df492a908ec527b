package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/robfig/cron/v3"
)

const (
	DefaultHousekeepingSchedule = "@hourly"
	DefaultBookingRetention     = 90 * 24 * time.Hour
)

// HousekeepingService deletes bookings whose interview is older than the
// retention window. Invite responses go with them by cascade.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Schedule  string
	Retention time.Duration

	Now func() time.Time

	cron *cron.Cron
}

// NewHousekeepingService validates schedule and returns a stopped service.
// Empty schedule and non-positive retention fall back to the defaults.
func NewHousekeepingService(
	st store.Store,
	logger *slog.Logger,
	schedule string,
	retention time.Duration,
) (*HousekeepingService, error) {
	if schedule == "" {
		schedule = DefaultHousekeepingSchedule
	}
	if retention <= 0 {
		retention = DefaultBookingRetention
	}

	s := &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Schedule:  schedule,
		Retention: retention,
		Now:       time.Now,
		cron:      cron.New(),
	}

	if _, err := s.cron.AddFunc(schedule, func() { _, _ = s.Cleanup(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid housekeeping schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs one cleanup immediately and then follows the schedule.
func (s *HousekeepingService) Start() {
	_, _ = s.Cleanup(context.Background())
	s.cron.Start()
	s.Logger.Info("housekeeping service started",
		slog.String("schedule", s.Schedule),
		slog.Duration("retention", s.Retention),
	)
}

// Stop waits for a running cleanup to finish.
func (s *HousekeepingService) Stop() {
	<-s.cron.Stop().Done()
	s.Logger.Info("housekeeping service stopped")
}

// Cleanup deletes every booking proposed before now minus the retention
// window and reports how many were removed.
func (s *HousekeepingService) Cleanup(ctx context.Context) (int64, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	cutoff := now.Add(-s.Retention)

	n, err := s.Store.Bookings().DeleteBookingsBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete expired bookings", slog.Any("error", err))
		return 0, err
	}

	s.Logger.Info("housekeeping cleanup completed",
		slog.Int64("deleted_bookings", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}
