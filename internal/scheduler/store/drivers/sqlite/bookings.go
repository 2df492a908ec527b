package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store/drivers/sqlite/gen"
)

type bookingsRepo struct {
	q *gen.Queries
}

func (r *bookingsRepo) ExistsAt(ctx context.Context, t time.Time) (bool, error) {
	sec, nsec := splitInstant(t)
	n, err := r.q.BookingExistsAt(ctx, gen.BookingExistsAtParams{
		ProposedAtSec:  sec,
		ProposedAtNsec: nsec,
	})
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

func (r *bookingsRepo) CreateBooking(ctx context.Context, b domain.Booking) error {
	sec, nsec := splitInstant(b.ProposedAt)
	err := r.q.CreateBooking(ctx, gen.CreateBookingParams{
		ID:              b.ID,
		CandidateName:   b.CandidateName,
		InterviewerName: b.InterviewerName,
		ProposedAtSec:   sec,
		ProposedAtNsec:  nsec,
		Platform:        string(b.Platform),
		Status:          string(b.Status),
		CreatedAt:       toNanos(stamp(b.CreatedAt)),
	})
	return mapConstraint(err)
}

func (r *bookingsRepo) GetBookingByID(ctx context.Context, id string) (domain.Booking, error) {
	row, err := r.q.GetBookingByID(ctx, id)
	if err != nil {
		return domain.Booking{}, mapNotFound(err)
	}
	return mapBooking(row), nil
}

func (r *bookingsRepo) UpdateBookingStatus(
	ctx context.Context,
	id string,
	status domain.BookingStatus,
) error {
	n, err := r.q.UpdateBookingStatus(ctx, gen.UpdateBookingStatusParams{
		Status:    string(status),
		UpdatedAt: toNanos(time.Now()),
		ID:        id,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *bookingsRepo) DeleteBooking(ctx context.Context, id string) error {
	n, err := r.q.DeleteBooking(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *bookingsRepo) DeleteBookingsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	sec, nsec := splitInstant(cutoff)
	return r.q.DeleteBookingsBefore(ctx, gen.DeleteBookingsBeforeParams{
		ProposedAtSec:  sec,
		ProposedAtNsec: nsec,
	})
}
