package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the drivers. The
// repositories hang off it so that a Tx exposes exactly the same surface and
// callers cannot open a transaction inside a transaction by accident.
type Store interface {
	Bookings() Bookings
	InviteResponses() InviteResponses

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Bookings interface {
	// ExistsAt reports whether any booking occupies exactly instant t.
	ExistsAt(ctx context.Context, t time.Time) (bool, error)

	// CreateBooking inserts b. A booking already holding b.ProposedAt yields
	// ErrAlreadyExists.
	CreateBooking(ctx context.Context, b domain.Booking) error

	GetBookingByID(ctx context.Context, id string) (domain.Booking, error)

	// UpdateBookingStatus sets the status and bumps updated_at.
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error

	// DeleteBooking removes the booking and, by cascade, its invite response.
	DeleteBooking(ctx context.Context, id string) error

	// DeleteBookingsBefore removes every booking proposed before cutoff and
	// returns how many went.
	DeleteBookingsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type InviteResponses interface {
	// CreateInviteResponse inserts r. A second response for the same booking
	// yields ErrAlreadyExists.
	CreateInviteResponse(ctx context.Context, r domain.InviteResponse) error

	GetInviteResponseByBookingID(ctx context.Context, bookingID string) (domain.InviteResponse, error)

	// UpdateInviteResponse overwrites response_status and proposed_at.
	UpdateInviteResponse(ctx context.Context, r domain.InviteResponse) error

	DeleteInviteResponseByBookingID(ctx context.Context, bookingID string) error

	// CountInviteResponses returns the number of stored invite responses.
	CountInviteResponses(ctx context.Context) (int64, error)
}
