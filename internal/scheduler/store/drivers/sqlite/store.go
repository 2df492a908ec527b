package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store/drivers/sqlite/gen"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

// NewStore opens the database at dsn. ":memory:" gives a private in-memory
// database that lives as long as the Store.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite has a single writer; one connection also keeps ":memory:"
	// databases alive between calls.
	db.SetMaxOpenConns(1)

	// Enforce FKs so invite responses cascade with their booking.
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after Commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Bookings() store.Bookings               { return &bookingsRepo{q: s.q} }
func (s *Store) InviteResponses() store.InviteResponses { return &inviteResponsesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns UNIQUE and PRIMARY KEY violations into
// store.ErrAlreadyExists. The driver error stays in the chain.
func mapConstraint(err error) error {
	var se *msqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return errors.Join(store.ErrAlreadyExists, err)
		case sqlite3.SQLITE_CONSTRAINT:
			// Extended codes disabled; fall back to the message.
			if strings.Contains(se.Error(), "UNIQUE constraint failed") {
				return errors.Join(store.ErrAlreadyExists, err)
			}
		}
	}
	return err
}

// toNanos and fromNanos are for server-side stamps (created_at, updated_at).
func toNanos(t time.Time) int64 { return t.UTC().UnixNano() }

func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }

// splitInstant breaks t into unix seconds and a nanosecond remainder in
// [0, 1e9). Unlike UnixNano this does not overflow outside 1678..2262.
func splitInstant(t time.Time) (sec, nsec int64) {
	t = t.UTC()
	return t.Unix(), int64(t.Nanosecond())
}

func joinInstant(sec, nsec int64) time.Time { return time.Unix(sec, nsec).UTC() }

func mapOptionalInstant(t *time.Time) (sql.NullInt64, sql.NullInt64) {
	if t == nil {
		return sql.NullInt64{}, sql.NullInt64{}
	}
	sec, nsec := splitInstant(*t)
	return sql.NullInt64{Int64: sec, Valid: true}, sql.NullInt64{Int64: nsec, Valid: true}
}

func mapNullInstantPtr(sec, nsec sql.NullInt64) *time.Time {
	if !sec.Valid {
		return nil
	}
	t := joinInstant(sec.Int64, nsec.Int64)
	return &t
}

func mapBooking(row gen.Booking) domain.Booking {
	return domain.Booking{
		ID:              row.ID,
		CandidateName:   row.CandidateName,
		InterviewerName: row.InterviewerName,
		ProposedAt:      joinInstant(row.ProposedAtSec, row.ProposedAtNsec),
		Platform:        domain.Platform(row.Platform),
		Status:          domain.BookingStatus(row.Status),
		CreatedAt:       fromNanos(row.CreatedAt),
		UpdatedAt:       fromNanos(row.UpdatedAt),
	}
}

func mapInviteResponse(row gen.InviteResponse) domain.InviteResponse {
	return domain.InviteResponse{
		ID:             row.ID,
		BookingID:      row.BookingID,
		RecipientEmail: row.RecipientEmail,
		ResponseStatus: domain.ResponseStatus(row.ResponseStatus),
		ProposedAt:     mapNullInstantPtr(row.ProposedAtSec, row.ProposedAtNsec),
		CreatedAt:      fromNanos(row.CreatedAt),
		UpdatedAt:      fromNanos(row.UpdatedAt),
	}
}

// stamp returns t, or now when t is zero.
func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
