package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store/drivers/sqlite"
	"github.com/aussiebroadwan/scheduler/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedBooking(t *testing.T, st store.Store, at time.Time) domain.Booking {
	t.Helper()

	b := domain.Booking{
		ID:              idx.New().String(),
		CandidateName:   "John",
		InterviewerName: "Andy",
		ProposedAt:      at,
		Platform:        domain.PlatformGoogle,
		Status:          domain.BookingPending,
	}
	require.NoError(t, st.Bookings().CreateBooking(context.Background(), b))

	r := domain.InviteResponse{
		ID:             idx.New().String(),
		BookingID:      b.ID,
		RecipientEmail: "john@x.com",
		ResponseStatus: domain.ResponsePending,
	}
	require.NoError(t, st.InviteResponses().CreateInviteResponse(context.Background(), r))
	return b
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestBookingRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Non-UTC input must come back as the same instant.
	loc := time.FixedZone("AEST", 10*60*60)
	at := time.Date(2030, 1, 1, 10, 0, 0, 123, loc)
	b := seedBooking(t, st, at)

	got, err := st.Bookings().GetBookingByID(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, at.Equal(got.ProposedAt))
	require.Equal(t, "John", got.CandidateName)
	require.Equal(t, "Andy", got.InterviewerName)
	require.Equal(t, domain.PlatformGoogle, got.Platform)
	require.Equal(t, domain.BookingPending, got.Status)
	require.False(t, got.CreatedAt.IsZero())

	exists, err := st.Bookings().ExistsAt(ctx, at.UTC())
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = st.Bookings().ExistsAt(ctx, at.Add(time.Nanosecond))
	require.NoError(t, err)
	require.False(t, exists)
}

func TestFarFutureInstantsRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// 2^64ns apart: the same key if instants were stored as int64 UnixNano.
	far := time.Date(2300, 1, 1, 10, 0, 0, 0, time.UTC)
	alias := time.Date(1715, 6, 13, 10, 25, 26, 290448384, time.UTC)

	a := seedBooking(t, st, far)
	b := seedBooking(t, st, alias)

	got, err := st.Bookings().GetBookingByID(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, far.Equal(got.ProposedAt), "read back %s", got.ProposedAt)

	got, err = st.Bookings().GetBookingByID(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, alias.Equal(got.ProposedAt), "read back %s", got.ProposedAt)

	latest := time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)
	exists, err := st.Bookings().ExistsAt(ctx, latest)
	require.NoError(t, err)
	require.False(t, exists)
	seedBooking(t, st, latest)
	exists, err = st.Bookings().ExistsAt(ctx, latest)
	require.NoError(t, err)
	require.True(t, exists)

	r, err := st.InviteResponses().GetInviteResponseByBookingID(ctx, a.ID)
	require.NoError(t, err)
	counter := far.AddDate(1, 0, 0).Add(time.Nanosecond)
	r.ResponseStatus = domain.ResponseProposed
	r.ProposedAt = &counter
	require.NoError(t, st.InviteResponses().UpdateInviteResponse(ctx, r))

	r, err = st.InviteResponses().GetInviteResponseByBookingID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, r.ProposedAt)
	require.True(t, counter.Equal(*r.ProposedAt), "read back %s", *r.ProposedAt)
}

func TestPreEpochInstantRoundTrip(t *testing.T) {
	st := newTestStore(t)

	at := time.Date(1969, 12, 31, 23, 59, 59, 500, time.UTC)
	b := seedBooking(t, st, at)

	got, err := st.Bookings().GetBookingByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.True(t, at.Equal(got.ProposedAt), "read back %s", got.ProposedAt)
}

func TestCreateBookingSameInstantConflicts(t *testing.T) {
	st := newTestStore(t)
	at := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	seedBooking(t, st, at)

	err := st.Bookings().CreateBooking(context.Background(), domain.Booking{
		ID:              idx.New().String(),
		CandidateName:   "Jane",
		InterviewerName: "Andy",
		ProposedAt:      at,
		Platform:        domain.PlatformTeams,
		Status:          domain.BookingPending,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestInviteResponseIsOnePerBooking(t *testing.T) {
	st := newTestStore(t)
	b := seedBooking(t, st, time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC))

	err := st.InviteResponses().CreateInviteResponse(context.Background(), domain.InviteResponse{
		ID:             idx.New().String(),
		BookingID:      b.ID,
		RecipientEmail: "other@x.com",
		ResponseStatus: domain.ResponsePending,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	n, err := st.InviteResponses().CountInviteResponses(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestInviteResponseRequiresBooking(t *testing.T) {
	st := newTestStore(t)

	err := st.InviteResponses().CreateInviteResponse(context.Background(), domain.InviteResponse{
		ID:             idx.New().String(),
		BookingID:      idx.New().String(),
		RecipientEmail: "john@x.com",
		ResponseStatus: domain.ResponsePending,
	})
	require.Error(t, err)
}

func TestUpdateInviteResponse(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	b := seedBooking(t, st, time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC))

	r, err := st.InviteResponses().GetInviteResponseByBookingID(ctx, b.ID)
	require.NoError(t, err)
	require.Nil(t, r.ProposedAt)

	counter := time.Date(2030, 1, 2, 9, 30, 0, 0, time.UTC)
	r.ResponseStatus = domain.ResponseProposed
	r.ProposedAt = &counter
	require.NoError(t, st.InviteResponses().UpdateInviteResponse(ctx, r))

	got, err := st.InviteResponses().GetInviteResponseByBookingID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ResponseProposed, got.ResponseStatus)
	require.NotNil(t, got.ProposedAt)
	require.True(t, counter.Equal(*got.ProposedAt))

	got.ProposedAt = nil
	got.ResponseStatus = domain.ResponseAccepted
	require.NoError(t, st.InviteResponses().UpdateInviteResponse(ctx, got))

	got, err = st.InviteResponses().GetInviteResponseByBookingID(ctx, b.ID)
	require.NoError(t, err)
	require.Nil(t, got.ProposedAt)
}

func TestNotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	missing := idx.New().String()

	_, err := st.Bookings().GetBookingByID(ctx, missing)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.InviteResponses().GetInviteResponseByBookingID(ctx, missing)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Bookings().UpdateBookingStatus(ctx, missing, domain.BookingAccepted), store.ErrNotFound)
	require.ErrorIs(t, st.Bookings().DeleteBooking(ctx, missing), store.ErrNotFound)
	require.ErrorIs(t, st.InviteResponses().DeleteInviteResponseByBookingID(ctx, missing), store.ErrNotFound)
}

func TestDeleteBookingCascades(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	b := seedBooking(t, st, time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, st.Bookings().DeleteBooking(ctx, b.ID))

	_, err := st.InviteResponses().GetInviteResponseByBookingID(ctx, b.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := st.InviteResponses().CountInviteResponses(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestDeleteBookingsBefore(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	old := seedBooking(t, st, base)
	keep := seedBooking(t, st, base.Add(time.Hour))

	n, err := st.Bookings().DeleteBookingsBefore(ctx, base.Add(time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = st.Bookings().GetBookingByID(ctx, old.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Bookings().GetBookingByID(ctx, keep.ID)
	require.NoError(t, err)

	// Cutoff inside the same second only takes the earlier nanoseconds.
	early := seedBooking(t, st, base.Add(2*time.Hour))
	late := seedBooking(t, st, base.Add(2*time.Hour+500*time.Millisecond))

	n, err = st.Bookings().DeleteBookingsBefore(ctx, base.Add(2*time.Hour+time.Millisecond))
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	_, err = st.Bookings().GetBookingByID(ctx, early.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Bookings().GetBookingByID(ctx, late.ID)
	require.NoError(t, err)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	id := idx.New().String()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Bookings().CreateBooking(ctx, domain.Booking{
			ID:              id,
			CandidateName:   "John",
			InterviewerName: "Andy",
			ProposedAt:      at,
			Platform:        domain.PlatformGoogle,
			Status:          domain.BookingPending,
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = st.Bookings().GetBookingByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	exists, err := st.Bookings().ExistsAt(ctx, at)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestNestedTxIsRejected(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Tx(ctx)
		return err
	})
	require.Error(t, err)
}
