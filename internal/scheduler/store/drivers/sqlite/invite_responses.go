package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store/drivers/sqlite/gen"
)

type inviteResponsesRepo struct {
	q *gen.Queries
}

func (r *inviteResponsesRepo) CreateInviteResponse(ctx context.Context, ir domain.InviteResponse) error {
	sec, nsec := mapOptionalInstant(ir.ProposedAt)
	err := r.q.CreateInviteResponse(ctx, gen.CreateInviteResponseParams{
		ID:             ir.ID,
		BookingID:      ir.BookingID,
		RecipientEmail: ir.RecipientEmail,
		ResponseStatus: string(ir.ResponseStatus),
		ProposedAtSec:  sec,
		ProposedAtNsec: nsec,
		CreatedAt:      toNanos(stamp(ir.CreatedAt)),
	})
	return mapConstraint(err)
}

func (r *inviteResponsesRepo) GetInviteResponseByBookingID(
	ctx context.Context,
	bookingID string,
) (domain.InviteResponse, error) {
	row, err := r.q.GetInviteResponseByBookingID(ctx, bookingID)
	if err != nil {
		return domain.InviteResponse{}, mapNotFound(err)
	}
	return mapInviteResponse(row), nil
}

func (r *inviteResponsesRepo) UpdateInviteResponse(ctx context.Context, ir domain.InviteResponse) error {
	sec, nsec := mapOptionalInstant(ir.ProposedAt)
	n, err := r.q.UpdateInviteResponse(ctx, gen.UpdateInviteResponseParams{
		ResponseStatus: string(ir.ResponseStatus),
		ProposedAtSec:  sec,
		ProposedAtNsec: nsec,
		UpdatedAt:      toNanos(time.Now()),
		ID:             ir.ID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *inviteResponsesRepo) DeleteInviteResponseByBookingID(ctx context.Context, bookingID string) error {
	n, err := r.q.DeleteInviteResponseByBookingID(ctx, bookingID)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *inviteResponsesRepo) CountInviteResponses(ctx context.Context) (int64, error) {
	return r.q.CountInviteResponses(ctx)
}
