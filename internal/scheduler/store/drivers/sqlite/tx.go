package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the owning Store keeps the connection.
func (t *txStore) Close() error { return nil }

// Ping is a no-op; an open transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Bookings() store.Bookings               { return &bookingsRepo{q: t.q} }
func (t *txStore) InviteResponses() store.InviteResponses { return &inviteResponsesRepo{q: t.q} }

// ApplyMigrations is a no-op; migrations run on the Store before any tx.
func (t *txStore) ApplyMigrations() error { return nil }
