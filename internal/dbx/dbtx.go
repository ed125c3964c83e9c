// Package dbx provides the relational unit-of-work shared by repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx, and a
// UnitOfWork that runs functions inside a transaction with the transactional
// handle carried on the context.
package dbx

import (
	"context"
	"database/sql"

	"github.com/inkpresscms/inkpress/internal/logging"
)

// DBTX is the subset of database/sql used by our repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type ctxKey struct{}

// UnitOfWork coordinates multi-step writes as one atomic operation. The
// pool handle is owned by the process and shared read-only by all request
// workers.
type UnitOfWork struct {
	db     *sql.DB
	logger logging.Logger
}

// NewUnitOfWork constructs a UnitOfWork over the given pool.
func NewUnitOfWork(db *sql.DB, l logging.Logger) *UnitOfWork {
	return &UnitOfWork{db: db, logger: l.With("module", "dbx")}
}

// Queries returns the non-transactional pool handle.
func (u *UnitOfWork) Queries() DBTX {
	return u.db
}

// QueriesFromContext returns the transaction-scoped handle when ctx derives
// from a Do block, and the plain pool handle otherwise. This lets multi-step
// writes become atomic without threading a transaction object through every
// function signature.
func (u *UnitOfWork) QueriesFromContext(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(ctxKey{}).(*sql.Tx); ok {
		return tx
	}
	return u.db
}

// Do begins a transaction, injects the transactional handle into a derived
// context, and invokes fn. It commits iff fn returns nil; otherwise it rolls
// back and returns fn's error unchanged. A rollback failure is logged, not
// folded into the returned error, so the caller always sees the true failure
// cause. Do never retries; retry policy belongs to the caller.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				u.logger.Error(ctx, "rollback after panic failed", "error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, ctxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			u.logger.Error(ctx, "rollback failed", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}
