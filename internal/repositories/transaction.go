package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// UnitOfWork runs fn against repositories that share one transaction.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Registry) error) error
}

// Beginner is the part of *pgxpool.Pool the TxManager needs.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TxManager struct {
	pool Beginner
}

func NewTxManager(pool Beginner) *TxManager {
	return &TxManager{pool: pool}
}

// Do opens a transaction, gives fn a fresh Factory bound to it and commits when fn succeeds.
func (m *TxManager) Do(ctx context.Context, fn func(repos Registry) error) error {
	return m.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return fn(NewFactory(tx))
	})
}

// RunInTransaction commits when fn returns nil and rolls back on error or panic.
// A panic is re-raised after the rollback.
func (m *TxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		} else if err != nil {
			// The original error matters more than a failed rollback.
			_ = tx.Rollback(context.WithoutCancel(ctx))
		} else {
			err = tx.Commit(ctx)
			if err != nil {
				err = fmt.Errorf("commit transaction: %w", err)
			}
		}
	}()

	err = fn(tx)
	return err
}
