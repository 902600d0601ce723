package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	defaultTxMaxRetries = 3
	defaultTxRetryBase  = 20 * time.Millisecond
)

// TxManager manages database transactions using the context pattern.
// RunInTx called inside another RunInTx callback joins the outer transaction.
type TxManager struct {
	db         DB
	maxRetries uint64
	retryBase  time.Duration
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithRetry sets how many times a transaction aborted by a serialization
// failure or deadlock is re-run, and the base of the exponential backoff.
func WithRetry(maxRetries uint64, base time.Duration) TxOption {
	return func(m *TxManager) {
		m.maxRetries = maxRetries
		if base > 0 {
			m.retryBase = base
		}
	}
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB, opts ...TxOption) *TxManager {
	m := &TxManager{db: db, maxRetries: defaultTxMaxRetries, retryBase: defaultTxRetryBase}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error. Serialization failures
// and deadlocks re-run fn from scratch in a new transaction.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(m.maxRetries, retry.NewExponential(m.retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := m.runOnce(ctx, fn)
		if IsRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
