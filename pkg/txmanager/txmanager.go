// Package txmanager runs functions inside serializable transactions on a
// metrics-wrapped database handle.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/simplyseat/reservation-service/pkg/dbmetrics"
)

// Postgres error code for serialization conflicts between concurrent
// serializable transactions.
const serializationFailureCode = "40001"

// maxRetries bounds the number of attempts for a serializable transaction.
const maxRetries = 3

// ErrTransaction is returned for transaction lifecycle failures.
var ErrTransaction = errors.New("txmanager: transaction error")

// TransactionManager manages serializable transactions on a *dbmetrics.DB.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a transaction manager.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a serializable transaction. The open
// transaction is placed into the context handed to fn, so repositories called
// within automatically use it. Serialization conflicts are retried up to
// maxRetries times; any error from fn rolls the transaction back and is
// returned unwrapped.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		err := m.run(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTransaction, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == serializationFailureCode
	}
	return false
}
