package pgutils

import (
	"context"
	"database/sql"
	"fmt"
)

// TxBeginner is satisfied by *sql.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx runs fn inside a transaction.
// It commits if fn returns nil, otherwise it rolls back and returns fn's
// error unwrapped so callers can match sentinels.
func WithTx(ctx context.Context, db TxBeginner, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil) // default isolation level
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	err = fn(tx)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("rollback after fn error: %v (fn err: %w)", rbErr, err)
		}

		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// Querier is satisfied by both *sql.DB and *sql.Tx, so a repo method can run
// standalone or as part of a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
