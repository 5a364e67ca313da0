package accounts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/aura/internal/repos/accounts"
)

// DecreaseBalance never takes a balance below zero; a missing account and
// a short balance both affect no row and are reported as ErrInsufficientFunds.
func (r *accountsRepo) DecreaseBalance(ctx context.Context, tx *sql.Tx, accountID string, amount int64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE accounts
		SET balance_minor = balance_minor - $2
		WHERE id = $1
		  AND balance_minor >= $2
	`, accountID, amount)
	if err != nil {
		return fmt.Errorf("decrease balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return accounts.ErrInsufficientFunds
	}

	return nil
}
