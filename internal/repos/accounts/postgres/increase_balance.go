package accounts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/aura/internal/repos/accounts"
)

func (r *accountsRepo) IncreaseBalance(ctx context.Context, tx *sql.Tx, accountID string, amount int64) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE accounts
		SET balance_minor = balance_minor + $2
		WHERE id = $1
	`, accountID, amount)
	if err != nil {
		return fmt.Errorf("increase balance: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return accounts.ErrAccountNotFound
	}

	return nil
}
