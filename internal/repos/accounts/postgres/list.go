package accounts

import (
	"context"
	"fmt"

	"github.com/fastprodman/aura/internal/repos/accounts"
)

func (r *accountsRepo) ListByUser(ctx context.Context, userID string) ([]accounts.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, main, balance_minor
		FROM accounts
		WHERE user_id = $1
		ORDER BY main DESC, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	//nolint:errcheck
	defer rows.Close()

	return scanAccounts(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanAccounts(rows rowScanner) ([]accounts.Account, error) {
	out := make([]accounts.Account, 0, 2)

	for rows.Next() {
		var a accounts.Account

		err := rows.Scan(&a.ID, &a.UserID, &a.Main, &a.BalanceMinor)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		out = append(out, a)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return out, nil
}
