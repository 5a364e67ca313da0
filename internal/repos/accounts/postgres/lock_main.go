package accounts

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/fastprodman/aura/internal/repos/accounts"
)

func (r *accountsRepo) LockMain(ctx context.Context, tx *sql.Tx, userIDs ...string) (map[string]accounts.Account, error) {
	if len(userIDs) == 0 {
		return map[string]accounts.Account{}, nil
	}

	placeholders := make([]string, len(userIDs))
	args := make([]any, len(userIDs))

	for i, id := range userIDs {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = id
	}

	// ORDER BY is applied before the row locks are taken, so concurrent
	// transfers between the same pair acquire them in the same order.
	rows, err := tx.QueryContext(ctx, `
		SELECT id, user_id, main, balance_minor
		FROM accounts
		WHERE main AND user_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY id
		FOR UPDATE
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("lock main accounts: %w", err)
	}
	//nolint:errcheck
	defer rows.Close()

	list, err := scanAccounts(rows)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]accounts.Account, len(list))
	for _, a := range list {
		byUser[a.UserID] = a
	}

	return byUser, nil
}
