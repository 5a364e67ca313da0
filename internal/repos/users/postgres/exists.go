package users

import (
	"context"
	"fmt"

	"github.com/fastprodman/aura/internal/infra/pgutils"
	"github.com/fastprodman/aura/internal/repos/users"
)

func (r *usersRepo) Exists(ctx context.Context, q pgutils.Querier, userID string) error {
	var exists bool

	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)
	`, userID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}

	if !exists {
		return users.ErrUserNotFound
	}

	return nil
}
