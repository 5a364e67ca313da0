package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/aura/internal/repos/users"
)

func (r *usersRepo) PasswordHash(ctx context.Context, userID string) ([]byte, error) {
	var hash string

	err := r.db.QueryRowContext(ctx, `
		SELECT password_hash
		FROM users
		WHERE id = $1
	`, userID).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}

		return nil, fmt.Errorf("get password hash: %w", err)
	}

	return []byte(hash), nil
}
