package users

import (
	"context"
	"errors"

	"github.com/fastprodman/aura/internal/infra/pgutils"
)

var ErrUserNotFound = errors.New("user not found")

type Users interface {
	// Exists returns ErrUserNotFound when userID is unknown.
	Exists(ctx context.Context, q pgutils.Querier, userID string) error
	PasswordHash(ctx context.Context, userID string) ([]byte, error)
}
