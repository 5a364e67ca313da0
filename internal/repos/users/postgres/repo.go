package users

import (
	"database/sql"

	"github.com/fastprodman/aura/internal/repos/users"
)

var _ users.Users = (*usersRepo)(nil)

type usersRepo struct{ db *sql.DB }

func New(db *sql.DB) *usersRepo {
	return &usersRepo{db: db}
}
