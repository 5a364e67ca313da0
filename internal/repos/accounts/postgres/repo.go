package accounts

import (
	"database/sql"

	"github.com/fastprodman/aura/internal/repos/accounts"
)

var _ accounts.Accounts = (*accountsRepo)(nil)

type accountsRepo struct{ db *sql.DB }

func New(db *sql.DB) *accountsRepo {
	return &accountsRepo{db: db}
}
