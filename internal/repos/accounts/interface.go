package accounts

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

type Account struct {
	ID           string
	UserID       string
	Main         bool
	BalanceMinor int64 // cents
}

type Accounts interface {
	// ListByUser returns the user's accounts, main account first, then by id.
	ListByUser(ctx context.Context, userID string) ([]Account, error)
	// LockMain locks the main accounts of the given users FOR UPDATE, always
	// in account id order, and returns them keyed by user id. Users without a
	// main account are absent from the map.
	LockMain(ctx context.Context, tx *sql.Tx, userIDs ...string) (map[string]Account, error)
	IncreaseBalance(ctx context.Context, tx *sql.Tx, accountID string, amount int64) error
	DecreaseBalance(ctx context.Context, tx *sql.Tx, accountID string, amount int64) error
}
