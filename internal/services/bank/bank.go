// Package bank implements login, account listing and transfers on top of
// the PostgreSQL repos.
package bank

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fastprodman/aura/internal/infra/pgutils"
	"github.com/fastprodman/aura/internal/models"
	"github.com/fastprodman/aura/internal/repos/accounts"
	pgaccounts "github.com/fastprodman/aura/internal/repos/accounts/postgres"
	"github.com/fastprodman/aura/internal/repos/transfers"
	pgtransfers "github.com/fastprodman/aura/internal/repos/transfers/postgres"
	"github.com/fastprodman/aura/internal/repos/users"
	pgusers "github.com/fastprodman/aura/internal/repos/users/postgres"
)

var (
	ErrSameParty     = errors.New("sender and recipient are the same")
	ErrInvalidAmount = errors.New("amount must be positive")

	// errors that make a transfer a refusal rather than a failure
	refusedTransferOn = []error{
		users.ErrUserNotFound,
		accounts.ErrAccountNotFound,
		accounts.ErrInsufficientFunds,
		ErrSameParty,
		ErrInvalidAmount,
	}
)

type Service struct {
	db        *sql.DB
	users     users.Users
	accounts  accounts.Accounts
	transfers transfers.Transfers
	newID     func() uuid.UUID
}

func New(dbx *sql.DB) *Service {
	return &Service{
		db:        dbx,
		users:     pgusers.New(dbx),
		accounts:  pgaccounts.New(dbx),
		transfers: pgtransfers.New(dbx),
		newID:     uuid.New,
	}
}

// Login reports whether password matches the stored hash of userID. An
// unknown user is a refusal, not an error.
func (s *Service) Login(ctx context.Context, userID, password string) (bool, error) {
	hash, err := s.users.PasswordHash(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("login: %w", err)
	}

	err = bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("login: compare hash: %w", err)
	}
}

// GetAccounts lists the accounts of userID, main account first.
func (s *Service) GetAccounts(ctx context.Context, userID string) ([]models.Account, error) {
	err := s.users.Exists(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	list, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	out := make([]models.Account, 0, len(list))
	for _, a := range list {
		out = append(out, models.Account{
			ID:      a.ID,
			Main:    a.Main,
			Balance: models.FromMinor(a.BalanceMinor),
		})
	}

	return out, nil
}

// Transfer moves amountMinor from the sender's main account to the
// recipient's in a single DB transaction:
//
// 1) Ensure both users exist.
// 2) Lock both main accounts (FOR UPDATE, id order).
// 3) Debit sender, credit recipient.
// 4) Insert the transfer record.
//
// Business refusals return false with a nil error.
func (s *Service) Transfer(ctx context.Context, sender, recipient string, amountMinor int64) (bool, error) {
	err := s.transfer(ctx, sender, recipient, amountMinor)
	if err == nil {
		return true, nil
	}

	for _, refusal := range refusedTransferOn {
		if errors.Is(err, refusal) {
			slog.Info("transfer refused", "sender", sender, "recipient", recipient, "reason", err)
			return false, nil
		}
	}

	return false, fmt.Errorf("transfer: %w", err)
}

func (s *Service) transfer(ctx context.Context, sender, recipient string, amountMinor int64) error {
	if amountMinor <= 0 {
		return ErrInvalidAmount
	}

	if sender == recipient {
		return ErrSameParty
	}

	return pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		// 1) Ensure both users exist
		for _, id := range []string{sender, recipient} {
			err := s.users.Exists(ctx, tx, id)
			if err != nil {
				return fmt.Errorf("check user %q: %w", id, err)
			}
		}

		// 2) Lock main accounts
		mains, err := s.accounts.LockMain(ctx, tx, sender, recipient)
		if err != nil {
			return fmt.Errorf("lock main accounts: %w", err)
		}

		from, ok := mains[sender]
		if !ok {
			return fmt.Errorf("sender %q: %w", sender, accounts.ErrAccountNotFound)
		}

		to, ok := mains[recipient]
		if !ok {
			return fmt.Errorf("recipient %q: %w", recipient, accounts.ErrAccountNotFound)
		}

		// 3) Move the money, pre-checking against the locked balance
		if from.BalanceMinor < amountMinor {
			return fmt.Errorf("pre-check decrease: %w", accounts.ErrInsufficientFunds)
		}

		err = s.accounts.DecreaseBalance(ctx, tx, from.ID, amountMinor)
		if err != nil {
			return fmt.Errorf("decrease balance: %w", err)
		}

		err = s.accounts.IncreaseBalance(ctx, tx, to.ID, amountMinor)
		if err != nil {
			return fmt.Errorf("increase balance: %w", err)
		}

		// 4) Insert transfer record
		err = s.transfers.Insert(ctx, tx, transfers.Transfer{
			ID:          s.newID(),
			Sender:      sender,
			Recipient:   recipient,
			AmountMinor: amountMinor,
		})
		if err != nil {
			return fmt.Errorf("insert transfer: %w", err)
		}

		return nil
	})
}
