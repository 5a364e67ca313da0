package transfers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fastprodman/aura/internal/repos/transfers"
)

var _ transfers.Transfers = (*transfersRepo)(nil)

type transfersRepo struct{ db *sql.DB }

func New(db *sql.DB) *transfersRepo {
	return &transfersRepo{db: db}
}

func (r *transfersRepo) Insert(ctx context.Context, tx *sql.Tx, t transfers.Transfer) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO transfers (id, sender, recipient, amount_minor)
		VALUES ($1, $2, $3, $4)
	`, t.ID, t.Sender, t.Recipient, t.AmountMinor)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return transfers.ErrDuplicateTransfer
			}
		}

		return fmt.Errorf("insert transfer: %w", err)
	}

	return nil
}
