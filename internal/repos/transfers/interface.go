package transfers

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

var ErrDuplicateTransfer = errors.New("duplicate transfer")

type Transfer struct {
	ID          uuid.UUID
	Sender      string
	Recipient   string
	AmountMinor int64 // cents
}

type Transfers interface {
	Insert(ctx context.Context, tx *sql.Tx, t Transfer) error
}
