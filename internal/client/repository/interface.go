package repository

import (
	"context"

	"github.com/fastprodman/aura/internal/models"
)

// AuraRepository is what the view models see of the backend. Implementations
// never return Go errors: every failure is folded into the ServerConnection.
type AuraRepository interface {
	Login(ctx context.Context, id, password string) models.ServerConnection[bool]
	GetAccounts(ctx context.Context, id string) models.ServerConnection[[]models.Account]
	DoTransfer(ctx context.Context, sender, recipient string, amount float64) models.ServerConnection[bool]
}

// AuraClient is the transport the network repository delegates to.
// *network.Client satisfies it.
type AuraClient interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	GetAccounts(ctx context.Context, id string) ([]models.Account, error)
	DoTransfer(ctx context.Context, transfer models.Transfer) (models.TransferResult, error)
}
