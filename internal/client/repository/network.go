package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fastprodman/aura/internal/client/network"
	"github.com/fastprodman/aura/internal/models"
)

var (
	_ AuraRepository = (*NetworkRepository)(nil)
	_ AuraClient     = (*network.Client)(nil)
)

type NetworkRepository struct {
	client  AuraClient
	latency time.Duration
}

type Option func(*NetworkRepository)

// WithSimulatedLatency delays every call by d. Used in development to make
// loading states visible against a local backend.
func WithSimulatedLatency(d time.Duration) Option {
	return func(r *NetworkRepository) {
		r.latency = d
	}
}

func NewNetwork(client AuraClient, opts ...Option) *NetworkRepository {
	r := &NetworkRepository{client: client}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *NetworkRepository) Login(ctx context.Context, id, password string) models.ServerConnection[bool] {
	err := r.wait(ctx)
	if err != nil {
		return models.Failure[bool](err)
	}

	resp, err := r.client.Login(ctx, models.LoginRequest{ID: id, Password: password})
	if err != nil {
		slog.Debug("login failed", "id", id, "error", err)
		return models.Failure[bool](err)
	}

	slog.Debug("login answered", "id", id, "granted", resp.Granted)

	return models.Success(resp.Granted)
}

func (r *NetworkRepository) GetAccounts(ctx context.Context, id string) models.ServerConnection[[]models.Account] {
	err := r.wait(ctx)
	if err != nil {
		return models.Failure[[]models.Account](err)
	}

	accounts, err := r.client.GetAccounts(ctx, id)
	if err != nil {
		slog.Debug("get accounts failed", "id", id, "error", err)
		return models.Failure[[]models.Account](err)
	}

	slog.Debug("accounts fetched", "id", id, "count", len(accounts))

	return models.Success(accounts)
}

func (r *NetworkRepository) DoTransfer(ctx context.Context, sender, recipient string, amount float64) models.ServerConnection[bool] {
	err := r.wait(ctx)
	if err != nil {
		return models.Failure[bool](err)
	}

	res, err := r.client.DoTransfer(ctx, models.Transfer{Sender: sender, Recipient: recipient, Amount: amount})
	if err != nil {
		slog.Debug("transfer failed", "sender", sender, "recipient", recipient, "error", err)
		return models.Failure[bool](err)
	}

	slog.Debug("transfer answered", "sender", sender, "recipient", recipient, "amount", amount, "result", res.Result)

	return models.Success(res.Result)
}

func (r *NetworkRepository) wait(ctx context.Context) error {
	if r.latency <= 0 {
		return nil
	}

	t := time.NewTimer(r.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("simulated latency: %w", ctx.Err())
	case <-t.C:
		return nil
	}
}
