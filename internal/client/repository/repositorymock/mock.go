// Package repositorymock provides a testify mock of repository.AuraRepository.
package repositorymock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fastprodman/aura/internal/client/repository"
	"github.com/fastprodman/aura/internal/models"
)

var _ repository.AuraRepository = (*Repository)(nil)

type Repository struct {
	mock.Mock
}

func (m *Repository) Login(ctx context.Context, id, password string) models.ServerConnection[bool] {
	args := m.Called(ctx, id, password)
	return args.Get(0).(models.ServerConnection[bool])
}

func (m *Repository) GetAccounts(ctx context.Context, id string) models.ServerConnection[[]models.Account] {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ServerConnection[[]models.Account])
}

func (m *Repository) DoTransfer(ctx context.Context, sender, recipient string, amount float64) models.ServerConnection[bool] {
	args := m.Called(ctx, sender, recipient, amount)
	return args.Get(0).(models.ServerConnection[bool])
}
