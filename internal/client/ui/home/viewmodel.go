// Package home holds the state and actions of the balance screen.
package home

import (
	"context"
	"time"

	"github.com/fastprodman/aura/internal/client/preferences"
	"github.com/fastprodman/aura/internal/client/repository"
	"github.com/fastprodman/aura/internal/client/ui/state"
	"github.com/fastprodman/aura/internal/models"
)

const DefaultResetDelay = 500 * time.Millisecond

type UIState struct {
	Identifier   string
	Accounts     []models.Account
	Loading      bool
	ErrorMessage string
	Balance      float64
}

type ViewModel struct {
	repo       repository.AuraRepository
	prefs      preferences.UserPreferences
	state      *state.Store[UIState]
	resetDelay time.Duration
}

type Option func(*ViewModel)

func WithResetDelay(d time.Duration) Option {
	return func(vm *ViewModel) {
		vm.resetDelay = d
	}
}

func New(ctx context.Context, repo repository.AuraRepository, prefs preferences.UserPreferences, opts ...Option) *ViewModel {
	vm := &ViewModel{
		repo:       repo,
		prefs:      prefs,
		state:      state.NewStore(UIState{}),
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(vm)
	}

	go vm.observeUserInput(ctx)

	return vm
}

func (vm *ViewModel) observeUserInput(ctx context.Context) {
	for stored := range vm.prefs.UserInput(ctx) {
		vm.SetIdentifier(stored)
	}
}

// SetIdentifier points the screen at identifier without waiting for the
// preference stream.
func (vm *ViewModel) SetIdentifier(identifier string) {
	vm.state.Update(func(s UIState) UIState {
		s.Identifier = identifier
		return s
	})
}

func (vm *ViewModel) State() UIState { return vm.state.Value() }

func (vm *ViewModel) Watch(ctx context.Context) <-chan UIState { return vm.state.Watch(ctx) }

// Refresh fetches the accounts of the current identifier and recomputes the
// total balance.
func (vm *ViewModel) Refresh(ctx context.Context) {
	snap := vm.state.Update(func(s UIState) UIState {
		s.Accounts = nil
		s.Loading = true
		s.ErrorMessage = ""
		return s
	})

	conn := vm.repo.GetAccounts(ctx, snap.Identifier)

	switch conn.Status() {
	case models.StatusSuccess:
		accounts := conn.Data()
		vm.state.Update(func(s UIState) UIState {
			s.Accounts = accounts
			s.Loading = false
			s.ErrorMessage = ""
			s.Balance = models.TotalBalance(accounts)
			return s
		})

	case models.StatusError:
		vm.state.Update(func(s UIState) UIState {
			s.Accounts = nil
			s.Loading = false
			s.ErrorMessage = conn.Message()
			return s
		})

	case models.StatusLoading:
		vm.state.Update(func(s UIState) UIState {
			s.Accounts = nil
			s.Loading = true
			s.ErrorMessage = ""
			return s
		})
	}
}

// Reset clears accounts, balance and the last error after the reset delay.
func (vm *ViewModel) Reset(ctx context.Context) {
	if state.Delay(ctx, vm.resetDelay) != nil {
		return
	}

	vm.state.Update(func(s UIState) UIState {
		s.Accounts = nil
		s.Loading = false
		s.ErrorMessage = ""
		s.Balance = 0
		return s
	})
}
