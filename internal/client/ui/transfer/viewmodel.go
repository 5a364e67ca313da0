// Package transfer holds the state and actions of the transfer screen.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fastprodman/aura/internal/client/preferences"
	"github.com/fastprodman/aura/internal/client/repository"
	"github.com/fastprodman/aura/internal/client/ui/state"
	"github.com/fastprodman/aura/internal/models"
)

const DefaultResetDelay = 500 * time.Millisecond

// UIState is one snapshot of the transfer screen. Amount is kept as typed;
// it is only parsed when the transfer is sent.
type UIState struct {
	Sender          string
	Recipient       string
	Amount          string
	TransferEnabled bool
	Granted         *bool
	Loading         bool
	ErrorMessage    string
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
		vm.SetSender(stored)
	}
}

func (vm *ViewModel) State() UIState { return vm.state.Value() }

func (vm *ViewModel) Watch(ctx context.Context) <-chan UIState { return vm.state.Watch(ctx) }

func (vm *ViewModel) SetSender(sender string) {
	vm.state.Update(func(s UIState) UIState {
		s.Sender = sender
		return s
	})
}

func (vm *ViewModel) SetRecipient(recipient string) {
	vm.state.Update(func(s UIState) UIState {
		s.Recipient = recipient
		s.TransferEnabled = transferEnabled(s)
		return s
	})
}

func (vm *ViewModel) SetAmount(amount string) {
	vm.state.Update(func(s UIState) UIState {
		s.Amount = amount
		s.TransferEnabled = transferEnabled(s)
		return s
	})
}

func transferEnabled(s UIState) bool {
	return s.Recipient != "" && s.Amount != "" && !s.Loading
}

// Transfer sends the current form and folds the answer into the state.
// Amount text the backend would reject is reported without calling it.
func (vm *ViewModel) Transfer(ctx context.Context) {
	snap := vm.state.Update(func(s UIState) UIState {
		s.TransferEnabled = false
		s.Loading = true
		s.ErrorMessage = ""
		s.Granted = nil
		return s
	})

	amount, err := parseAmount(snap.Amount)
	if err != nil {
		slog.Debug("transfer amount rejected", "amount", snap.Amount, "error", err)
		vm.fail(models.ErrInvalidAmount.Error())
		return
	}

	conn := vm.repo.DoTransfer(ctx, snap.Sender, snap.Recipient, amount)

	switch conn.Status() {
	case models.StatusSuccess:
		result := conn.Data()
		slog.Debug("transfer answered", "result", result)
		vm.state.Update(func(s UIState) UIState {
			s.Granted = &result
			s.Loading = false
			s.ErrorMessage = ""
			s.TransferEnabled = transferEnabled(s)
			return s
		})

	case models.StatusError:
		slog.Debug("transfer connection error", "error", conn.Err())
		vm.fail(conn.Message())

	case models.StatusLoading:
		vm.state.Update(func(s UIState) UIState {
			s.TransferEnabled = false
			s.Loading = true
			s.ErrorMessage = ""
			s.Granted = nil
			return s
		})
	}
}

// parseAmount accepts only what the backend would: positive amounts with at
// most two decimals that fit in cents.
func parseAmount(text string) (float64, error) {
	amount, err := models.ParseAmount(text)
	if err != nil {
		return 0, err
	}

	minor, err := models.ToMinor(amount)
	if err != nil {
		return 0, err
	}

	if minor <= 0 {
		return 0, fmt.Errorf("%w: must be positive", models.ErrInvalidAmount)
	}

	return amount, nil
}

func (vm *ViewModel) fail(msg string) {
	vm.state.Update(func(s UIState) UIState {
		s.Granted = nil
		s.Loading = false
		s.ErrorMessage = msg
		s.TransferEnabled = transferEnabled(s)
		return s
	})
}

// Reset clears the outcome of the last transfer after the reset delay. The
// form fields are kept.
func (vm *ViewModel) Reset(ctx context.Context) {
	if state.Delay(ctx, vm.resetDelay) != nil {
		return
	}

	vm.state.Update(func(s UIState) UIState {
		s.Granted = nil
		s.Loading = false
		s.ErrorMessage = ""
		s.TransferEnabled = transferEnabled(s)
		return s
	})
}
