// Package login holds the state and actions of the login screen.
package login

import (
	"context"
	"log/slog"
	"time"

	"github.com/fastprodman/aura/internal/client/preferences"
	"github.com/fastprodman/aura/internal/client/repository"
	"github.com/fastprodman/aura/internal/client/ui/state"
	"github.com/fastprodman/aura/internal/models"
)

const DefaultResetDelay = 500 * time.Millisecond

// UIState is one snapshot of the login screen. Granted is nil until the
// backend has answered; ErrorMessage is empty unless the last call failed.
type UIState struct {
	Identifier   string
	Password     string
	LoginEnabled bool
	Loading      bool
	Granted      *bool
	ErrorMessage string
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

// New builds the view model and starts following the stored identifier
// until ctx is done.
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

func (vm *ViewModel) State() UIState { return vm.state.Value() }

func (vm *ViewModel) Watch(ctx context.Context) <-chan UIState { return vm.state.Watch(ctx) }

func (vm *ViewModel) SetIdentifier(identifier string) {
	vm.state.Update(func(s UIState) UIState {
		s.Identifier = identifier
		s.LoginEnabled = loginEnabled(s)
		return s
	})
}

func (vm *ViewModel) SetPassword(password string) {
	vm.state.Update(func(s UIState) UIState {
		s.Password = password
		s.LoginEnabled = loginEnabled(s)
		return s
	})
}

func loginEnabled(s UIState) bool {
	return s.Identifier != "" && s.Password != "" && !s.Loading
}

// Login sends the current credentials and folds the answer into the state.
// A granted login also remembers the identifier for the other screens.
func (vm *ViewModel) Login(ctx context.Context) {
	snap := vm.state.Update(func(s UIState) UIState {
		s.Granted = nil
		s.Loading = true
		s.ErrorMessage = ""
		s.LoginEnabled = false
		return s
	})

	conn := vm.repo.Login(ctx, snap.Identifier, snap.Password)

	switch conn.Status() {
	case models.StatusSuccess:
		granted := conn.Data()

		// Stored before Granted is published so the next screen finds it.
		if granted {
			err := vm.prefs.SaveUserInput(ctx, snap.Identifier)
			if err != nil {
				slog.Warn("remember identifier", "error", err)
			}
		}

		vm.state.Update(func(s UIState) UIState {
			s.Granted = &granted
			s.Loading = false
			s.ErrorMessage = ""
			s.LoginEnabled = loginEnabled(s)
			return s
		})

	case models.StatusError:
		vm.state.Update(func(s UIState) UIState {
			s.Granted = nil
			s.Loading = false
			s.ErrorMessage = conn.Message()
			s.LoginEnabled = loginEnabled(s)
			return s
		})

	case models.StatusLoading:
		vm.state.Update(func(s UIState) UIState {
			s.Loading = true
			s.LoginEnabled = false
			return s
		})
	}
}

// Reset clears the outcome of the last attempt once the reset delay has
// passed. It returns early, leaving the state alone, if ctx is done first.
func (vm *ViewModel) Reset(ctx context.Context) {
	if state.Delay(ctx, vm.resetDelay) != nil {
		return
	}

	vm.state.Update(func(s UIState) UIState {
		s.Granted = nil
		s.Loading = false
		s.ErrorMessage = ""
		s.LoginEnabled = loginEnabled(s)
		return s
	})
}
