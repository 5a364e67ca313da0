// Package tui renders the Aura screens in the terminal and forwards user
// input to the view models.
package tui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fastprodman/aura/internal/client/ui/home"
	"github.com/fastprodman/aura/internal/client/ui/login"
	"github.com/fastprodman/aura/internal/client/ui/transfer"
)

type screen uint8

const (
	screenLogin screen = iota
	screenHome
	screenTransfer
)

const toastDuration = 2 * time.Second

type (
	loginStateMsg    login.UIState
	homeStateMsg     home.UIState
	transferStateMsg transfer.UIState
	toastExpiredMsg  struct{ id int }
)

// App is the bubbletea model of the whole client.
type App struct {
	ctx context.Context

	loginVM    *login.ViewModel
	homeVM     *home.ViewModel
	transferVM *transfer.ViewModel

	loginCh    <-chan login.UIState
	homeCh     <-chan home.UIState
	transferCh <-chan transfer.UIState

	screen screen

	loginState    login.UIState
	homeState     home.UIState
	transferState transfer.UIState

	loginForm    form
	transferForm form

	// set while a Reset is pending, so one outcome triggers one toast
	loginResetting    bool
	homeResetting     bool
	transferResetting bool

	toast   string
	toastID int

	width int
}

// NewApp wires the screens to their view models. ctx bounds every
// background operation started by the app.
func NewApp(ctx context.Context, loginVM *login.ViewModel, homeVM *home.ViewModel, transferVM *transfer.ViewModel) *App {
	return &App{
		ctx:        ctx,
		loginVM:    loginVM,
		homeVM:     homeVM,
		transferVM: transferVM,
		loginCh:    loginVM.Watch(ctx),
		homeCh:     homeVM.Watch(ctx),
		transferCh: transferVM.Watch(ctx),
		screen:     screenLogin,
		loginForm: newForm(
			&field{label: "Identifier"},
			&field{label: "Password", masked: true},
		),
		transferForm: newForm(
			&field{label: "Recipient"},
			&field{label: "Amount"},
		),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		wait(a.loginCh, func(s login.UIState) tea.Msg { return loginStateMsg(s) }),
		wait(a.homeCh, func(s home.UIState) tea.Msg { return homeStateMsg(s) }),
		wait(a.transferCh, func(s transfer.UIState) tea.Msg { return transferStateMsg(s) }),
	)
}

// wait delivers the next snapshot from ch as a message. A closed channel
// ends the subscription.
func wait[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}

		return wrap(v)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

		switch a.screen {
		case screenLogin:
			return a, a.updateLoginKeys(msg)
		case screenHome:
			return a, a.updateHomeKeys(msg)
		case screenTransfer:
			return a, a.updateTransferKeys(msg)
		}

	case loginStateMsg:
		a.loginState = login.UIState(msg)
		cmd := a.onLoginState()

		return a, tea.Batch(cmd, wait(a.loginCh, func(s login.UIState) tea.Msg { return loginStateMsg(s) }))

	case homeStateMsg:
		a.homeState = home.UIState(msg)
		cmd := a.onHomeState()

		return a, tea.Batch(cmd, wait(a.homeCh, func(s home.UIState) tea.Msg { return homeStateMsg(s) }))

	case transferStateMsg:
		a.transferState = transfer.UIState(msg)
		cmd := a.onTransferState()

		return a, tea.Batch(cmd, wait(a.transferCh, func(s transfer.UIState) tea.Msg { return transferStateMsg(s) }))

	case toastExpiredMsg:
		if msg.id == a.toastID {
			a.toast = ""
		}

		return a, nil
	}

	return a, nil
}

func (a *App) run(fn func(ctx context.Context)) tea.Cmd {
	ctx := a.ctx

	return func() tea.Msg {
		fn(ctx)
		return nil
	}
}

func (a *App) showToast(text string) tea.Cmd {
	a.toastID++
	a.toast = text
	id := a.toastID

	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

// --- login ---

func (a *App) updateLoginKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		a.loginForm.next()
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		a.loginForm.prev()
		return nil
	case tea.KeyEnter:
		if !a.loginVM.State().LoginEnabled {
			return nil
		}

		return a.run(a.loginVM.Login)
	}

	if a.loginForm.focused().handle(msg) {
		a.loginVM.SetIdentifier(a.loginForm.fields[0].value)
		a.loginVM.SetPassword(a.loginForm.fields[1].value)
	}

	return nil
}

func (a *App) onLoginState() tea.Cmd {
	s := a.loginState

	// The stored identifier arrives asynchronously; mirror it into the form
	// unless the user has started typing.
	if id := a.loginForm.fields[0]; id.value == "" && s.Identifier != "" {
		id.value = s.Identifier
	}

	outcome := s.Granted != nil || s.ErrorMessage != ""
	if !outcome {
		a.loginResetting = false
		return nil
	}

	if a.loginResetting {
		return nil
	}

	a.loginResetting = true

	switch {
	case s.ErrorMessage != "":
		return tea.Batch(a.showToast(s.ErrorMessage), a.run(a.loginVM.Reset))
	case *s.Granted:
		slog.Info("access granted", "identifier", s.Identifier)
		a.screen = screenHome
		a.loginForm.fields[1].value = ""
		a.loginVM.SetPassword("")
		a.homeVM.SetIdentifier(s.Identifier)
		a.transferVM.SetSender(s.Identifier)

		return tea.Batch(a.run(a.homeVM.Refresh), a.run(a.loginVM.Reset))
	default:
		return tea.Batch(a.showToast("access denied"), a.run(a.loginVM.Reset))
	}
}

// --- home ---

func (a *App) updateHomeKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		return a.run(a.homeVM.Refresh)
	case "t":
		a.screen = screenTransfer
		a.transferForm.focus = 0
		return nil
	case "q":
		slog.Info("disconnect")
		return tea.Quit
	}

	return nil
}

func (a *App) onHomeState() tea.Cmd {
	s := a.homeState
	if s.ErrorMessage == "" {
		a.homeResetting = false
		return nil
	}

	if a.homeResetting {
		return nil
	}

	a.homeResetting = true

	return tea.Batch(a.showToast(s.ErrorMessage), a.run(a.homeVM.Reset))
}

// --- transfer ---

func (a *App) updateTransferKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		a.screen = screenHome
		return nil
	case tea.KeyTab, tea.KeyDown:
		a.transferForm.next()
		return nil
	case tea.KeyShiftTab, tea.KeyUp:
		a.transferForm.prev()
		return nil
	case tea.KeyEnter:
		if !a.transferVM.State().TransferEnabled {
			return nil
		}

		return a.run(a.transferVM.Transfer)
	}

	if a.transferForm.focused().handle(msg) {
		a.transferVM.SetRecipient(a.transferForm.fields[0].value)
		a.transferVM.SetAmount(a.transferForm.fields[1].value)
	}

	return nil
}

func (a *App) onTransferState() tea.Cmd {
	s := a.transferState

	outcome := s.Granted != nil || s.ErrorMessage != ""
	if !outcome {
		a.transferResetting = false
		return nil
	}

	if a.transferResetting {
		return nil
	}

	a.transferResetting = true

	switch {
	case s.ErrorMessage != "":
		return tea.Batch(a.showToast(s.ErrorMessage), a.run(a.transferVM.Reset))
	case *s.Granted:
		a.screen = screenHome
		for _, f := range a.transferForm.fields {
			f.value = ""
		}
		a.transferVM.SetRecipient("")
		a.transferVM.SetAmount("")

		return tea.Batch(a.run(a.homeVM.Refresh), a.run(a.transferVM.Reset))
	default:
		return tea.Batch(a.showToast("transfer failed"), a.run(a.transferVM.Reset))
	}
}
