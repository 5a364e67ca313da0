package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fastprodman/aura/internal/models"
)

func (a *App) View() string {
	var body string

	switch a.screen {
	case screenLogin:
		body = a.loginView()
	case screenHome:
		body = a.homeView()
	case screenTransfer:
		body = a.transferView()
	}

	parts := []string{boxStyle.Render(body)}
	if a.toast != "" {
		parts = append(parts, toastStyle.Render(a.toast))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (a *App) loginView() string {
	s := a.loginState

	lines := []string{titleStyle.Render("Aura"), ""}
	lines = append(lines, renderForm(a.loginForm)...)
	lines = append(lines, "", renderButton("Login", s.LoginEnabled, s.Loading))
	lines = append(lines, "", helpStyle.Render("tab: next field • enter: login • ctrl+c: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) homeView() string {
	s := a.homeState

	lines := []string{
		titleStyle.Render("Aura"),
		"",
		labelStyle.Render("Welcome " + s.Identifier),
		"",
		labelStyle.Render("Your total balance"),
		balanceStyle.Render(formatAmount(s.Balance)),
		"",
	}

	switch {
	case s.Loading:
		lines = append(lines, loadingStyle.Render("Loading accounts..."))
	case len(s.Accounts) == 0:
		lines = append(lines, labelStyle.Render("No accounts"))
	default:
		for _, acc := range s.Accounts {
			lines = append(lines, accountLine(acc))
		}
	}

	lines = append(lines, "", helpStyle.Render("t: transfer • r: refresh • q: disconnect"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func accountLine(acc models.Account) string {
	line := fmt.Sprintf("%-12s %12s", acc.ID, formatAmount(acc.Balance))
	if acc.Main {
		return mainAccountStyle.Render(line + "  main")
	}

	return line
}

func (a *App) transferView() string {
	s := a.transferState

	lines := []string{
		titleStyle.Render("Transfer"),
		"",
		labelStyle.Render("From " + s.Sender),
		"",
	}
	lines = append(lines, renderForm(a.transferForm)...)
	lines = append(lines, "", renderButton("Transfer", s.TransferEnabled, s.Loading))
	lines = append(lines, "", helpStyle.Render("tab: next field • enter: send • esc: back"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderForm(f form) []string {
	out := make([]string, 0, len(f.fields)*2)

	for i, fld := range f.fields {
		style := inputStyle
		if i == f.focus {
			style = focusedInputStyle
		}

		out = append(out, labelStyle.Render(fld.label), style.Render(fld.display()))
	}

	return out
}

func renderButton(label string, enabled, loading bool) string {
	if loading {
		return loadingStyle.Render("Please wait...")
	}

	if !enabled {
		return disabledButtonStyle.Render(label)
	}

	return buttonStyle.Render(label)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f €", v)
}
