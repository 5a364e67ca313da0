package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// field is a single-line text input.
type field struct {
	label  string
	value  string
	masked bool
}

// handle applies an editing key and reports whether the value changed.
func (f *field) handle(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		f.value += string(msg.Runes)
		return true
	case tea.KeySpace:
		f.value += " "
		return true
	case tea.KeyBackspace:
		if f.value == "" {
			return false
		}

		r := []rune(f.value)
		f.value = string(r[:len(r)-1])

		return true
	case tea.KeyCtrlU:
		if f.value == "" {
			return false
		}

		f.value = ""

		return true
	}

	return false
}

func (f *field) display() string {
	if f.masked {
		return strings.Repeat("•", len([]rune(f.value)))
	}

	return f.value
}

// form is an ordered set of fields with one focused at a time.
type form struct {
	fields []*field
	focus  int
}

func newForm(fields ...*field) form {
	return form{fields: fields}
}

func (f *form) next() {
	f.focus = (f.focus + 1) % len(f.fields)
}

func (f *form) prev() {
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
}

func (f *form) focused() *field {
	return f.fields[f.focus]
}
