package preferences

import "context"

var _ UserPreferences = (*Memory)(nil)

// Memory is a process-local UserPreferences, used when no data directory is
// configured and in tests.
type Memory struct {
	value string
	hub   *hub
}

func NewMemory(initial string) *Memory {
	return &Memory{value: initial, hub: newHub()}
}

func (m *Memory) SaveUserInput(_ context.Context, userInput string) error {
	return m.hub.write(userInput, func() error {
		m.value = userInput
		return nil
	})
}

func (m *Memory) UserInput(ctx context.Context) <-chan string {
	return m.hub.subscribe(ctx, func() string { return m.value })
}
