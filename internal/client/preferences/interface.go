package preferences

import (
	"context"
	"sync"
)

// UserPreferences persists the identifier last used to log in.
type UserPreferences interface {
	// UserInput streams the stored identifier: the current value first
	// ("" when nothing is stored), then every saved value. Slow readers only
	// see the latest value. The channel is closed when ctx is done.
	UserInput(ctx context.Context) <-chan string
	SaveUserInput(ctx context.Context, userInput string) error
}

// hub fans saved values out to open streams. Holding mu across
// "read current + register" and "write + publish" guarantees a stream never
// misses a write.
type hub struct {
	mu      sync.Mutex
	streams map[chan string]struct{}
}

func newHub() *hub {
	return &hub{streams: make(map[chan string]struct{})}
}

// write runs store and, if it succeeds, publishes v to every stream.
func (h *hub) write(v string, store func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := store()
	if err != nil {
		return err
	}

	for ch := range h.streams {
		offer(ch, v)
	}

	return nil
}

func (h *hub) subscribe(ctx context.Context, current func() string) <-chan string {
	ch := make(chan string, 1)

	h.mu.Lock()
	offer(ch, current())
	h.streams[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()

		h.mu.Lock()
		delete(h.streams, ch)
		close(ch)
		h.mu.Unlock()
	}()

	return ch
}

// offer replaces any unread value in ch with v. ch must have capacity 1 and
// a single sender.
func offer(ch chan string, v string) {
	select {
	case ch <- v:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	ch <- v
}
