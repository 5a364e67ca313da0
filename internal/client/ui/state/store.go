// Package state holds the single mutable state cell each view model exposes.
//
// A Store keeps one immutable snapshot and replaces it wholesale on every
// Update. Watchers receive snapshots through a buffered channel of size one:
// a slow watcher skips intermediate snapshots and only sees the latest.
package state

import (
	"context"
	"sync"
)

type Store[T any] struct {
	mu       sync.Mutex
	value    T
	watchers map[chan T]struct{}
}

func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{
		value:    initial,
		watchers: make(map[chan T]struct{}),
	}
}

// Value returns the current snapshot.
func (s *Store[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Update replaces the snapshot with fn(current) and notifies watchers.
// fn must not call back into the store.
func (s *Store[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.value = fn(s.value)
	for ch := range s.watchers {
		replace(ch, s.value)
	}

	return s.value
}

// Watch streams the current snapshot followed by every later one until ctx
// is done, at which point the channel is closed.
func (s *Store[T]) Watch(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	s.mu.Lock()
	ch <- s.value
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.watchers, ch)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func replace[T any](ch chan T, v T) {
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
