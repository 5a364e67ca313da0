package preferences

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	badger "github.com/dgraph-io/badger/v4"
)

var userInputKey = []byte("user_input")

var _ UserPreferences = (*Store)(nil)

// Store keeps preferences in a Badger database. Badger locks its directory,
// so the store is the only writer and streams are fed in-process.
type Store struct {
	db  *badger.DB
	hub *hub
}

// Open opens (or creates) the preference database under path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preferences: path is required")
	}

	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Store{db: db, hub: newHub()}, nil
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open badger in memory: %w", err)
	}

	return &Store{db: db, hub: newHub()}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func (s *Store) SaveUserInput(_ context.Context, userInput string) error {
	err := s.hub.write(userInput, func() error {
		return s.db.Update(func(txn *badger.Txn) error {
			return txn.Set(userInputKey, []byte(userInput))
		})
	})
	if err != nil {
		return fmt.Errorf("save user input: %w", err)
	}

	return nil
}

func (s *Store) UserInput(ctx context.Context) <-chan string {
	return s.hub.subscribe(ctx, func() string {
		v, err := s.userInput()
		if err != nil {
			slog.Error("preferences read failed", "error", err)
		}

		return v
	})
}

func (s *Store) userInput() (string, error) {
	var out string

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userInputKey)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}

			return err
		}

		return item.Value(func(val []byte) error {
			out = string(val)
			return nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("read user input: %w", err)
	}

	return out, nil
}
