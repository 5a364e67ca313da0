// Command aura is the terminal banking client.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/fastprodman/aura/internal/client/network"
	"github.com/fastprodman/aura/internal/client/preferences"
	"github.com/fastprodman/aura/internal/client/repository"
	"github.com/fastprodman/aura/internal/client/tui"
	"github.com/fastprodman/aura/internal/client/ui/home"
	"github.com/fastprodman/aura/internal/client/ui/login"
	"github.com/fastprodman/aura/internal/client/ui/transfer"
	"github.com/fastprodman/aura/internal/infra/logging"
	"github.com/fastprodman/aura/pkg/envconf"
	"github.com/fastprodman/aura/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running aura: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg := new(auraConfig)

	err = envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logFile := logging.SetupFile(cfg.LogLevel, cfg.LogFile)
	shutdownqueue.AddCloser("log file", logFile.Close)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	prefs, err := openPreferences(cfg.PrefsDir)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}

	// view-model observers stop before the store closes
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	client := network.NewClient(cfg.BaseURL, cfg.HTTPTimeout)
	repo := repository.NewNetwork(client, repository.WithSimulatedLatency(cfg.SimulatedLatency))

	app := tui.NewApp(ctx,
		login.New(ctx, repo, prefs, login.WithResetDelay(cfg.ResetDelay)),
		home.New(ctx, repo, prefs, home.WithResetDelay(cfg.ResetDelay)),
		transfer.New(ctx, repo, prefs, transfer.WithResetDelay(cfg.ResetDelay)),
	)

	slog.Info("aura started", "base_url", cfg.BaseURL)

	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}

	slog.Info("aura stopped")

	return nil
}

// openPreferences opens the badger store under dir, falling back to the
// user config dir. Without either, the identifier lives only in memory.
func openPreferences(dir string) (*preferences.Store, error) {
	var (
		store *preferences.Store
		err   error
	)

	if dir == "" {
		base, cerr := os.UserConfigDir()
		if cerr == nil {
			dir = filepath.Join(base, "aura")
		} else {
			slog.Warn("no config dir, preferences will not persist", "error", cerr)
		}
	}

	if dir == "" {
		store, err = preferences.OpenInMemory()
	} else {
		store, err = preferences.Open(dir)
	}

	if err != nil {
		return nil, err
	}

	shutdownqueue.AddCloser("preferences", store.Close)

	return store, nil
}
