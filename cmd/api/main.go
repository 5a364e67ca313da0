package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fastprodman/aura/internal/api"
	"github.com/fastprodman/aura/internal/infra/logging"
	"github.com/fastprodman/aura/internal/infra/pgutils"
	"github.com/fastprodman/aura/internal/services/bank"
	"github.com/fastprodman/aura/pkg/envconf"
	"github.com/fastprodman/aura/pkg/shutdownqueue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running api: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg := new(apiConfig)

	err = envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// --- Infra ---
	db, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	shutdownqueue.AddCloser("postgres pool", db.Close)

	bankSrv := bank.New(db)

	// --- HTTP server ---
	srv := api.NewServer(cfg.Port, bankSrv)

	shutdownqueue.Add("http server", srv.Shutdown)

	// Run server
	errCh := make(chan error, 1)

	go func() {
		serr := srv.ListenAndServe()
		// http.ErrServerClosed is the normal path during Shutdown
		if serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			errCh <- serr
			return
		}

		errCh <- nil
	}()

	slog.Info("API started", "addr", srv.Addr)

	// --- Wait until either context cancels or server errors out ---
	select {
	case <-ctx.Done():
		// graceful path; deferred shutdownqueue.Shutdown will run
		return nil
	case serr := <-errCh:
		if serr != nil {
			return fmt.Errorf("server error: %w", serr)
		}

		return nil
	}
}
