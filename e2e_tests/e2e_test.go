// Package e2etests drives a running API (migrated with APP_ENV=DEV seed data)
// through the client's network layer. Set AURA_E2E_BASE_URL to enable.
package e2etests

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastprodman/aura/internal/client/network"
	"github.com/fastprodman/aura/internal/models"
)

const (
	timeout   = 5 * time.Second
	waitReady = 20 * time.Second

	seedPassword = "p@sswOrd"
)

func baseURL(t *testing.T) string {
	t.Helper()

	u := os.Getenv("AURA_E2E_BASE_URL")
	if u == "" {
		t.Skip("AURA_E2E_BASE_URL not set")
	}

	return u
}

func newClient(t *testing.T) *network.Client {
	t.Helper()

	u := baseURL(t)
	waitUntilReady(t, u)

	return network.NewClient(u, timeout)
}

//nolint:paralleltest
func TestE2E_Login(t *testing.T) {
	c := newClient(t)
	ctx := t.Context()

	resp, err := c.Login(ctx, models.LoginRequest{ID: "1234", Password: seedPassword})
	require.NoError(t, err)
	assert.True(t, resp.Granted)

	resp, err = c.Login(ctx, models.LoginRequest{ID: "1234", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, resp.Granted)

	resp, err = c.Login(ctx, models.LoginRequest{ID: "no-such-user", Password: seedPassword})
	require.NoError(t, err)
	assert.False(t, resp.Granted)
}

//nolint:paralleltest
func TestE2E_TransferFlow(t *testing.T) {
	c := newClient(t)
	ctx := t.Context()

	before := mainBalance(t, c, "9012")
	senderBefore := models.TotalBalance(accounts(t, c, "5678"))

	res, err := c.DoTransfer(ctx, models.Transfer{Sender: "5678", Recipient: "9012", Amount: 1.25})
	require.NoError(t, err)
	require.True(t, res.Result)

	assert.InDelta(t, before+1.25, mainBalance(t, c, "9012"), 1e-9)
	assert.InDelta(t, senderBefore-1.25, models.TotalBalance(accounts(t, c, "5678")), 1e-9)

	t.Run("insufficient_funds", func(t *testing.T) {
		res, err := c.DoTransfer(ctx, models.Transfer{Sender: "9012", Recipient: "5678", Amount: 1_000_000})
		require.NoError(t, err)
		assert.False(t, res.Result)
	})

	t.Run("unknown_recipient", func(t *testing.T) {
		res, err := c.DoTransfer(ctx, models.Transfer{Sender: "5678", Recipient: "no-such-user", Amount: 1})
		require.NoError(t, err)
		assert.False(t, res.Result)
	})

	t.Run("too_many_decimals", func(t *testing.T) {
		_, err := c.DoTransfer(ctx, models.Transfer{Sender: "5678", Recipient: "9012", Amount: 1.234})
		require.ErrorIs(t, err, network.ErrUnexpectedStatus)
	})
}

//nolint:paralleltest
func TestE2E_AccountsOrderAndNotFound(t *testing.T) {
	c := newClient(t)

	list := accounts(t, c, "1234")
	require.NotEmpty(t, list)
	assert.True(t, list[0].Main, "main account comes first")

	_, err := c.GetAccounts(t.Context(), "no-such-user")
	require.ErrorIs(t, err, network.ErrUnexpectedStatus)
}

//nolint:paralleltest
func TestE2E_MalformedBody(t *testing.T) {
	u := baseURL(t)
	waitUntilReady(t, u)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, u+"/transfer", bytes.NewReader([]byte(`{"sender":`)))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

/* -------------------- helpers -------------------- */

func accounts(t *testing.T, c *network.Client, id string) []models.Account {
	t.Helper()

	list, err := c.GetAccounts(t.Context(), id)
	require.NoError(t, err)

	return list
}

func mainBalance(t *testing.T, c *network.Client, id string) float64 {
	t.Helper()

	for _, a := range accounts(t, c, id) {
		if a.Main {
			return a.Balance
		}
	}

	t.Fatalf("user %s has no main account", id)

	return 0
}

// waitUntilReady polls /healthz until the API answers or waitReady passes.
func waitUntilReady(t *testing.T, base string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), waitReady)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	httpClient := &http.Client{Timeout: timeout}

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("service not ready at %s within %s", base, waitReady)
		case <-tick.C:
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/healthz", nil)
			if err != nil {
				t.Fatalf("new request: %v", err)
			}

			resp, err := httpClient.Do(req)
			if err != nil {
				// connection refused while the API boots
				continue
			}

			_ = resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				return
			}
		}
	}
}
