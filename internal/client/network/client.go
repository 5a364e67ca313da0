package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fastprodman/aura/internal/models"
)

var ErrUnexpectedStatus = errors.New("unexpected http status")

const userAgent = "aura-client/1.0"

// Client talks to the Aura REST backend.
type Client struct {
	client *resty.Client
}

// NewClient returns a client for baseURL. A zero timeout keeps resty's default
// (no timeout). Requests are never retried.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0).
		SetLogger(slogLogger{})

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &Client{client: c}
}

func (c *Client) newRequest(ctx context.Context) *resty.Request {
	return c.client.R().SetContext(ctx)
}

// Login handles POST /login
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := c.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/login")

	err = checkResponse(resp, err)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}

	return out, nil
}

// GetAccounts handles GET /accounts/{id}
func (c *Client) GetAccounts(ctx context.Context, id string) ([]models.Account, error) {
	var out []models.Account

	resp, err := c.newRequest(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		Get("/accounts/{id}")

	err = checkResponse(resp, err)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	return out, nil
}

// DoTransfer handles POST /transfer
func (c *Client) DoTransfer(ctx context.Context, transfer models.Transfer) (models.TransferResult, error) {
	var out models.TransferResult

	resp, err := c.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(transfer).
		SetResult(&out).
		Post("/transfer")

	err = checkResponse(resp, err)
	if err != nil {
		return models.TransferResult{}, fmt.Errorf("transfer: %w", err)
	}

	return out, nil
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		body := strings.TrimSpace(resp.String())

		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}

	return nil
}

// slogLogger routes resty's internal messages to slog instead of stderr,
// which the terminal client draws over.
type slogLogger struct{}

func (slogLogger) Errorf(format string, v ...any) { slog.Error(fmt.Sprintf(format, v...)) }
func (slogLogger) Warnf(format string, v ...any)  { slog.Warn(fmt.Sprintf(format, v...)) }
func (slogLogger) Debugf(format string, v ...any) { slog.Debug(fmt.Sprintf(format, v...)) }
