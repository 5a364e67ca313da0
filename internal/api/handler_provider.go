package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fastprodman/aura/internal/infra/metrics"
	"github.com/fastprodman/aura/internal/models"
	"github.com/fastprodman/aura/internal/repos/users"
)

// BankService is what the handlers need from the bank service.
type BankService interface {
	Login(ctx context.Context, userID, password string) (bool, error)
	GetAccounts(ctx context.Context, userID string) ([]models.Account, error)
	Transfer(ctx context.Context, sender, recipient string, amountMinor int64) (bool, error)
}

// HandlerProvider wraps a BankService and exposes HTTP handlers.
type HandlerProvider struct {
	svc BankService
}

func NewHandler(svc BankService) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody reads a single JSON object, rejecting unknown fields and
// bodies over 1MB. On failure it has already written the 400 response.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "empty body")
			return false
		}

		writeError(w, http.StatusBadRequest, "invalid JSON")

		return false
	}

	return true
}

// --- Handlers ---

// LoginHandler handles POST /login
func (h *HandlerProvider) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}

	granted, err := h.svc.Login(r.Context(), req.ID, req.Password)
	if err != nil {
		slog.Error("login failed", "id", req.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	metrics.RecordLogin(granted)
	writeJSON(w, http.StatusOK, models.LoginResponse{Granted: granted})
}

// GetAccountsHandler handles GET /accounts/{id}
func (h *HandlerProvider) GetAccountsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid id in path")
		return
	}

	list, err := h.svc.GetAccounts(r.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		slog.Error("get accounts failed", "id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	writeJSON(w, http.StatusOK, list)
}

// TransferHandler handles POST /transfer
func (h *HandlerProvider) TransferHandler(w http.ResponseWriter, r *http.Request) {
	var req models.Transfer
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Sender == "" || req.Recipient == "" {
		writeError(w, http.StatusBadRequest, "sender and recipient required")
		return
	}

	amountMinor, err := models.ToMinor(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := h.svc.Transfer(r.Context(), req.Sender, req.Recipient, amountMinor)
	if err != nil {
		metrics.RecordTransfer(metrics.TransferFailed)
		slog.Error("transfer failed", "sender", req.Sender, "recipient", req.Recipient, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	if ok {
		metrics.RecordTransfer(metrics.TransferGranted)
	} else {
		metrics.RecordTransfer(metrics.TransferRefused)
	}

	writeJSON(w, http.StatusOK, models.TransferResult{Result: ok})
}
