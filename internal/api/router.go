package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fastprodman/aura/internal/infra/metrics"
)

// NewRouter constructs a chi router with all API endpoints registered.
func NewRouter(svc BankService) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Use(metrics.InstrumentHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Post("/login", h.LoginHandler)
	r.Get("/accounts/{id}", h.GetAccountsHandler)
	r.Post("/transfer", h.TransferHandler)

	return r
}
