package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/bytegate/internal/adapter/http/handler"
	"github.com/iho/bytegate/internal/adapter/http/middleware"
	"github.com/iho/bytegate/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ByteHandler      *handler.ByteHandler
	HealthHandler    *handler.HealthHandler
	Logger           zerolog.Logger
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/byte", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
		}

		r.Post("/deposito-cta", cfg.ByteHandler.Deposit)
		r.Post("/retiro-cta", cfg.ByteHandler.Withdraw)
		r.Post("/consulta-cta", cfg.ByteHandler.InquireAccount)
		r.Post("/transfer-cta", cfg.ByteHandler.Transfer)
		r.Post("/consulta-prestamo", cfg.ByteHandler.InquireLoan)
		r.Post("/pago-prestamo", cfg.ByteHandler.LoanPayment)
		r.Post("/reversa-pago-prestamo", cfg.ByteHandler.Reversal)
	})

	return r
}
