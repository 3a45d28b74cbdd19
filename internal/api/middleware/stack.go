// SPDX-License-Identifier: MIT

package middleware

import (
	"github.com/go-chi/chi/v5"

	"github.com/pagevet/pagevet/internal/log"
)

// StackConfig configures the diagnostic listener's middleware stack.
type StackConfig struct {
	// Observability
	TracingService string // empty disables tracing
	EnableMetrics  bool
	EnableLogging  bool

	// Rate limiting; 0 disables
	RateLimitPerMinute int
}

// NewRouter constructs a chi router with the canonical middleware stack applied.
func NewRouter(cfg StackConfig) *chi.Mux {
	r := chi.NewRouter()
	ApplyStack(r, cfg)
	return r
}

// ApplyStack applies the canonical middleware stack to r.
func ApplyStack(r chi.Router, cfg StackConfig) {
	// 1. Recoverer (outermost safety net)
	r.Use(Recoverer)
	// 2. RequestID (correlation early)
	r.Use(RequestID)
	// 3. CORS (the protocol sets these headers on everything)
	r.Use(CORS())
	// 4. Metrics (track all requests)
	if cfg.EnableMetrics {
		r.Use(Metrics())
	}
	// 5. Tracing (distributed tracing with OpenTelemetry)
	if cfg.TracingService != "" {
		r.Use(OTelHTTP(cfg.TracingService))
	}
	// 6. Logging (wraps handlers, captures full latency)
	if cfg.EnableLogging {
		r.Use(log.Middleware())
	}
	// 7. Rate limit (global protection)
	if cfg.RateLimitPerMinute > 0 {
		r.Use(PerMinuteRateLimit(cfg.RateLimitPerMinute))
	}
}
