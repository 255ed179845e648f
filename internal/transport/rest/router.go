package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/solilop/solilop-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router mounts. Nil middleware are skipped
// and a nil Metrics handler leaves /metrics unmounted.
type RouterDeps struct {
	Logger *slog.Logger

	Auth     *AuthHandler
	Thoughts *ThoughtHandler
	Whispers *WhisperHandler
	Health   *HealthHandler
	Metrics  http.Handler

	Authenticate middleware.Middleware
	CORS         middleware.Middleware
	HTTPMetrics  middleware.Middleware
	AuthLimit    middleware.Middleware
	APILimit     middleware.Middleware

	// TrustProxyHeaders takes the client IP from X-Forwarded-For and
	// friends. Only enable it behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// NewRouter builds the HTTP API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	var realIP middleware.Middleware
	if d.TrustProxyHeaders {
		realIP = chimw.RealIP
	}

	use(r,
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		realIP,
		d.CORS,
		d.HTTPMetrics,
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			use(r, d.AuthLimit)
			r.Post("/register", d.Auth.Register)
			r.Post("/login", d.Auth.Login)
			r.With(nonNil(d.Authenticate)...).Post("/logout", d.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			use(r, d.Authenticate, d.APILimit)

			r.Post("/thoughts", d.Thoughts.Create)
			r.Get("/thoughts", d.Thoughts.List)

			r.Get("/whispers", d.Whispers.List)
			r.Put("/whispers/{id}/read", d.Whispers.MarkRead)
		})
	})

	return r
}

func use(r chi.Router, mws ...middleware.Middleware) {
	if list := nonNil(mws...); len(list) > 0 {
		r.Use(list...)
	}
}

func nonNil(mws ...middleware.Middleware) []func(http.Handler) http.Handler {
	out := make([]func(http.Handler) http.Handler, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			out = append(out, mw)
		}
	}
	return out
}
