package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/marshad7/taskflow/internal/infrastructure/http/handlers"
	"github.com/marshad7/taskflow/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	TasksHandler   *handlers.TasksHandler
	HealthHandler  *handlers.HealthHandler
	RequireSession func(http.Handler) http.Handler
	Secure         func(http.Handler) http.Handler
	IPRateLimit    func(http.Handler) http.Handler
	Log            zerolog.Logger
	Metrics        bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	r.Use(chimid.AllowContentType("application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		// Logout is deliberately outside the session gate: it succeeds
		// for unauthenticated callers too.
		r.Post("/logout", cfg.AuthHandler.Logout)
		r.Group(func(r chi.Router) {
			r.Use(cfg.RequireSession)
			r.Get("/me", cfg.AuthHandler.Me)
		})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(cfg.RequireSession)
		r.Get("/", cfg.TasksHandler.List)
		r.Post("/", cfg.TasksHandler.Create)
		r.Put("/{id}", cfg.TasksHandler.Update)
		r.Delete("/{id}", cfg.TasksHandler.Delete)
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
