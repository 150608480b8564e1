package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/middleware"
)

// NewRouter wires the health check and the generate endpoint. The
// endpoint requires a bearer token only when cfg has a JWT secret.
func NewRouter(ctx context.Context, cfg config.Config, gen *GeneratorHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		if cfg.AuthEnabled() {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
		}
		r.Post("/api/v1/generate", gen.HandleGenerate)
	})

	return r
}
