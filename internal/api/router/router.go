package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/polymathcode/leadchat/internal/chat"
	httpmiddleware "github.com/polymathcode/leadchat/internal/http/middleware"
	"github.com/polymathcode/leadchat/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *chat.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// ChatRateLimit > 0 enables per-IP rate limiting on the chat endpoint.
	ChatRateLimit float64
	ChatRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", cfg.ChatHandler.HealthCheck)
	if cfg.ChatRateLimit > 0 {
		r.With(httpmiddleware.RateLimit(cfg.ChatRateLimit, cfg.ChatRateBurst)).Post("/api/chat", cfg.ChatHandler.HandleChat)
	} else {
		r.Post("/api/chat", cfg.ChatHandler.HandleChat)
	}
	r.Get("/widget.js", cfg.ChatHandler.HandleWidgetJS)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
