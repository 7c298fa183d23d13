package http

import (
	"net/http"

	"github.com/atinyakov/GrowthMindset/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Home     *HomeHandler
	Auth     *AuthHandler
	Progress *ProgressHandler
	Summary  *SummaryHandler
	// Sessions validates bearer tokens on protected routes.
	Sessions middleware.TokenParser
}

// NewRouter constructs the HTTP handler of the application.
//
// Routes:
//
//	GET  /               -> Home.Home
//	POST /api/register   -> Auth.Register
//	POST /api/login      -> Auth.Login
//	POST /api/summary    -> Summary.Download
//	GET  /api/motivation -> Motivation
//	POST /api/progress   -> Progress.Save (requires a bearer token)
//
// Middleware chain (applied in order):
//  1. Recoverer: turns panics into 500
//  2. WithRequestLogging(logger): logs every request
//  3. AllowContentType("application/json") on /api: rejects non-JSON bodies
//  4. SessionAuth on the protected group
func NewRouter(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/", h.Home.Home)

	r.Route("/api", func(r chi.Router) {
		// Only allow requests with Content-Type: application/json
		r.Use(chiMiddleware.AllowContentType("application/json"))

		// Public endpoints
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Post("/summary", h.Summary.Download)
		r.Get("/motivation", Motivation)

		// Protected group: requires a session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(h.Sessions))
			r.Post("/progress", h.Progress.Save)
		})
	})

	return r
}
