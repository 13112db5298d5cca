package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/yatube/backend/internal/setup"
	mw "github.com/itchan-dev/yatube/shared/middleware"
	"github.com/itchan-dev/yatube/shared/middleware/metrics"
	rl "github.com/itchan-dev/yatube/shared/middleware/ratelimiter"
)

// JSON API only, no scripts or styles
const backendCSP = "default-src 'none'; frame-ancestors 'none'"

// New creates and configures a chi router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints of that group combined
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies, backendCSP))
	r.Use(metrics.Middleware)

	h := deps.Handler
	authMw := deps.AuthMiddleware

	// Ops
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Public reads
	r.Group(func(r chi.Router) {
		r.Use(authMw.OptionalAuth())              // admins skip the limit below
		r.Use(mw.RateLimit(rl.Rps10(), mw.GetIP)) // 10 RPS per IP
		r.Get("/", h.Index)
		r.Get("/group/{slug}/", h.GroupPosts)
		r.Get("/profile/{username}/", h.Profile)
		r.Get("/posts/{id}/", h.PostDetail)
		r.Get("/groups/", h.ListGroups)
	})

	// Auth routes
	r.Route("/auth", func(r chi.Router) {
		r.With(
			mw.RateLimit(rl.OnceInSecond(), mw.GetIP), // 1 per second by IP
			mw.GlobalRateLimit(rl.Rps100()),           // 100 global RPS
		).Post("/signup/", h.Signup)
		r.With(
			mw.RateLimit(rl.OnceInSecond(), mw.GetIP),
			mw.GlobalRateLimit(rl.Rps100()),
		).Post("/login/", h.Login)
		// Logout (no rate limits)
		r.Post("/logout/", h.Logout)
	})

	// Logged-in user routes
	r.Group(func(r chi.Router) {
		r.Use(authMw.NeedAuth())
		r.Use(mw.RateLimit(rl.Rps10(), mw.GetUserIDFromContext)) // 10 RPS per user

		r.Get("/create/", h.CreatePostForm)
		r.With(mw.RateLimit(rl.OnceInSecond(), mw.GetUserIDFromContext)).Post("/create/", h.CreatePost)
		r.Get("/posts/{id}/edit/", h.EditPostForm)
		r.With(mw.RateLimit(rl.OnceInSecond(), mw.GetUserIDFromContext)).Post("/posts/{id}/edit/", h.EditPost)
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMw.AdminOnly())
		r.Post("/groups/", h.CreateGroup)
	})

	return r
}
