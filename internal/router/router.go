// Package router sets up all HTTP routes and middleware chains for the
// newspaper API. Every content resource gets the same CRUD route group;
// admin routes carry the bearer-token and role gates.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"patrika/internal/auth"
	"patrika/internal/handlers"
	"patrika/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. uploadRoot is the directory served under
// the public /uploads prefix.
func New(resources []*handlers.Resource, admin *handlers.Admin, tokens *auth.Manager,
	loginLimiter *middleware.RateLimiter, corsOrigin, uploadRoot string) chi.Router {

	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Liveness endpoints.
	r.Get("/", rootHandler)
	r.Get("/health", healthHandler)

	// Uploaded media, served as static files.
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadRoot)))
	r.Get("/uploads/*", uploads.ServeHTTP)

	// Content resources. Mutating routes are public, matching the
	// original deployment where the admin frontend is the only client.
	for _, res := range resources {
		r.Route("/api/"+res.Name(), func(r chi.Router) {
			r.Get("/", res.List)
			r.Get("/{id}", res.Get)
			r.Post("/", res.Create)
			r.Put("/{id}", res.Update)
			r.Delete("/{id}", res.Delete)
		})
	}

	// Admin: login is rate-limited; user creation needs a valid admin token.
	r.Route("/api/admin", func(r chi.Router) {
		r.With(loginLimiter.Middleware).Post("/login", admin.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(tokens))
			r.Use(middleware.RequireAdmin)
			r.Post("/users", admin.CreateUser)
		})
	})

	return r
}

// rootHandler answers the bare liveness probe the frontend pings.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello! Newspaper API is running. Database ready."))
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
