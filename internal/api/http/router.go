package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/account-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Users     *handlers.UsersHandler
	StaticDir string
}

// RegisterRoutes wires HTTP routes. API routes take precedence; anything else
// falls through to the static frontend directory.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Auth.Register)
	app.Post("/login", cfg.Auth.Login)

	app.Get("/users", cfg.Users.List)
	app.Put("/users/:id", cfg.Users.Update)
	app.Delete("/users/:id", cfg.Users.Delete)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
}
