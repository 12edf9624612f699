package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/contact-api/internal/config"
	"github.com/noah-isme/contact-api/internal/handler"
	"github.com/noah-isme/contact-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContactHandler      *handler.ContactHandler
	AdminContactHandler *handler.AdminContactHandler
	JWTMiddleware       fiber.Handler
	RateLimit           fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	if deps.ContactHandler != nil {
		contact := api.Group("/contact")
		if deps.RateLimit != nil {
			contact.Use(deps.RateLimit)
		}
		deps.ContactHandler.Register(contact)
	}

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AdminContactHandler != nil {
		admin := api.Group("/admin/contacts", jwtMiddleware)
		deps.AdminContactHandler.Register(admin)
	}
}
