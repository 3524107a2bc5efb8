package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storekit/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. authMW gates the
// mutating product routes; reads stay public.
func Register(app *fiber.App, auth *handlers.AuthHandler, products *handlers.ProductHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	p := v1.Group("/products")
	p.Get("/", products.List)
	p.Get("/:id", products.Get)
	p.Post("/", authMW, products.Create)
	p.Patch("/:id", authMW, products.Update)
	p.Delete("/:id", authMW, products.Delete)
}
