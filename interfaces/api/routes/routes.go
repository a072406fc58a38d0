package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskflow/interfaces/api/handlers"
	"taskflow/pkg/utils"
)

// SetupRoutes wires the full HTTP surface: health, the /api group, the
// static client bundle, and the trailing unknown-endpoint handler.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, loginLimiter fiber.Handler, staticDir string) {
	SetupHealthRoutes(app)

	api := app.Group("/api")

	SetupUserRoutes(api, h)
	SetupLoginRoutes(api, h, loginLimiter)
	SetupTaskRoutes(api, h)

	// Pre-built client bundle.
	if staticDir != "" {
		app.Static("/", staticDir)
	}

	// Anything still unmatched is an unknown endpoint.
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "unknown endpoint")
	})
}
