package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskflow/interfaces/api/handlers"
)

func SetupLoginRoutes(api fiber.Router, h *handlers.Handlers, loginLimiter fiber.Handler) {
	api.Post("/login", loginLimiter, h.UserHandler.Login)
}
