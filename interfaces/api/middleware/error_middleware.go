package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskflow/pkg/apperr"
	"taskflow/pkg/logger"
	"taskflow/pkg/utils"
)

// ErrorHandler converts errors escaping a handler into the JSON error body.
// Application errors carry their own status and caller-facing message;
// anything else becomes a generic 500 so internals never leak.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			status := utils.StatusFromError(appErr)
			if status >= fiber.StatusInternalServerError {
				logger.ErrorContext(c.UserContext(), "Request failed",
					"method", c.Method(),
					"path", c.Path(),
					"error", err,
				)
				return utils.InternalServerErrorResponse(c)
			}
			return utils.ErrorResponse(c, status, appErr.Error())
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
			return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message)
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)

		return utils.InternalServerErrorResponse(c)
	}
}
