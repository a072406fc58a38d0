package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskflow/domain/repositories"
	"taskflow/pkg/logger"
	"taskflow/pkg/utils"
)

// Authenticate resolves the bearer token into a user identity and stores it
// in fiber locals. It never rejects the request itself: handlers that need
// an identity check for one and answer 401 themselves, so public routes can
// share the same chain.
func Authenticate(tokenManager *utils.TokenManager, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := utils.ExtractTokenFromHeader(c.Get("Authorization"))
		if token == "" {
			return c.Next()
		}

		claims, err := tokenManager.Validate(token)
		if err != nil {
			logger.DebugContext(c.UserContext(), "Token rejected", "error", err)
			return c.Next()
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return c.Next()
		}

		// The token may outlive the account. Resolve against the store so a
		// deleted user cannot keep acting on a stale token.
		user, err := userRepo.GetByID(c.UserContext(), userID)
		if err != nil {
			logger.DebugContext(c.UserContext(), "Token user no longer exists", "user_id", claims.UserID)
			return c.Next()
		}

		c.Locals("user", &utils.UserContext{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
		})

		return c.Next()
	}
}
