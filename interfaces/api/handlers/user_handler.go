package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskflow/domain/dto"
	"taskflow/domain/services"
	"taskflow/pkg/logger"
	"taskflow/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register creates a new account and returns its public view.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.ValidationMessage(err)
		logger.WarnContext(ctx, "Registration validation failed", "error", message)
		return utils.BadRequestResponse(c, message)
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

// Login verifies credentials and returns a bearer token alongside the
// user's display fields.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "invalid request body")
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "username", user.Username)

	return utils.SuccessResponse(c, dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}

// ListUsers returns every account's public view.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.UserContext())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.UsersToUserResponses(users))
}
